package orderform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFiles(t *testing.T) {
	files, err := AddFiles(nil, []IncomingFile{
		{FileName: "quote.pdf", FileSize: 2048},
		{FileName: "drawing.PNG", FileSize: 512},
	})

	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, "quote.pdf", files[0].FileName)
	assert.Equal(t, "PDF", files[0].FileType)
	assert.Equal(t, "2 KB", files[0].FileSizeText)
	assert.Equal(t, "PNG", files[1].FileType)
	assert.NotEmpty(t, files[0].ID)
	assert.NotEqual(t, files[0].ID, files[1].ID)
}

func TestAddFilesRejectsSixth(t *testing.T) {
	var existing []Attachment
	var err error
	for i := 0; i < MaxAttachments; i++ {
		existing, err = AddFiles(existing, []IncomingFile{
			{FileName: fmt.Sprintf("file%d.pdf", i), FileSize: 100},
		})
		assert.NoError(t, err)
	}

	got, err := AddFiles(existing, []IncomingFile{{FileName: "one-too-many.pdf", FileSize: 100}})

	assert.ErrorIs(t, err, ErrTooManyAttachments)
	assert.Len(t, got, MaxAttachments)
	assert.Equal(t, existing, got)
}

func TestAddFilesRejectsOversized(t *testing.T) {
	existing := []Attachment{{ID: "a", FileName: "keep.pdf"}}

	got, err := AddFiles(existing, []IncomingFile{
		{FileName: "huge.zip", FileSize: MaxAttachmentSize + 1},
	})

	assert.ErrorIs(t, err, ErrAttachmentTooLarge)
	assert.Equal(t, existing, got)
}

func TestAddFilesAcceptsExactLimit(t *testing.T) {
	got, err := AddFiles(nil, []IncomingFile{
		{FileName: "at-limit.zip", FileSize: MaxAttachmentSize},
	})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAddFilesRejectsDuplicateName(t *testing.T) {
	existing := []Attachment{{ID: "a", FileName: "quote.pdf"}}

	got, err := AddFiles(existing, []IncomingFile{{FileName: "quote.pdf", FileSize: 100}})

	assert.ErrorIs(t, err, ErrDuplicateFileName)
	assert.Equal(t, existing, got)

	// Comparison is exact, different case is a different file
	got, err = AddFiles(existing, []IncomingFile{{FileName: "Quote.pdf", FileSize: 100}})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAddFilesRejectsDuplicateWithinBatch(t *testing.T) {
	got, err := AddFiles(nil, []IncomingFile{
		{FileName: "spec.docx", FileSize: 100},
		{FileName: "spec.docx", FileSize: 200},
	})

	assert.ErrorIs(t, err, ErrDuplicateFileName)
	assert.Empty(t, got)
}

func TestAddFilesBatchIsAtomic(t *testing.T) {
	existing := []Attachment{{ID: "a", FileName: "keep.pdf"}}

	// Second file in the batch fails, so the first must not be added either
	got, err := AddFiles(existing, []IncomingFile{
		{FileName: "fine.pdf", FileSize: 100},
		{FileName: "keep.pdf", FileSize: 100},
	})

	assert.Error(t, err)
	assert.Equal(t, existing, got)
}

func TestRemoveFile(t *testing.T) {
	existing := []Attachment{
		{ID: "a", FileName: "one.pdf"},
		{ID: "b", FileName: "two.pdf"},
	}

	got := RemoveFile(existing, "a")
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = RemoveFile(existing, "missing")
	assert.Len(t, got, 2)
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2048, "2 KB"},
		{1048576, "1 MB"},
		{52428800, "50 MB"},
		{1073741824, "1 GB"},
		{1288490189, "1.2 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.size), "size %d", tt.size)
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "PDF", fileExtension("report.pdf"))
	assert.Equal(t, "XLSX", fileExtension("data.v2.xlsx"))
	assert.Equal(t, "", fileExtension("README"))
	assert.Equal(t, "", fileExtension("trailing."))
}
