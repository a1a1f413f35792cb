package orderform

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	// MaxAttachments is the maximum number of files on one order.
	MaxAttachments = 5
	// MaxAttachmentSize is the per-file size limit in bytes (50 MB).
	MaxAttachmentSize = 50 * 1024 * 1024
)

var (
	ErrTooManyAttachments = errors.New("maximum of 5 attachments allowed")
	ErrAttachmentTooLarge = errors.New("file exceeds the 50 MB size limit")
	ErrDuplicateFileName  = errors.New("a file with this name is already attached")
)

// Attachment is one stored file entry on the form.
type Attachment struct {
	ID           string `json:"id"`
	FileName     string `json:"fileName"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
	FileSizeText string `json:"fileSizeText"`
	Content      string `json:"content,omitempty"` // base64
	UploadDate   string `json:"uploadDate"`
}

// IncomingFile is a file the caller wants to attach.
type IncomingFile struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	Content  string `json:"content,omitempty"` // base64
}

// AddFiles validates and appends the incoming batch. The whole batch is
// rejected when it would exceed the attachment count, when any file exceeds
// the size limit, or when any file name duplicates an existing one; on
// rejection the existing collection is returned untouched.
func AddFiles(existing []Attachment, incoming []IncomingFile) ([]Attachment, error) {
	if len(existing)+len(incoming) > MaxAttachments {
		return existing, ErrTooManyAttachments
	}

	names := make(map[string]bool, len(existing)+len(incoming))
	for _, a := range existing {
		names[a.FileName] = true
	}

	for _, f := range incoming {
		if f.FileSize > MaxAttachmentSize {
			return existing, fmt.Errorf("%q: %w", f.FileName, ErrAttachmentTooLarge)
		}
		if names[f.FileName] {
			return existing, fmt.Errorf("%q: %w", f.FileName, ErrDuplicateFileName)
		}
		names[f.FileName] = true
	}

	out := make([]Attachment, len(existing), len(existing)+len(incoming))
	copy(out, existing)
	for _, f := range incoming {
		out = append(out, Attachment{
			ID:           newAttachmentID(),
			FileName:     f.FileName,
			FileType:     fileExtension(f.FileName),
			FileSize:     f.FileSize,
			FileSizeText: FormatFileSize(f.FileSize),
			Content:      f.Content,
			UploadDate:   time.Now().Format(dateLayout),
		})
	}
	return out, nil
}

// RemoveFile removes the attachment with the given id; unknown ids are a
// no-op.
func RemoveFile(existing []Attachment, id string) []Attachment {
	out := make([]Attachment, 0, len(existing))
	for _, a := range existing {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

// FormatFileSize renders a byte count with binary (1024) unit scaling and up
// to two decimal places.
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB"}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	text := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
	return text + " " + units[unit]
}

func fileExtension(fileName string) string {
	i := strings.LastIndex(fileName, ".")
	if i < 0 || i == len(fileName)-1 {
		return ""
	}
	return strings.ToUpper(fileName[i+1:])
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func newAttachmentID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}
