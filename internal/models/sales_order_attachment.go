package models

import (
	"time"

	"gorm.io/gorm"
)

type SalesOrderAttachment struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	SalesOrderID string         `json:"sales_order_id" gorm:"size:36;not null;index"`
	FileName     string         `json:"file_name" gorm:"not null"`
	FileType     string         `json:"file_type"`
	FileSize     int64          `json:"file_size"`
	FileSizeText string         `json:"file_size_text"`
	Content      string         `json:"content,omitempty" gorm:"type:text"` // base64
	UploadDate   string         `json:"upload_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
