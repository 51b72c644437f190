package entities

import "time"

// Attachment is a supporting document stored in the blob store.
type Attachment struct {
	ID         string       `json:"id"`
	FileName   string       `json:"fileName"`
	URI        string       `json:"uri"`
	MimeType   string       `json:"mimeType"`
	Size       int64        `json:"size"`
	UploadedBy UserSnapshot `json:"uploadedBy"`
	UploadedAt time.Time    `json:"uploadedAt"`
}
