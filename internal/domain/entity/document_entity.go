package entity

import "time"

// Document is a validated PDF held in memory, ready to forward.
type Document struct {
	Name        string
	ContentType string
	Content     []byte
}

func (d Document) Size() int64 { return int64(len(d.Content)) }

// UploadResult is the ingestion summary returned by the core backend.
type UploadResult struct {
	Message         string `json:"message"`
	FileName        string `json:"file_name"`
	ChunksProcessed int    `json:"chunks_processed"`
	CollectionName  string `json:"collection_name"`
}

type UploadState string

const (
	UploadUploading  UploadState = "uploading"
	UploadProcessing UploadState = "processing"
	UploadDone       UploadState = "done"
	UploadFailed     UploadState = "failed"
)

// UploadProgress is the pollable state of one upload.
type UploadProgress struct {
	ID        string      `json:"id"`
	State     UploadState `json:"state"`
	Sent      int64       `json:"sent"`
	Total     int64       `json:"total"`
	Message   string      `json:"message,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Percent is the rounded share of bytes sent, clamped to 0..100.
func (p UploadProgress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	pct := int((p.Sent*100 + p.Total/2) / p.Total)
	if pct > 100 {
		return 100
	}
	return pct
}

// ArchivedDocument is a copy of an uploaded PDF kept in object storage.
type ArchivedDocument struct {
	Name       string    `json:"name"`
	Object     string    `json:"object"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
