package application

import "errors"

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UploadError carries the user-facing reason an upload was refused.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string { return e.Reason }
func (e *UploadError) Unwrap() error { return ErrInvalidUpload }

const (
	MsgNoFile       = "Please select a PDF file to upload."
	MsgNotPDF       = "Only PDF files are allowed."
	MsgTooLarge     = "File size too large (max 10MB)."
	MsgUploadFailed = "Upload failed"
)
