package repository

import (
	"context"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

// ProgressFunc observes bytes handed to the transport.
type ProgressFunc func(sent, total int64)

// DocumentRepository forwards a PDF to the ingestion pipeline.
type DocumentRepository interface {
	Upload(ctx context.Context, token string, doc entity.Document, progress ProgressFunc) (*entity.UploadResult, error)
}

// ProgressRepository keeps pollable upload progress.
type ProgressRepository interface {
	Save(ctx context.Context, p entity.UploadProgress) error
	Get(ctx context.Context, id string) (*entity.UploadProgress, error)
}

// ArchiveRepository keeps a copy of every uploaded document.
type ArchiveRepository interface {
	Put(ctx context.Context, doc entity.Document, uploadedBy string) (*entity.ArchivedDocument, error)
	List(ctx context.Context, limit int) ([]entity.ArchivedDocument, error)
}
