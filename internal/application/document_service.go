package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

const (
	DefaultMaxUploadBytes = 10 * 1024 * 1024
	historyLimit          = 20
)

type DocumentService struct {
	Repo     repo.DocumentRepository
	Progress repo.ProgressRepository
	Archive  repo.ArchiveRepository // optional
	MaxBytes int64
	Logger   *logrus.Logger
}

func NewDocumentService(r repo.DocumentRepository, progress repo.ProgressRepository, archive repo.ArchiveRepository, maxBytes int64, logger *logrus.Logger) *DocumentService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &DocumentService{Repo: r, Progress: progress, Archive: archive, MaxBytes: maxBytes, Logger: logger}
}

// UploadInput is a file as received from the browser.
type UploadInput struct {
	ID       string
	FileName string
	Size     int64
	Content  io.Reader
}

// UploadID returns id when it is a valid UUID, otherwise a fresh one.
func UploadID(id string) string {
	if _, err := uuid.Parse(id); err == nil {
		return id
	}
	return uuid.NewString()
}

// Validate checks presence, extension and size before anything is read.
func (s *DocumentService) Validate(name string, size int64) error {
	if strings.TrimSpace(name) == "" || size <= 0 {
		return &UploadError{Reason: MsgNoFile}
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return &UploadError{Reason: MsgNotPDF}
	}
	if size > s.MaxBytes {
		return &UploadError{Reason: MsgTooLarge}
	}
	return nil
}

// Upload validates the file, buffers it and forwards it to ingestion while
// recording progress under in.ID. A configured archive receives a copy after
// the backend accepts the document.
func (s *DocumentService) Upload(ctx context.Context, actor entity.Actor, in UploadInput) (*entity.UploadResult, error) {
	if !actor.Role.CanUpload() {
		return nil, ErrPermissionDenied
	}
	if err := s.Validate(in.FileName, in.Size); err != nil {
		return nil, err
	}
	content, err := io.ReadAll(io.LimitReader(in.Content, s.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > s.MaxBytes {
		return nil, &UploadError{Reason: MsgTooLarge}
	}
	doc := entity.Document{Name: filepath.Base(in.FileName), ContentType: "application/pdf", Content: content}

	tr := &uploadTracker{store: s.Progress, id: in.ID, logger: s.Logger}
	tr.save(ctx, entity.UploadProgress{State: entity.UploadUploading, Total: doc.Size()}, false)

	res, err := s.Repo.Upload(ctx, actor.Token, doc, func(sent, total int64) {
		state := entity.UploadUploading
		if sent >= total {
			state = entity.UploadProcessing
		}
		tr.save(ctx, entity.UploadProgress{State: state, Sent: sent, Total: total}, false)
	})
	if err != nil {
		tr.save(ctx, entity.UploadProgress{State: entity.UploadFailed, Message: repo.DetailOr(err, MsgUploadFailed)}, true)
		return nil, err
	}
	tr.save(ctx, entity.UploadProgress{State: entity.UploadDone, Sent: 1, Total: 1, Message: res.Message}, true)
	helpers.UploadsAccepted.Add(1)

	if s.Archive != nil {
		if _, err := s.Archive.Put(ctx, doc, actor.Subject); err != nil {
			helpers.LogWarn(s.Logger, "archive upload failed", err, logrus.Fields{"file": doc.Name})
		}
	}
	return res, nil
}

// ProgressOf returns the last recorded state of an upload.
func (s *DocumentService) ProgressOf(ctx context.Context, id string) (*entity.UploadProgress, error) {
	return s.Progress.Get(ctx, id)
}

// History lists archived uploads newest first; empty without an archive.
func (s *DocumentService) History(ctx context.Context) ([]entity.ArchivedDocument, error) {
	if s.Archive == nil {
		return nil, nil
	}
	return s.Archive.List(ctx, historyLimit)
}

// uploadTracker serializes progress writes; once a final state is written
// later transport callbacks are ignored.
type uploadTracker struct {
	store  repo.ProgressRepository
	id     string
	logger *logrus.Logger

	mu    sync.Mutex
	final bool
}

func (t *uploadTracker) save(ctx context.Context, p entity.UploadProgress, final bool) {
	if t.store == nil || t.id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.final {
		return
	}
	t.final = final
	p.ID = t.id
	p.UpdatedAt = time.Now()
	// end states are written even after the request is cancelled
	if err := t.store.Save(context.WithoutCancel(ctx), p); err != nil && !errors.Is(err, context.Canceled) {
		helpers.LogWarn(t.logger, "save upload progress", err, logrus.Fields{"upload_id": t.id})
	}
}
