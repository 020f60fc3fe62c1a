package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

// DocumentGateway forwards PDFs to the core backend's ingestion endpoint.
type DocumentGateway struct {
	Core *Client
}

func NewDocumentGateway(core *Client) *DocumentGateway { return &DocumentGateway{Core: core} }

func (g *DocumentGateway) Upload(ctx context.Context, token string, doc entity.Document, progress repository.ProgressFunc) (*entity.UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", doc.Name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(doc.Content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	total := int64(body.Len())
	reader := helpers.NewProgressReader(&body, total, progress)
	b, err := g.Core.Do(ctx, Request{
		Method:        http.MethodPost,
		Path:          "/pdf/upload",
		Token:         token,
		Body:          reader,
		ContentType:   mw.FormDataContentType(),
		ContentLength: total,
	})
	if err != nil {
		return nil, err
	}

	// an unreadable summary still means the upload went through
	res := entity.UploadResult{Message: "Upload complete", FileName: doc.Name}
	_ = json.Unmarshal(b, &res)
	if res.Message == "" {
		res.Message = "Upload complete"
	}
	return &res, nil
}

var _ repository.DocumentRepository = (*DocumentGateway)(nil)
