package archive

import (
	"bytes"
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/domain/repository"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
)

const defaultPrefix = "documents/"

// GCSArchive keeps a copy of every forwarded PDF in a bucket.
type GCSArchive struct {
	Client *storage.Client
	Bucket string
	Prefix string
	now    func() time.Time
}

func NewGCSArchive(client *storage.Client, bucket string) *GCSArchive {
	return &GCSArchive{Client: client, Bucket: bucket, Prefix: defaultPrefix, now: time.Now}
}

func (a *GCSArchive) Put(ctx context.Context, doc entity.Document, uploadedBy string) (*entity.ArchivedDocument, error) {
	created := a.now().UTC()
	object := ObjectName(a.Prefix, doc.Name, created)
	meta := map[string]string{"original_name": doc.Name}
	if uploadedBy != "" {
		meta["uploaded_by"] = uploadedBy
	}
	ct := doc.ContentType
	if ct == "" {
		ct = "application/pdf"
	}
	url, err := helpers.UploadObject(ctx, a.Client, a.Bucket, object, ct, meta, bytes.NewReader(doc.Content))
	if err != nil {
		return nil, err
	}
	return &entity.ArchivedDocument{
		Name:       doc.Name,
		Object:     object,
		URL:        url,
		Size:       doc.Size(),
		UploadedBy: uploadedBy,
		CreatedAt:  created,
	}, nil
}

// List returns archived documents, newest first.
func (a *GCSArchive) List(ctx context.Context, limit int) ([]entity.ArchivedDocument, error) {
	attrs, err := helpers.ListObjects(ctx, a.Client, a.Bucket, a.Prefix)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ArchivedDocument, 0, len(attrs))
	for _, o := range attrs {
		name := o.Metadata["original_name"]
		if name == "" {
			name = path.Base(o.Name)
		}
		out = append(out, entity.ArchivedDocument{
			Name:       name,
			Object:     o.Name,
			URL:        helpers.PublicURL(a.Bucket, o.Name),
			Size:       o.Size,
			UploadedBy: o.Metadata["uploaded_by"],
			CreatedAt:  o.Created,
		})
	}
	SortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ObjectName builds a collision-free object key: prefix, a UTC timestamp
// and the sanitized base name.
func ObjectName(prefix, name string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	return prefix + at.UTC().Format("20060102T150405.000000000Z") + "-" + base
}

func SortNewestFirst(docs []entity.ArchivedDocument) {
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].CreatedAt.After(docs[j].CreatedAt) })
}

var _ repository.ArchiveRepository = (*GCSArchive)(nil)
