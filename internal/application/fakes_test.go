package application

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	repo "github.com/rafikey/rafikey-admin/internal/domain/repository"
)

type fakeMetrics struct {
	mu      sync.Mutex
	calls   []string
	answers map[string]string
	fail    map[string]error
	block   map[string]chan struct{}
}

func (f *fakeMetrics) Fetch(ctx context.Context, _ string, _ entity.MetricSource, path string) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	ch := f.block[path]
	f.mu.Unlock()
	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.fail[path]; err != nil {
		return nil, err
	}
	if a, ok := f.answers[path]; ok {
		return json.RawMessage(a), nil
	}
	return json.RawMessage(`{}`), nil
}

type fakeDocuments struct {
	got    entity.Document
	token  string
	err    error
	result *entity.UploadResult
}

func (f *fakeDocuments) Upload(_ context.Context, token string, doc entity.Document, progress repo.ProgressFunc) (*entity.UploadResult, error) {
	f.got, f.token = doc, token
	if progress != nil {
		total := doc.Size()
		progress(total/2, total)
		progress(total, total)
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &entity.UploadResult{Message: "Processed", FileName: doc.Name, ChunksProcessed: 3}, nil
}

type fakeProgress struct {
	mu      sync.Mutex
	history []entity.UploadProgress
}

func (f *fakeProgress) Save(_ context.Context, p entity.UploadProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, p)
	return nil
}

func (f *fakeProgress) Get(_ context.Context, id string) (*entity.UploadProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].ID == id {
			p := f.history[i]
			return &p, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeArchive struct {
	put []entity.Document
	by  []string
	err error
}

func (f *fakeArchive) Put(_ context.Context, doc entity.Document, uploadedBy string) (*entity.ArchivedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = append(f.put, doc)
	f.by = append(f.by, uploadedBy)
	return &entity.ArchivedDocument{Name: doc.Name}, nil
}

func (f *fakeArchive) List(context.Context, int) ([]entity.ArchivedDocument, error) {
	out := make([]entity.ArchivedDocument, len(f.put))
	for i, d := range f.put {
		out[len(f.put)-1-i] = entity.ArchivedDocument{Name: d.Name}
	}
	return out, nil
}

type fakeClinics struct {
	filter  entity.ClinicFilter
	created entity.ClinicInput
	deleted int64
}

func (f *fakeClinics) List(_ context.Context, _ string, filter entity.ClinicFilter) ([]entity.Clinic, error) {
	f.filter = filter
	return make([]entity.Clinic, filter.Limit), nil
}

func (f *fakeClinics) Create(_ context.Context, _ string, in entity.ClinicInput) (*entity.Clinic, error) {
	f.created = in
	return &entity.Clinic{ID: 1, ClinicName: in.ClinicName}, nil
}

func (f *fakeClinics) Update(_ context.Context, _ string, id int64, in entity.ClinicInput) (*entity.Clinic, error) {
	return &entity.Clinic{ID: id, ClinicName: in.ClinicName}, nil
}

func (f *fakeClinics) Delete(_ context.Context, _ string, id int64) error {
	f.deleted = id
	return nil
}

type fakeQuizzes struct {
	created *entity.NewQuiz
}

func (f *fakeQuizzes) List(context.Context, string) ([]entity.Quiz, error) { return nil, nil }

func (f *fakeQuizzes) Questions(context.Context, string, int64) ([]entity.Question, error) {
	return nil, nil
}

func (f *fakeQuizzes) Create(_ context.Context, _ string, in entity.NewQuiz) error {
	f.created = &in
	return nil
}

func (f *fakeQuizzes) Delete(context.Context, string, int64) error { return nil }

type fakeAdmins struct {
	deleted []int64
}

func (f *fakeAdmins) List(context.Context, string) ([]entity.Admin, error) { return nil, nil }

func (f *fakeAdmins) Create(_ context.Context, _ string, in entity.NewAdmin) (*entity.Admin, error) {
	return &entity.Admin{ID: 9, Username: in.Username, Role: in.Role}, nil
}

func (f *fakeAdmins) Delete(_ context.Context, _ string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAuth struct {
	tok *entity.SessionToken
	err error
}

func (f *fakeAuth) Login(context.Context, string, string) (*entity.SessionToken, error) {
	return f.tok, f.err
}

// fakeReader yields n bytes of 'x'.
type fakeReader struct{ n int }

func (r *fakeReader) Read(b []byte) (int, error) {
	if r.n <= 0 {
		return 0, io.EOF
	}
	k := len(b)
	if k > r.n {
		k = r.n
	}
	for i := 0; i < k; i++ {
		b[i] = 'x'
	}
	r.n -= k
	return k, nil
}
