package views

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, name string, p any) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, p).Render(w))
	return w.Body.String()
}

func TestRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range pages {
		_, ok := r.Instance(name, nil).(render.HTML)
		assert.True(t, ok, name)
	}
	_, ok := r.Instance("nope", nil).(render.Data)
	assert.True(t, ok)
}

func TestRenderer_DeniedForViewer(t *testing.T) {
	body := renderPage(t, Admins, Page{Title: "Admins", Active: Admins, Viewer: Viewer{Role: "viewer", RoleLabel: "Viewer", Authenticated: true}})
	assert.Contains(t, body, "You do not have permission to view this page.")
	assert.NotContains(t, body, "Add Admin")
}

func TestRenderer_ActiveNav(t *testing.T) {
	body := renderPage(t, Admins, Page{Title: "Admins", Active: Admins})
	assert.Contains(t, body, `href="/dashboard/admins" class="active"`)
}

func TestRenderer_LoginShowsError(t *testing.T) {
	body := renderPage(t, Login, Page{Title: "Login", Data: struct {
		Error, Username, Redirect string
	}{Error: "Invalid username or password", Username: "amina", Redirect: "/dashboard/clinics"}})
	assert.Contains(t, body, "Invalid username or password")
	assert.Contains(t, body, `value="amina"`)
	assert.Contains(t, body, `name="redirect"`)
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("**bold** <script>x</script>"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "-", defaultFn("-", "  "))
	assert.Equal(t, "-", defaultFn("-", nil))
	assert.Equal(t, "-", defaultFn("-", 0))
	assert.Equal(t, "x", defaultFn("-", "x"))
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "10.0 MB", humanBytes(10*1024*1024))
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("app.js")
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "isDarkMode"))
}
