package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

func TestObjectName(t *testing.T) {
	at := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "guide.pdf", "documents/20260504T103000.000000000Z-guide.pdf"},
		{"spaces", "Family Planning.pdf", "documents/20260504T103000.000000000Z-Family_Planning.pdf"},
		{"windows path", `C:\Users\me\notes.pdf`, "documents/20260504T103000.000000000Z-notes.pdf"},
		{"traversal", "../../etc/passwd.pdf", "documents/20260504T103000.000000000Z-passwd.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectName(defaultPrefix, tt.in, at))
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []entity.ArchivedDocument{
		{Name: "a", CreatedAt: base},
		{Name: "c", CreatedAt: base.Add(2 * time.Hour)},
		{Name: "b", CreatedAt: base.Add(time.Hour)},
	}
	SortNewestFirst(docs)
	assert.Equal(t, []string{"c", "b", "a"}, []string{docs[0].Name, docs[1].Name, docs[2].Name})
}
