package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	require.Len(t, c.Entries, 6)

	assert.Equal(t, []string{"All", "Activation", "Retention", "Acquisition"}, c.Categories())
	assert.Len(t, c.Filter("All", ""), 6)
	assert.Len(t, c.Filter("Retention", ""), 3)

	got := c.Filter("", "CLINICS")
	require.Len(t, got, 1)
	assert.Equal(t, "Service Finder Usage Rate", got[0].Metric)

	assert.Empty(t, c.Filter("Acquisition", "retention"))

	for _, e := range c.Entries {
		assert.NotEmpty(t, e.Live, "entry %d has no live metric", e.ID)
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte("id: [unterminated"))
	assert.Error(t, err)
}
