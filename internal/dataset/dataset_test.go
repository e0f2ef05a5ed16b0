package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mend/internal/dataset"
	"mend/internal/models"
)

func writeTempDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "therapy_advice.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesRecordsInOrder(t *testing.T) {
	path := writeTempDataset(t, `[
  {"advice": "first", "contexts": ["conflict"]},
  {"advice": "second"},
  {"advice": "third", "contexts": []}
]`)

	store := dataset.NewStore()
	doc, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, doc, 3)

	assert.Equal(t, "first", doc[0]["advice"])
	assert.Equal(t, []string{"conflict"}, doc[0].Contexts())
	assert.Equal(t, "second", doc[1]["advice"])
	assert.Nil(t, doc[1].Contexts())
	assert.Equal(t, "third", doc[2]["advice"])
	assert.Empty(t, doc[2].Contexts())
}

func TestLoadMissingFile(t *testing.T) {
	store := dataset.NewStore()
	_, err := store.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeTempDataset(t, `[{"advice": "broken"`)

	store := dataset.NewStore()
	_, err := store.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrParse))
}

func TestLoadNonArrayTopLevel(t *testing.T) {
	path := writeTempDataset(t, `{"advice": "not an array"}`)

	store := dataset.NewStore()
	_, err := store.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrParse))
}

func TestSaveFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := models.Document{
		{"advice": "Hör auf deinen Körper", "category": "general"},
	}

	store := dataset.NewStore()
	require.NoError(t, store.Save(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// 2-space indentation, literal UTF-8, trailing newline.
	assert.Contains(t, text, "\n  {")
	assert.Contains(t, text, "Hör auf deinen Körper")
	assert.NotContains(t, text, `\u00f6`)
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestRoundTripPreservesFields(t *testing.T) {
	path := writeTempDataset(t, `[
  {"advice": "count to ten", "weight": 3, "score": 0.25, "tags": ["calm", "breath"]}
]`)

	store := dataset.NewStore()
	doc, err := store.Load(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(path, doc))

	reloaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, doc[0], reloaded[0])

	// Integers must not come back as floats.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"weight": 3`)
	assert.Contains(t, string(data), `"score": 0.25`)
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	path := writeTempDataset(t, `[{"advice": "old"}]`)

	store := dataset.NewStore()
	require.NoError(t, store.Save(path, models.Document{{"advice": "new"}}))

	doc, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "new", doc[0]["advice"])
}
