package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	doc := Render([]*model.Table{satisfactionTable()}, model.SelectionSet{
		"Sheet1#1": {ChartKind: model.ChartWithTable},
	})

	path := filepath.Join(t.TempDir(), "report.deck.json")
	store := JSONStore{Pretty: true}
	require.NoError(t, store.Save(doc, path))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Slides, len(doc.Slides))

	orig := doc.Slides[1]
	got := loaded.Slides[1]
	require.Len(t, got.Shapes, len(orig.Shapes))
	for i, shp := range orig.Shapes {
		assert.Equal(t, shp.Kind, got.Shapes[i].Kind)
		assert.Equal(t, shp.Annotation, got.Shapes[i].Annotation)
		assert.Equal(t, shp.Text, got.Shapes[i].Text)
	}
}

func TestJSONStoreLoadErrors(t *testing.T) {
	store := JSONStore{}

	_, err := store.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, ErrInvalidDeck))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = store.Load(bad)
	assert.True(t, errors.Is(err, ErrInvalidDeck))
}
