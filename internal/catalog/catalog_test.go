package catalog

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogTimings(t *testing.T) {
	c := Default()
	require.Equal(t, []string{Relaxation, Box, Calm}, c.IDs())

	relax, ok := c.Lookup(Relaxation)
	require.True(t, ok)
	assert.Equal(t, models.Technique{ID: Relaxation, Name: "Relaxation", Inhale: 4, Exhale: 6}, relax)

	box, ok := c.Lookup(Box)
	require.True(t, ok)
	assert.Equal(t, 4, box.Hold)

	calm, ok := c.Lookup(Calm)
	require.True(t, ok)
	assert.Equal(t, "4-7-8", calm.Pattern())
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Default().Lookup("wim-hof")
	assert.False(t, ok)
	assert.Equal(t, -1, Default().IndexOf("wim-hof"))
}

func TestEntriesAreCopies(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Benefits[0] = "mutated"
	entries[0].Technique.Inhale = 99

	again, ok := c.Entry(Relaxation)
	require.True(t, ok)
	assert.Equal(t, "Reduces anxiety", again.Benefits[0])
	assert.Equal(t, 4, again.Technique.Inhale)
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New(Entry{Technique: models.Technique{ID: "zero"}})
	assert.True(t, errors.Is(err, models.ErrInvalidTechnique))

	dup := Entry{Technique: models.Technique{ID: "a", Inhale: 1, Exhale: 1}}
	_, err = New(dup, dup)
	assert.Error(t, err)
}
