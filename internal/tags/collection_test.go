package tags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnationhq/cpu-keywords-mcp/internal/keywords"
)

func newCollection() *Collection {
	reserved := Reserved{
		Brands:     []string{"intel", "انتل"},
		Categories: []string{"laptop", "لابتوب"},
	}
	return New(keywords.NewGenerator(keywords.Options{}), reserved, nil)
}

func TestAddExpandsCPUName(t *testing.T) {
	c := newCollection()

	added, err := c.Add("Intel Core i5-1235U")
	require.NoError(t, err)
	assert.Equal(t, len(added), c.Len())
	assert.Contains(t, c.Tags(), "i5 1235u")
	assert.Contains(t, c.Tags(), "انتل i5 1235u")

	tags := c.Tags()
	for i := 1; i < len(tags); i++ {
		assert.LessOrEqual(t, len([]rune(tags[i-1])), len([]rune(tags[i])), "tags must be sorted by length")
	}
}

func TestAddErrors(t *testing.T) {
	c := newCollection()
	_, err := c.Add("Intel Core i5-1235U")
	require.NoError(t, err)

	tests := []struct {
		name string
		tag  string
		want error
	}{
		{"blank", "   ", ErrBlank},
		{"punctuation only", "--!", ErrBlank},
		{"duplicate", "Intel Core i5 1235U", ErrDuplicate},
		{"duplicate after sanitizing", "i5-1235U", ErrDuplicate},
		{"brand", "Intel", ErrBrandConflict},
		{"arabic brand", "انتل", ErrBrandConflict},
		{"category", "LAPTOP", ErrCategoryConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := c.Len()
			_, err := c.Add(tt.tag)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Equal(t, before, c.Len())
		})
	}
}

func TestAddBatch(t *testing.T) {
	c := newCollection()
	res := c.AddBatch("i5")
	require.Equal(t, 1, res.Added)

	res = c.AddBatch("i5, رايزن 7، intel,laptop , gaming cpu,,")
	assert.Equal(t, 3, res.Added)
	assert.Equal(t, []string{"i5"}, res.Duplicates)
	assert.Equal(t, []string{"intel"}, res.BrandConflicts)
	assert.Equal(t, []string{"laptop"}, res.CategoryConflicts)
	assert.Equal(t, 3, res.Rejected())

	assert.ElementsMatch(t, []string{"i5", "رايزن 7", "رايزن ٧", "gaming cpu"}, c.Tags())
	assert.Equal(t, "i5", c.Tags()[0])
}

func TestAddBatchSanitizes(t *testing.T) {
	c := newCollection()
	res := c.AddBatch("  (ryzen 7)!  ")
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, []string{"ryzen 7"}, c.Tags())
}

func TestSortStableByLength(t *testing.T) {
	c := newCollection()
	c.AddBatch("abc, zz, a, yy, b")
	assert.Equal(t, []string{"a", "b", "zz", "yy", "abc"}, c.Tags())
}

func TestFilterAndRemove(t *testing.T) {
	c := newCollection()
	c.AddBatch("ryzen 5, ryzen 7, i5, i7")

	assert.Equal(t, []string{"ryzen 5", "ryzen 7"}, c.Filter(" RYZEN "))
	assert.Equal(t, c.Tags(), c.Filter(""))

	removed, err := c.Remove(1, "ryzen")
	require.NoError(t, err)
	assert.Equal(t, "ryzen 7", removed)
	assert.Equal(t, []string{"i5", "i7", "ryzen 5"}, c.Tags())

	_, err = c.Remove(5, "")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.Remove(-1, "")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.Remove(0, "xeon")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEdit(t *testing.T) {
	c := newCollection()
	c.AddBatch("i5, ryzen 5")

	tag, err := c.Edit(0, "")
	require.NoError(t, err)
	assert.Equal(t, "i5", tag)
	assert.Equal(t, []string{"ryzen 5"}, c.Tags())
}

func TestClearAndUndo(t *testing.T) {
	c := newCollection()
	assert.Equal(t, 0, c.Clear())
	assert.False(t, c.Undo())

	c.AddBatch("i5, i7")
	assert.Equal(t, 2, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Export())

	require.True(t, c.Undo())
	assert.Equal(t, []string{"i5", "i7"}, c.Tags())
	assert.False(t, c.Undo(), "undo is one step")
}

func TestExportIgnoresFilter(t *testing.T) {
	c := newCollection()
	c.AddBatch("i5, ryzen 5")
	_ = c.Filter("ryzen")
	assert.Equal(t, "i5,ryzen 5", c.Export())
}

func TestAddBatchIgnoresCase(t *testing.T) {
	c := newCollection()
	_, err := c.Add("Intel Core i5-1235U")
	require.NoError(t, err)
	before := c.Len()

	res := c.AddBatch("I5 1235U, Ryzen 7, ryzen 7")
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, []string{"i5 1235u", "ryzen 7"}, res.Duplicates)
	assert.Equal(t, before+1, c.Len())
	assert.Contains(t, c.Tags(), "ryzen 7")
	assert.NotContains(t, c.Tags(), "Ryzen 7")
	assert.Equal(t, []string{"ryzen 7"}, c.Filter("RYZEN 7"))
}
