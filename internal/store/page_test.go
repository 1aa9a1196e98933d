package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	t.Run("applies defaults for out-of-range values", func(t *testing.T) {
		req := PageRequest{Page: 0, PerPage: 0}.Normalize()
		assert.Equal(t, DefaultPage, req.Page)
		assert.Equal(t, DefaultPerPage, req.PerPage)

		req = PageRequest{Page: -3, PerPage: -1}.Normalize()
		assert.Equal(t, DefaultPage, req.Page)
		assert.Equal(t, DefaultPerPage, req.PerPage)
	})

	t.Run("caps perpage", func(t *testing.T) {
		req := PageRequest{Page: 2, PerPage: 1000}.Normalize()
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, MaxPerPage, req.PerPage)
	})

	t.Run("keeps values inside bounds", func(t *testing.T) {
		req := PageRequest{Page: 4, PerPage: 25}.Normalize()
		assert.Equal(t, 4, req.Page)
		assert.Equal(t, 25, req.PerPage)
	})
}

func TestPageRequestWindow(t *testing.T) {
	req := PageRequest{Page: 3, PerPage: 15}
	assert.Equal(t, 15, req.Limit())
	assert.Equal(t, 30, req.Offset())

	first := PageRequest{Page: 1, PerPage: 15}
	assert.Equal(t, 0, first.Offset())
}

func TestNewPage(t *testing.T) {
	t.Run("computes last page by ceiling division", func(t *testing.T) {
		page := NewPage([]int{1, 2, 3}, 31, PageRequest{Page: 1, PerPage: 15})
		assert.Equal(t, int64(31), page.Total)
		assert.Equal(t, 3, page.LastPage)
	})

	t.Run("exact multiple has no partial page", func(t *testing.T) {
		page := NewPage([]int{}, 30, PageRequest{Page: 2, PerPage: 15})
		assert.Equal(t, 2, page.LastPage)
	})

	t.Run("empty listing still reports page one", func(t *testing.T) {
		page := NewPage[int](nil, 0, PageRequest{Page: 1, PerPage: 15})
		assert.Equal(t, 1, page.LastPage)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}
