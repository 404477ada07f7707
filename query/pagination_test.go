package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkip(t *testing.T) {
	testCases := []struct {
		pageNumber, pageSize int
		want                 int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 7, 14},
		{10, 1, 9},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Skip(tc.pageNumber, tc.pageSize), "page=%d size=%d", tc.pageNumber, tc.pageSize)
	}
}

func TestSkipMatchesFormulaForRange(t *testing.T) {
	for page := 1; page <= 20; page++ {
		for size := 1; size <= 20; size++ {
			assert.Equal(t, int64((page-1)*size), Skip(page, size))
		}
	}
}

func TestNewPagePagesCount(t *testing.T) {
	testCases := []struct {
		name      string
		total     int64
		pageSize  int
		wantPages int
	}{
		{"empty", 0, 10, 0},
		{"exact", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"smaller than page", 3, 10, 1},
		{"page size one", 5, 1, 5},
		{"non positive page size", 5, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage[int](1, tc.pageSize, nil, tc.total)
			assert.Equal(t, tc.wantPages, page.PagesCount)
			assert.Equal(t, tc.total, page.TotalCount)
		})
	}
}

func TestNewPageKeepsItemsAndNormalisesNil(t *testing.T) {
	page := NewPage[string](2, 2, nil, 0)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PageSize)

	page = NewPage(1, 2, []string{"a", "b"}, 5)
	assert.Equal(t, []string{"a", "b"}, page.Items)
	assert.Equal(t, 3, page.PagesCount)
}
