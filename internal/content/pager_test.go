package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clubhub/internal/dbmysql"
)

func makeEntities(n int) []dbmysql.ContentEntity {
	items := make([]dbmysql.ContentEntity, n)
	for i := range items {
		items[i] = dbmysql.ContentEntity{EntityID: uint64(i + 1)}
	}
	return items
}

func TestSlicePagerPagesConcatenateToWholeSet(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		pages    int
	}{
		{"even split", 10, 5, 2},
		{"ragged last page", 7, 3, 3},
		{"single page", 3, 10, 1},
		{"empty", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pager := NewSlicePager(makeEntities(tt.total), tt.pageSize)
			require.Equal(t, tt.total, pager.TotalCount())
			require.Equal(t, tt.pages, pager.TotalPages())

			var all []dbmysql.ContentEntity
			for n := 1; n <= pager.TotalPages(); n++ {
				all = append(all, pager.Page(n)...)
			}

			// Every item exactly once, in order.
			require.Len(t, all, tt.total)
			for i, item := range all {
				require.Equal(t, uint64(i+1), item.EntityID)
			}
		})
	}
}

func TestSlicePagerPastTheEndIsEmpty(t *testing.T) {
	pager := NewSlicePager(makeEntities(4), 3)
	require.Empty(t, pager.Page(3))
	require.Empty(t, pager.Page(0))
}

func TestSlicePagerLoadMoreAccumulates(t *testing.T) {
	pager := NewSlicePager(makeEntities(7), 3)

	loaded, more := pager.LoadMore()
	require.Len(t, loaded, 3)
	require.True(t, more)

	loaded, more = pager.LoadMore()
	require.Len(t, loaded, 6)
	require.True(t, more)

	loaded, more = pager.LoadMore()
	require.Len(t, loaded, 7)
	require.False(t, more)

	// Exhausted: the list stays put.
	loaded, more = pager.LoadMore()
	require.Len(t, loaded, 7)
	require.False(t, more)
	require.Len(t, pager.Loaded(), 7)
}

func TestSlicePagerCountsFoldOverFullSet(t *testing.T) {
	items := makeEntities(6)
	items[0].Featured = true
	items[3].Featured = true
	items[0].Active = true
	items[1].Active = true
	items[5].Active = true

	// Page size 2 — counts must still come from all six items.
	pager := NewSlicePager(items, 2)
	counts := pager.Counts()
	require.Equal(t, int64(6), counts.Total)
	require.Equal(t, int64(2), counts.Featured)
	require.Equal(t, int64(3), counts.Active)
}
