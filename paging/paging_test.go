package paging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	for size := 1; size <= 12; size++ {
		for total := 0; total <= 60; total++ {
			want := total / size
			if total%size != 0 {
				want++
			}
			assert.Equal(t, want, PageCount(total, size), "total=%d size=%d", total, size)
		}
	}
	assert.Equal(t, 0, PageCount(UnknownCount, 10))
	assert.Equal(t, 0, PageCount(10, 0))
}

func TestNewInfoLastPageRangeIsClipped(t *testing.T) {
	info := NewInfo(25, 3, 10)

	assert.Equal(t, 3, info.PageCount)
	assert.Equal(t, [2]int{21, 25}, info.Range)
	assert.False(t, info.HasNext())
	assert.True(t, info.HasPrev())
	assert.Equal(t, 2, info.Prev)
}

func TestNewInfoRangeNeverExceedsTotal(t *testing.T) {
	for size := 1; size <= 9; size++ {
		for total := 1; total <= 40; total++ {
			pages := PageCount(total, size)
			for page := 1; page <= pages; page++ {
				info := NewInfo(total, page, size)
				assert.LessOrEqual(t, info.Range[1], total)
				assert.Equal(t, (page-1)*size+1, info.Range[0])
			}
		}
	}
}

func TestNewInfoNeighbours(t *testing.T) {
	info := NewInfo(20, 1, 10)
	assert.False(t, info.HasPrev())
	assert.True(t, info.HasNext())
	assert.Equal(t, 2, info.Next)
	assert.Equal(t, [2]int{11, 20}, NewInfo(20, 2, 10).Range)

	info = NewInfo(20, 2, 10)
	assert.True(t, info.HasPrev())
	assert.False(t, info.HasNext())

	// past the end after a page size change
	info = NewInfo(20, 5, 10)
	assert.True(t, info.HasPrev())
	assert.False(t, info.HasNext())
	assert.Equal(t, [2]int{0, 0}, info.Range)
}

func TestNewInfoUnknownTotal(t *testing.T) {
	info := NewInfo(UnknownCount, 1, 10)

	assert.False(t, info.Known())
	assert.Equal(t, 0, info.PageCount)
	assert.False(t, info.HasPrev())
	assert.False(t, info.HasNext())
	assert.Equal(t, [2]int{0, 0}, info.Range)
}

func TestNormalizeParams(t *testing.T) {
	assert.Equal(t, Params{Page: 1, PageSize: DefaultPageSize}, NormalizeParams(Params{}))
	assert.Equal(t, Params{Page: 2, PageSize: MaxPageSize}, NormalizeParams(Params{Page: 2, PageSize: MaxPageSize + 1}))
	assert.Equal(t, Params{Page: 4, PageSize: 5}, NormalizeParams(Params{Page: 4, PageSize: 5}))
}

func TestPaginate(t *testing.T) {
	var gotOffset, gotLimit int
	result, err := Paginate(Params{Page: 3, PageSize: 10}, func(offset, limit int) ([]int, int, error) {
		gotOffset, gotLimit = offset, limit
		return []int{21, 22, 23, 24, 25}, 25, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 20, gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 25, result.Count)
	assert.Len(t, result.Results, 5)
}

func TestPaginateNeverReturnsNilResults(t *testing.T) {
	result, err := Paginate(Params{}, NoopPagingFunc[string])
	require.NoError(t, err)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
}

func TestPaginateTruncatesOversizedWindows(t *testing.T) {
	result, err := Paginate(Params{Page: 1, PageSize: 2}, func(offset, limit int) ([]int, int, error) {
		return []int{1, 2, 3}, 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result.Results)
}

func TestPaginateWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Paginate(Params{}, func(offset, limit int) ([]int, int, error) {
		return nil, 0, boom
	})
	assert.ErrorIs(t, err, boom)
}
