package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateSlicesAfterFiltering(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, err := Paginate(items, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestPaginateConcatenationCoversAll(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	var collected []int
	for p := 1; ; p++ {
		page, err := Paginate(items, p, 3)
		require.NoError(t, err)
		collected = append(collected, page.Items...)
		if !page.HasNext {
			break
		}
	}
	assert.Equal(t, items, collected)
}

func TestPaginateOutOfRangePage(t *testing.T) {
	page, err := Paginate([]int{1, 2}, 5, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestPaginateEmptyInput(t *testing.T) {
	page, err := Paginate([]int{}, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestPaginateRejectsInvalidParams(t *testing.T) {
	_, err := Paginate([]int{1}, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Paginate([]int{1}, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Paginate([]int{1}, -2, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
