package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	p := Paginate(seq(25), 2, 10, 100)
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, p.Items)
	assert.Equal(t, 25, p.TotalCount)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)

	last := Paginate(seq(25), 3, 10, 100)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, last.Items)
}

func TestPaginateBeyondRange(t *testing.T) {
	p := Paginate(seq(5), 4, 2, 100)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 5, p.TotalCount)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateHugePage(t *testing.T) {
	for _, page := range []int{math.MaxInt/50 + 2, math.MaxInt / 50, math.MaxInt} {
		p := Paginate(seq(3), page, 50, 100)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, page, p.CurrentPage)
		assert.Equal(t, 3, p.TotalCount)
		assert.Equal(t, 1, p.TotalPages)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]int{}, 1, 10, 100)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 0, p.TotalPages)
}

func TestPaginateClamps(t *testing.T) {
	p := Paginate(seq(250), 1, 1000, 100)
	assert.Equal(t, 100, p.PageSize)
	assert.Len(t, p.Items, 100)
	assert.Equal(t, 3, p.TotalPages)

	p = Paginate(seq(3), 0, 0, 100)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.PageSize)
	assert.Equal(t, []int{1}, p.Items)
}

func TestPaginateExhaustiveAndDisjoint(t *testing.T) {
	all := seq(47)
	for _, size := range []int{1, 5, 10, 47, 50} {
		first := Paginate(all, 1, size, 100)
		var joined []int
		for page := 1; page <= first.TotalPages; page++ {
			joined = append(joined, Paginate(all, page, size, 100).Items...)
		}
		assert.Equal(t, all, joined, "size %d", size)
	}
}

func TestMapPage(t *testing.T) {
	p := MapPage(Paginate(seq(5), 2, 2, 0), func(i int) int { return i * 10 })
	assert.Equal(t, []int{30, 40}, p.Items)
	assert.Equal(t, 5, p.TotalCount)
	assert.Equal(t, 3, p.TotalPages)
}
