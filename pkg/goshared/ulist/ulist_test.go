package ulist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/goshared/pkg/goshared/ulist"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ulist.New(1, 2, 3).Items())
	assert.Equal(t, []int{1, 2}, ulist.New(1, 1, 2, 1).Items())
	assert.Equal(t, 0, ulist.New[int]().Len())
}

func TestZeroValue(t *testing.T) {
	var l ulist.UniqueList[string]
	assert.True(t, l.Append("a"))
	assert.False(t, l.Append("a"))
	assert.Equal(t, 1, l.Len())
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []bool
	}{
		{"single", []any{1}, []bool{true}},
		{"repeats", []any{1, 1, 1, 1}, []bool{true, false, false, false}},
		{"distinct types", []any{1, "1", 1.0, "1.0", int64(1)}, []bool{true, true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ulist.New[any]()
			for i, v := range tt.in {
				assert.Equal(t, tt.want[i], l.Append(v), "append %v", v)
			}
		})
	}
}

func TestExtend(t *testing.T) {
	l := ulist.New[int]()
	assert.Equal(t, 3, l.Extend(1, 2, 3))

	ones := make([]int, 100)
	for i := range ones {
		ones[i] = 1
	}
	l = ulist.New[int]()
	assert.Equal(t, 1, l.Extend(ones...))
	assert.Equal(t, 1, l.Len())
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]int
		want  []int
	}{
		{"disjoint", [][]int{{1, 2, 3}, {4, 5, 6}}, []int{1, 2, 3, 4, 5, 6}},
		{"overlap", [][]int{{1, 2, 3}, {1, 2, 3, 4}}, []int{1, 2, 3, 4}},
		{"empty", [][]int{{}, {}}, []int{}},
		{"with empty middle", [][]int{{1, 2, 3}, {}, {0, 0, 0}}, []int{1, 2, 3, 0}},
		{"trailing only", [][]int{{}, {}, {}, {4}}, []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := ulist.New[int]()
			got := base.Concat(tt.lists...)
			assert.Equal(t, tt.want, got.Items())
			assert.Equal(t, 0, base.Len())
		})
	}
}

func TestGetSlice(t *testing.T) {
	l := ulist.New(1, 2, 3)
	assert.Equal(t, 2, l.Get(1))
	assert.Equal(t, []int{2, 3}, l.Slice(1, 3).Items())
	assert.Panics(t, func() { l.Get(3) })
}

func TestSet(t *testing.T) {
	l := ulist.New(1, 2, 3)

	assert.True(t, l.Set(1, 4))
	assert.Equal(t, []int{1, 4, 3}, l.Items())
	assert.False(t, l.Contains(2))
	assert.Equal(t, 1, l.Index(4))

	assert.False(t, l.Set(0, 3), "3 already lives at index 2")
	assert.Equal(t, []int{1, 4, 3}, l.Items())

	assert.True(t, l.Set(2, 3), "same value at same index")
	assert.Panics(t, func() { l.Set(5, 9) })
}

func TestContainsIndexRemove(t *testing.T) {
	l := ulist.New("a", "b", "c", "d")

	assert.True(t, l.Contains("c"))
	assert.Equal(t, 2, l.Index("c"))
	assert.Equal(t, -1, l.Index("z"))

	assert.True(t, l.Remove("b"))
	assert.False(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c", "d"}, l.Items())
	assert.Equal(t, 1, l.Index("c"))
	assert.Equal(t, 2, l.Index("d"))

	assert.True(t, l.Append("b"))
	assert.Equal(t, 3, l.Index("b"))
}

func TestItemsIsCopy(t *testing.T) {
	l := ulist.New(1, 2)
	items := l.Items()
	items[0] = 9
	assert.Equal(t, 1, l.Get(0))
}

func TestAll(t *testing.T) {
	l := ulist.New("x", "y")
	var idx []int
	var vals []string
	for i, v := range l.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"x", "y"}, vals)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", ulist.New(1, 2, 3).String())
	assert.Equal(t, "[]", ulist.New[int]().String())
}
