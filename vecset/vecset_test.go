package vecset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ekkprimal/vecset"
)

func TestSparseVector_SetAndIndex(t *testing.T) {
	r := require.New(t)
	v := vecset.NewSparseVector(5)

	v.Set(2, 4.0)
	v.Set(4, -1.0)
	r.Equal(2, v.Count())
	r.ElementsMatch([]int{2, 4}, v.Index())
	r.Equal(4.0, v.Get(2))
	r.Equal(0.0, v.Get(0))
}

func TestSparseVector_SetTwiceSamePosition(t *testing.T) {
	r := require.New(t)
	v := vecset.NewSparseVector(3)

	v.Set(1, 1.0)
	v.Set(1, 2.0)
	r.Equal(1, v.Count())
	r.Equal(2.0, v.Get(1))
}

func TestSparseVector_SetFresh(t *testing.T) {
	r := require.New(t)
	v := vecset.NewSparseVector(3)

	v.SetFresh(0, 1.0)
	v.SetFresh(2, 3.0)
	r.Equal(2, v.Count())
	r.Equal([]int{0, 2}, v.Index())
}

func TestSparseVector_Clear(t *testing.T) {
	r := require.New(t)
	v := vecset.NewSparseVector(4)

	v.Set(0, 1.0)
	v.Set(3, 2.0)
	v.Clear()
	r.Equal(0, v.Count())
	r.Equal(0.0, v.Get(0))
	r.Equal(0.0, v.Get(3))
}

func TestSparseVector_Reset(t *testing.T) {
	r := require.New(t)
	v := vecset.NewSparseVector(2)

	v.Set(0, 5.0)
	v.Reset()
	r.Equal(0, v.Count())
	r.Equal(5.0, v.Get(0), "Reset must not zero the backing array")
}

func TestIndexSet_AddRemoveContains(t *testing.T) {
	r := require.New(t)
	s := vecset.NewIndexSet(5)

	r.True(s.Add(1))
	r.True(s.Add(3))
	r.False(s.Add(1), "duplicate Add must report false")
	r.True(s.Contains(1))
	r.Equal(2, s.Count())

	r.True(s.Remove(1))
	r.False(s.Contains(1))
	r.Equal(1, s.Count())
	r.ElementsMatch([]int{3}, s.Entries())
}

func TestIndexSet_RemoveSwapsWithLast(t *testing.T) {
	r := require.New(t)
	s := vecset.NewIndexSet(5)
	s.Add(0)
	s.Add(1)
	s.Add(2)

	r.True(s.Remove(0))
	r.ElementsMatch([]int{1, 2}, s.Entries())
	r.True(s.Contains(1))
	r.True(s.Contains(2))
}

func TestIndexSet_Clear(t *testing.T) {
	r := require.New(t)
	s := vecset.NewIndexSet(3)
	s.Add(0)
	s.Add(2)

	s.Clear()
	r.Equal(0, s.Count())
	r.False(s.Contains(0))
	r.False(s.Contains(2))
}
