package qbf_test

import (
	"testing"

	"github.com/katalvlaran/qbftp/qbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution_InsertRemove(t *testing.T) {
	s := qbf.NewSolution()
	assert.Equal(t, 0.0, s.Cost)
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Insert(4))
	assert.True(t, s.Insert(1))
	assert.False(t, s.Insert(4), "duplicate insert must not change the set")
	assert.Equal(t, []int{4, 1}, s.Elements, "insertion order is kept")

	assert.True(t, s.Remove(4))
	assert.False(t, s.Remove(4))
	assert.Equal(t, []int{1}, s.Elements)
}

func TestSolution_CloneAndString(t *testing.T) {
	s := qbf.NewSolution()
	s.Insert(3)
	s.Cost = 12.5

	c := s.Clone()
	c.Insert(5)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 12.5, c.Cost)
	assert.Equal(t, "Solution: cost=[12.5], size=[1], elements=[3]", s.String())
}

func TestAssignment_Refresh(t *testing.T) {
	s := qbf.NewSolution()
	s.Insert(0)
	s.Insert(2)

	x := qbf.Assignment{1, 1, 1, 1}
	require.NoError(t, x.Refresh(s))
	assert.Equal(t, qbf.Assignment{1, 0, 1, 0}, x)
	assert.True(t, x.Selected(2))
	assert.False(t, x.Selected(9))
	assert.Equal(t, 2, x.Count())

	assert.ErrorIs(t, x.Refresh(nil), qbf.ErrNilSolution)

	s.Insert(4)
	_, err := qbf.AssignmentOf(s, 4)
	assert.ErrorIs(t, err, qbf.ErrIndexOutOfRange)
}
