package bplustree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeekOnEmptyTreeReturnsError(t *testing.T) {
	tr := New[int, int](4)
	_, err := tr.Seek(1)
	assert.ErrorIs(t, err, ErrEmptyTree)

	assert.Nil(t, tr.SeekFirst())
	assert.Nil(t, tr.SeekLast())
}

func TestSeekExactMatch(t *testing.T) {
	tr := New[int, string](4)
	tr.Insert(1, "a")
	tr.Insert(2, "b")
	tr.Insert(3, "c")

	c, err := tr.Seek(2)
	require.NoError(t, err)
	require.True(t, c.Valid())
	assert.Equal(t, 2, c.Key())
	assert.Equal(t, "b", c.Value())
}

func TestSeekBetweenKeysFindsNext(t *testing.T) {
	tr := New[int, int](4)
	tr.Insert(10, 10)
	tr.Insert(20, 20)
	tr.Insert(30, 30)

	c, err := tr.Seek(15)
	require.NoError(t, err)
	require.True(t, c.Valid())
	assert.Equal(t, 20, c.Key())
}

func TestSeekPastEndIsInvalid(t *testing.T) {
	tr := New[int, int](4)
	tr.Insert(1, 1)
	tr.Insert(2, 2)

	c, err := tr.Seek(100)
	require.NoError(t, err)
	assert.False(t, c.Valid())
}

func TestCursorNextWalksForward(t *testing.T) {
	tr := New[int, int](3)
	for i := 0; i < 30; i++ {
		tr.Insert(i, i)
	}

	c := tr.SeekFirst()
	require.NotNil(t, c)

	var got []int
	for c.Valid() {
		got = append(got, c.Key())
		c.Next()
	}
	assert.Equal(t, tr.KeysInOrder(), got)
}

func TestCursorPrevWalksBackward(t *testing.T) {
	tr := New[int, int](3)
	for i := 0; i < 30; i++ {
		tr.Insert(i, i)
	}

	c := tr.SeekLast()
	require.NotNil(t, c)

	var got []int
	for c.Valid() {
		got = append(got, c.Key())
		c.Prev()
	}

	want := tr.KeysInOrder()
	for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
		want[i], want[j] = want[j], want[i]
	}
	assert.Equal(t, want, got)
}

func TestCursorNextPastEndStaysInvalid(t *testing.T) {
	tr := New[int, int](4)
	tr.Insert(1, 1)

	c := tr.SeekFirst()
	c.Next()
	assert.False(t, c.Valid())

	c.Next() // no-op, must not panic
	assert.False(t, c.Valid())
}
