package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOf_OrderIrrelevant(t *testing.T) {
	a, b, c := place("a", 0, 0), place("b", 1, 1), place("c", 2, 2)

	c1, err := NewCluster(CellAround(GeoCoordinates{}, 5), a, b, c)
	require.NoError(t, err)
	c2, err := NewCluster(CellAround(GeoCoordinates{}, 1), c, a, b)
	require.NoError(t, err)

	assert.Equal(t, KeyOf(c1), KeyOf(c2))
	assert.True(t, SameItems(c1, c2))
}

func TestKeyOf_DuplicatesIgnored(t *testing.T) {
	a, b := place("a", 0, 0), place("b", 1, 1)

	c1, err := NewCluster(CellAround(GeoCoordinates{}, 1), a, b, a)
	require.NoError(t, err)
	c2, err := NewCluster(CellAround(GeoCoordinates{}, 1), b, a)
	require.NoError(t, err)

	assert.True(t, SameItems(c1, c2))
}

func TestKeyOf_Different(t *testing.T) {
	c1, err := NewCluster(CellAround(GeoCoordinates{}, 1), place("a", 0, 0), place("b", 0, 0))
	require.NoError(t, err)
	c2, err := NewCluster(CellAround(GeoCoordinates{}, 1), place("a", 0, 0))
	require.NoError(t, err)
	// "ab" must not collide with a single item "ab"
	c3, err := NewCluster(CellAround(GeoCoordinates{}, 1), place("ab", 0, 0))
	require.NoError(t, err)

	assert.NotEqual(t, KeyOf(c1), KeyOf(c2))
	assert.NotEqual(t, KeyOf(c1), KeyOf(c3))
	assert.Len(t, KeyOf(c1).String(), 16)
}
