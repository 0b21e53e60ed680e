package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clusterOf(t *testing.T, n int) Cluster {
	t.Helper()
	items := make([]Item, n)
	for i := range items {
		items[i] = place(string(rune('a'+i%26))+string(rune('0'+i/26%10))+string(rune('0'+i/260)), 0, 0)
	}
	c, err := NewClusterAt(GeoCoordinates{}, CellAround(GeoCoordinates{}, 1), items...)
	require.NoError(t, err)
	return c
}

func TestDefaultIconGenerator(t *testing.T) {
	g := DefaultIconGenerator{}

	assert.Equal(t, Badge{Label: "3", Bucket: 3}, g.ClusterIcon(clusterOf(t, 3)))
	assert.Equal(t, Badge{Label: "10", Bucket: 10}, g.ClusterIcon(clusterOf(t, 10)))
	assert.Equal(t, Badge{Label: "20+", Bucket: 20}, g.ClusterIcon(clusterOf(t, 27)))
	assert.Equal(t, Badge{Label: "1000+", Bucket: 1000}, g.ClusterIcon(clusterOf(t, 1500)))
	assert.Equal(t, Badge{Bucket: 1}, g.ClusterItemIcon(place("a", 0, 0)))
}

func TestDefaultIconGenerator_CustomBuckets(t *testing.T) {
	g := DefaultIconGenerator{Buckets: []int{5, 25}}

	assert.Equal(t, Badge{Label: "4", Bucket: 4}, g.ClusterIcon(clusterOf(t, 4)))
	assert.Equal(t, Badge{Label: "5+", Bucket: 5}, g.ClusterIcon(clusterOf(t, 7)))
	assert.Equal(t, Badge{Label: "25+", Bucket: 25}, g.ClusterIcon(clusterOf(t, 30)))
}

func TestMustIcon(t *testing.T) {
	assert.Panics(t, func() { mustIcon(nil) })
	assert.NotPanics(t, func() { mustIcon(Badge{}) })
}
