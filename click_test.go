package cluster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cluster "github.com/MadAppGang/clusterrenderer"
	"github.com/MadAppGang/clusterrenderer/memmap"
)

type recordingCallbacks struct {
	clusters []cluster.Cluster
	items    []cluster.Item
	consume  bool
}

func (c *recordingCallbacks) OnClusterClick(cl cluster.Cluster) bool {
	c.clusters = append(c.clusters, cl)
	return c.consume
}

func (c *recordingCallbacks) OnClusterItemClick(item cluster.Item) bool {
	c.items = append(c.items, item)
	return c.consume
}

func TestClick_MultiItemCluster(t *testing.T) {
	cb := &recordingCallbacks{consume: true}
	r, mp, _ := setup(t, cluster.WithCallbacks(cb))
	a := clusterA(t)
	require.NoError(t, r.Render([]cluster.Cluster{a}))

	assert.True(t, mp.Click(markerOf(t, r, a)))
	require.Len(t, cb.clusters, 1)
	assert.Equal(t, a, cb.clusters[0])
	assert.Empty(t, cb.items)
}

func TestClick_SingleItemCluster(t *testing.T) {
	cb := &recordingCallbacks{consume: true}
	r, mp, _ := setup(t)
	r.SetCallbacks(cb)
	b := single(t, p1)
	require.NoError(t, r.Render([]cluster.Cluster{b}))

	assert.True(t, mp.Click(markerOf(t, r, b)))
	require.Len(t, cb.items, 1)
	assert.Equal(t, cluster.Item(p1), cb.items[0])
	assert.Empty(t, cb.clusters)
}

func TestClick_ResultComesFromCallback(t *testing.T) {
	cb := &recordingCallbacks{consume: false}
	r, mp, _ := setup(t, cluster.WithCallbacks(cb))
	a := clusterA(t)
	require.NoError(t, r.Render([]cluster.Cluster{a}))

	assert.False(t, mp.Click(markerOf(t, r, a)))
	assert.Len(t, cb.clusters, 1)
}

func TestClick_NoCallbacks(t *testing.T) {
	r, mp, _ := setup(t)
	a := clusterA(t)
	require.NoError(t, r.Render([]cluster.Cluster{a}))
	assert.False(t, mp.Click(markerOf(t, r, a)))

	cb := &recordingCallbacks{consume: true}
	r.SetCallbacks(cb)
	r.SetCallbacks(nil)
	assert.False(t, mp.Click(markerOf(t, r, a)))
	assert.Empty(t, cb.clusters)
}

func TestClick_ForeignMarker(t *testing.T) {
	cb := &recordingCallbacks{consume: true}
	r, mp, _ := setup(t, cluster.WithCallbacks(cb))

	foreign := mp.AddMarker(cluster.MarkerOptions{Title: "not a cluster"})
	foreign.SetTag("something else")

	assert.False(t, r.OnMarkerClick(foreign))
	assert.False(t, mp.Click(foreign.(*memmap.Marker)))
	assert.Empty(t, cb.clusters)
	assert.Empty(t, cb.items)
}

func TestClick_CallbackFuncs(t *testing.T) {
	var got cluster.Item
	r, mp, _ := setup(t, cluster.WithCallbacks(cluster.CallbackFuncs{
		Item: func(item cluster.Item) bool {
			got = item
			return true
		},
	}))
	a, b := clusterA(t), single(t, &cluster.Place{Key: "far", Coordinates: cluster.GeoCoordinates{Lon: 40}})
	require.NoError(t, r.Render([]cluster.Cluster{a, b}))

	assert.False(t, mp.Click(markerOf(t, r, a)), "nil Cluster func leaves it unhandled")
	assert.True(t, mp.Click(markerOf(t, r, b)))
	assert.Equal(t, "far", got.ID())
}

func TestTap_ExitingMarkerStillDispatches(t *testing.T) {
	cb := &recordingCallbacks{consume: true}
	r, mp, f := setup(t, cluster.WithCallbacks(cb))
	b, c := single(t, p1), single(t, p2)
	require.NoError(t, r.Render([]cluster.Cluster{b, c}))
	f.Flush()
	mb := markerOf(t, r, b)

	a := clusterA(t)
	require.NoError(t, r.Render([]cluster.Cluster{a}))
	f.Advance(200 * time.Millisecond)

	// every marker is within the radius, the exiting ones are in the background
	assert.True(t, mp.Tap(centerA, 1e6))
	require.Len(t, cb.clusters, 1)
	assert.Equal(t, a, cb.clusters[0])

	// a direct tap on a marker sliding into its parent dispatches what it shows
	require.False(t, mb.Removed())
	assert.True(t, r.OnMarkerClick(mb))
	require.Len(t, cb.items, 1)
	assert.Equal(t, p1, cb.items[0])
	assert.Len(t, cb.clusters, 1)

	f.Flush()
	assert.True(t, mb.Removed())
	assert.False(t, r.OnMarkerClick(mb), "removed markers are not dispatched")
	assert.Len(t, cb.items, 1)
}

func TestTap_Miss(t *testing.T) {
	cb := &recordingCallbacks{consume: true}
	r, mp, _ := setup(t, cluster.WithCallbacks(cb))
	require.NoError(t, r.Render([]cluster.Cluster{single(t, p1)}))

	assert.False(t, mp.Tap(cluster.GeoCoordinates{Lon: -120, Lat: -40}, 20))
	assert.True(t, mp.Tap(p1.Coordinates, 20))
	assert.Len(t, cb.items, 1)
}
