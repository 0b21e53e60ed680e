package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cluster "github.com/MadAppGang/clusterrenderer"
)

type listenerFunc func(cluster.Marker) bool

func (f listenerFunc) OnMarkerClick(m cluster.Marker) bool { return f(m) }

func add(m *Map, lon, lat, z float64) *Marker {
	return m.AddMarker(cluster.MarkerOptions{
		Position: cluster.GeoCoordinates{Lon: lon, Lat: lat},
		Alpha:    1,
		ZIndex:   z,
	}).(*Marker)
}

func TestMap_AddAndJournal(t *testing.T) {
	m := New()
	mk := add(m, 10, 50, 1)

	require.Len(t, m.Markers(), 1)
	assert.NotEmpty(t, mk.ID())
	assert.Equal(t, cluster.GeoCoordinates{Lon: 10, Lat: 50}, mk.Position())

	mk.SetPosition(cluster.GeoCoordinates{Lon: 11, Lat: 51})
	mk.SetAlpha(0.5)
	mk.SetZIndex(0)
	mk.SetTitle("t")
	mk.SetSnippet("s")
	mk.SetIcon("icon")
	mk.SetTag(42)

	kinds := make([]OpKind, 0)
	for _, op := range m.Journal() {
		assert.Equal(t, mk.ID(), op.MarkerID)
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []OpKind{OpAdd, OpMove, OpAlpha, OpZIndex, OpTitle, OpSnippet, OpIcon, OpTag}, kinds)
	assert.Equal(t, 1, m.Count(OpMove))
	assert.Equal(t, "t", mk.Title())
	assert.Equal(t, "s", mk.Snippet())
	assert.Equal(t, "icon", mk.Icon())
	assert.Equal(t, 42, mk.Tag())

	m.ResetJournal()
	assert.Empty(t, m.Journal())
}

func TestMarker_RemoveIsTerminal(t *testing.T) {
	m := New()
	first := add(m, 0, 0, 1)
	second := add(m, 1, 1, 1)

	first.Remove()
	assert.True(t, first.Removed())
	assert.Equal(t, []*Marker{second}, m.Markers())
	assert.Equal(t, 1, m.Count(OpRemove))

	assert.Panics(t, func() { first.SetPosition(cluster.GeoCoordinates{}) })
	assert.Panics(t, func() { first.Remove() })
	assert.Panics(t, func() { _ = first.Alpha() })
}

func TestMap_HitTest(t *testing.T) {
	m := New(WithZoom(10), WithTileSize(256))
	near := add(m, 10, 50, 1)
	add(m, 20, 50, 1)

	assert.Same(t, near, m.HitTest(cluster.GeoCoordinates{Lon: 10.001, Lat: 50.001}, 10))
	assert.Nil(t, m.HitTest(cluster.GeoCoordinates{Lon: 15, Lat: 50}, 10))
	assert.Nil(t, New().HitTest(cluster.GeoCoordinates{}, 100))
}

func TestMap_HitTestPrefersForeground(t *testing.T) {
	m := New()
	top := add(m, 10, 50, 1)
	add(m, 10, 50, 0)
	assert.Same(t, top, m.HitTest(cluster.GeoCoordinates{Lon: 10, Lat: 50}, 5))

	latest := add(m, 10, 50, 1)
	assert.Same(t, latest, m.HitTest(cluster.GeoCoordinates{Lon: 10, Lat: 50}, 5))
}

func TestMap_HitTestDependsOnZoom(t *testing.T) {
	m := New(WithZoom(0))
	add(m, 10, 50, 1)
	at := cluster.GeoCoordinates{Lon: 10.5, Lat: 50}

	assert.NotNil(t, m.HitTest(at, 5), "half a degree is under a pixel at zoom 0")
	m.SetZoom(12)
	assert.Nil(t, m.HitTest(at, 5))
}

func TestMap_TapDispatches(t *testing.T) {
	m := New()
	mk := add(m, 10, 50, 1)

	assert.False(t, m.Tap(cluster.GeoCoordinates{Lon: 10, Lat: 50}, 5), "no listener")

	var got cluster.Marker
	m.SetMarkerClickListener(listenerFunc(func(c cluster.Marker) bool {
		got = c
		return true
	}))
	assert.True(t, m.Tap(cluster.GeoCoordinates{Lon: 10, Lat: 50}, 5))
	assert.Same(t, mk, got.(*Marker))
	assert.False(t, m.Click(nil))
}
