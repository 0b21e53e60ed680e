// Package memmap is an in-memory map surface for the cluster renderer.
//
// It keeps marker handles, journals every operation done on them and resolves
// taps to markers with a KD-tree over their projected pixel positions.
// It is meant for tests, headless hosts and the play command.
package memmap

import (
	"github.com/MadAppGang/kdbush"
	"github.com/google/uuid"

	cluster "github.com/MadAppGang/clusterrenderer"
)

const (
	defaultTileSize = 512
	defaultZoom     = 10
	defaultNodeSize = 16
)

// OpKind is the kind of a journaled marker operation.
type OpKind string

const (
	OpAdd     OpKind = "add"
	OpMove    OpKind = "move"
	OpAlpha   OpKind = "alpha"
	OpZIndex  OpKind = "zindex"
	OpTitle   OpKind = "title"
	OpSnippet OpKind = "snippet"
	OpIcon    OpKind = "icon"
	OpTag     OpKind = "tag"
	OpRemove  OpKind = "remove"
)

// Op is one journaled operation.
type Op struct {
	Kind     OpKind
	MarkerID string
	Position cluster.GeoCoordinates
	Alpha    float64
	ZIndex   float64
}

// Option configures Map.
type Option func(*Map)

// WithTileSize sets the tile size in pixels used for hit-testing, 512 by default.
func WithTileSize(size int) Option {
	return func(m *Map) { m.tileSize = size }
}

// WithZoom sets the zoom level used for hit-testing, 10 by default.
func WithZoom(zoom int) Option {
	return func(m *Map) { m.zoom = zoom }
}

// Map implements cluster.Map in memory. It is not safe for concurrent use.
type Map struct {
	tileSize int
	zoom     int
	listener cluster.MarkerClickListener
	markers  []*Marker
	journal  []Op
	seq      int
}

var _ cluster.Map = (*Map)(nil)

func New(opts ...Option) *Map {
	m := &Map{
		tileSize: defaultTileSize,
		zoom:     defaultZoom,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Map) AddMarker(opts cluster.MarkerOptions) cluster.Marker {
	m.seq++
	mk := &Marker{
		m:        m,
		id:       uuid.NewString(),
		seq:      m.seq,
		position: opts.Position,
		alpha:    opts.Alpha,
		zIndex:   opts.ZIndex,
		title:    opts.Title,
		snippet:  opts.Snippet,
		icon:     opts.Icon,
	}
	m.markers = append(m.markers, mk)
	mk.record(OpAdd)
	return mk
}

func (m *Map) SetMarkerClickListener(listener cluster.MarkerClickListener) {
	m.listener = listener
}

// SetZoom changes the zoom level used for hit-testing.
func (m *Map) SetZoom(zoom int) {
	m.zoom = zoom
}

// Markers returns live markers in creation order.
func (m *Map) Markers() []*Marker {
	return append([]*Marker(nil), m.markers...)
}

// Len returns the number of live markers.
func (m *Map) Len() int {
	return len(m.markers)
}

// Journal returns operations recorded since creation or the last ResetJournal.
func (m *Map) Journal() []Op {
	return append([]Op(nil), m.journal...)
}

// Count returns how many journaled operations are of kind k.
func (m *Map) Count(k OpKind) int {
	n := 0
	for _, op := range m.journal {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (m *Map) ResetJournal() {
	m.journal = nil
}

// Click dispatches a tap on marker mk to the click listener.
func (m *Map) Click(mk *Marker) bool {
	if m.listener == nil || mk == nil {
		return false
	}
	return m.listener.OnMarkerClick(mk)
}

// Tap finds the marker drawn on top within radius pixels of at and dispatches it.
// It returns false when nothing was hit or the tap was not consumed.
func (m *Map) Tap(at cluster.GeoCoordinates, radius float64) bool {
	mk := m.HitTest(at, radius)
	if mk == nil {
		return false
	}
	return m.Click(mk)
}

// HitTest returns the top marker within radius pixels of at, or nil.
// Top is the highest z-index, the latest added marker breaks ties.
func (m *Map) HitTest(at cluster.GeoCoordinates, radius float64) *Marker {
	if len(m.markers) == 0 {
		return nil
	}
	points := make([]kdbush.Point, len(m.markers))
	for i, mk := range m.markers {
		x, y := cluster.PixelPosition(mk.position, m.zoom, m.tileSize)
		points[i] = &kdbush.SimplePoint{X: x, Y: y}
	}
	index := kdbush.NewBush(points, defaultNodeSize)

	x, y := cluster.PixelPosition(at, m.zoom, m.tileSize)
	var top *Marker
	for _, id := range index.Within(&kdbush.SimplePoint{X: x, Y: y}, radius) {
		mk := m.markers[id]
		if top == nil || mk.zIndex > top.zIndex || (mk.zIndex == top.zIndex && mk.seq > top.seq) {
			top = mk
		}
	}
	return top
}

func (m *Map) detach(mk *Marker) {
	for i, other := range m.markers {
		if other == mk {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return
		}
	}
}
