package memmap

import (
	"fmt"

	cluster "github.com/MadAppGang/clusterrenderer"
)

// Marker is a marker handle of Map. Any use after Remove panics.
type Marker struct {
	m        *Map
	id       string
	seq      int
	position cluster.GeoCoordinates
	alpha    float64
	zIndex   float64
	title    string
	snippet  string
	icon     cluster.Icon
	tag      any
	removed  bool
}

var _ cluster.Marker = (*Marker)(nil)

func (mk *Marker) ID() string { return mk.id }

func (mk *Marker) Removed() bool { return mk.removed }

func (mk *Marker) Position() cluster.GeoCoordinates {
	mk.check()
	return mk.position
}

func (mk *Marker) SetPosition(position cluster.GeoCoordinates) {
	mk.check()
	mk.position = position
	mk.record(OpMove)
}

func (mk *Marker) Alpha() float64 {
	mk.check()
	return mk.alpha
}

func (mk *Marker) SetAlpha(alpha float64) {
	mk.check()
	mk.alpha = alpha
	mk.record(OpAlpha)
}

func (mk *Marker) ZIndex() float64 {
	mk.check()
	return mk.zIndex
}

func (mk *Marker) SetZIndex(z float64) {
	mk.check()
	mk.zIndex = z
	mk.record(OpZIndex)
}

func (mk *Marker) Title() string {
	mk.check()
	return mk.title
}

func (mk *Marker) SetTitle(title string) {
	mk.check()
	mk.title = title
	mk.record(OpTitle)
}

func (mk *Marker) Snippet() string {
	mk.check()
	return mk.snippet
}

func (mk *Marker) SetSnippet(snippet string) {
	mk.check()
	mk.snippet = snippet
	mk.record(OpSnippet)
}

func (mk *Marker) Icon() cluster.Icon {
	mk.check()
	return mk.icon
}

func (mk *Marker) SetIcon(icon cluster.Icon) {
	mk.check()
	mk.icon = icon
	mk.record(OpIcon)
}

func (mk *Marker) Tag() any {
	mk.check()
	return mk.tag
}

func (mk *Marker) SetTag(tag any) {
	mk.check()
	mk.tag = tag
	mk.record(OpTag)
}

func (mk *Marker) Remove() {
	mk.check()
	mk.removed = true
	mk.m.detach(mk)
	mk.record(OpRemove)
}

func (mk *Marker) String() string {
	return fmt.Sprintf("marker %s at %.5f,%.5f alpha=%.2f z=%.0f", mk.id[:8], mk.position.Lat, mk.position.Lon, mk.alpha, mk.zIndex)
}

func (mk *Marker) check() {
	if mk.removed {
		panic("memmap: marker " + mk.id + " used after Remove")
	}
}

func (mk *Marker) record(kind OpKind) {
	mk.m.journal = append(mk.m.journal, Op{
		Kind:     kind,
		MarkerID: mk.id,
		Position: mk.position,
		Alpha:    mk.alpha,
		ZIndex:   mk.zIndex,
	})
}
