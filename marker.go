package cluster

// Z-index tiers. Exiting markers go to the background so entering ones are drawn above them.
const (
	BackgroundZIndex = 0
	ForegroundZIndex = 1
)

// Map is the map surface markers are placed on.
type Map interface {
	AddMarker(opts MarkerOptions) Marker
	SetMarkerClickListener(listener MarkerClickListener)
}

// MarkerClickListener receives taps on markers. It returns true when the tap was consumed.
type MarkerClickListener interface {
	OnMarkerClick(marker Marker) bool
}

// Marker is a visual handle on the map. Remove is terminal, the handle must
// not be used afterwards.
type Marker interface {
	Position() GeoCoordinates
	SetPosition(position GeoCoordinates)
	Alpha() float64
	SetAlpha(alpha float64)
	ZIndex() float64
	SetZIndex(z float64)
	Title() string
	SetTitle(title string)
	Snippet() string
	SetSnippet(snippet string)
	Icon() Icon
	SetIcon(icon Icon)
	Tag() any
	SetTag(tag any)
	Remove()
}

// MarkerOptions describe a marker to add.
type MarkerOptions struct {
	Position GeoCoordinates
	Icon     Icon
	Title    string
	Snippet  string
	Alpha    float64
	ZIndex   float64
}
