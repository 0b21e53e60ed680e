package cluster

import (
	"github.com/paulmach/orb"
)

// Item is a single point shown on the map.
// ID is the identity of the item, clusters with the same item IDs are equal.
type Item interface {
	GeoPoint
	ID() string
	Title() string
	Snippet() string
}

// Cluster is a group of one or more items represented by a single marker.
// Implementations must be immutable, Items must not be empty.
type Cluster interface {
	// Position is the centroid where the marker is placed.
	Position() GeoCoordinates
	Items() []Item
	// Contains reports whether the coordinate falls inside the region the cluster represents.
	Contains(lat, lon float64) bool
}

// Place is a plain Item implementation
type Place struct {
	Key         string
	Coordinates GeoCoordinates
	Name        string
	Description string
}

func (p *Place) ID() string                     { return p.Key }
func (p *Place) GetCoordinates() GeoCoordinates { return p.Coordinates }
func (p *Place) Title() string                  { return p.Name }
func (p *Place) Snippet() string                { return p.Description }

// StaticCluster is an immutable Cluster whose region is a lon/lat bounding cell.
type StaticCluster struct {
	center GeoCoordinates
	bound  orb.Bound
	items  []Item
}

// NewCluster creates cluster for the cell with centroid in the mean of item coordinates.
func NewCluster(bound orb.Bound, items ...Item) (*StaticCluster, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCluster
	}
	var lon, lat float64
	for _, it := range items {
		c := it.GetCoordinates()
		lon += c.Lon
		lat += c.Lat
	}
	n := float64(len(items))
	return NewClusterAt(GeoCoordinates{Lon: lon / n, Lat: lat / n}, bound, items...)
}

// NewClusterAt creates cluster with explicit centroid.
func NewClusterAt(center GeoCoordinates, bound orb.Bound, items ...Item) (*StaticCluster, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCluster
	}
	return &StaticCluster{
		center: center,
		bound:  bound,
		items:  append([]Item(nil), items...),
	}, nil
}

// CellAround returns a square cell of half size delta degrees centered at c.
func CellAround(c GeoCoordinates, delta float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.Lon - delta, c.Lat - delta},
		Max: orb.Point{c.Lon + delta, c.Lat + delta},
	}
}

func (c *StaticCluster) Position() GeoCoordinates { return c.center }

// Items returns a copy, the cluster itself stays immutable.
func (c *StaticCluster) Items() []Item { return append([]Item(nil), c.items...) }

func (c *StaticCluster) Bound() orb.Bound { return c.bound }

func (c *StaticCluster) Contains(lat, lon float64) bool {
	return c.bound.Contains(orb.Point{lon, lat})
}
