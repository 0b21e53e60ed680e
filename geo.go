package cluster

import "math"

// GeoCoordinates represent position in the Earth
type GeoCoordinates struct {
	Lon float64
	Lat float64
}

// all object, that could be placed on the map should implement this protocol
type GeoPoint interface {
	GetCoordinates() GeoCoordinates
}

// GetCoordinates lets GeoCoordinates be used as a GeoPoint directly.
func (c GeoCoordinates) GetCoordinates() GeoCoordinates {
	return c
}

// longitude/latitude to spherical mercator in [0..1] range
func MercatorProjection(coordinates GeoCoordinates) (float64, float64) {
	x := coordinates.Lon/360.0 + 0.5
	sin := math.Sin(coordinates.Lat * math.Pi / 180.0)
	y := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi
	if y < 0 {
		y = 0
	}
	if y > 1 {
		y = 1
	}
	return x, y
}

// PixelPosition returns world pixel coordinates of the point for zoom level and tile size.
// At zoom 0 the whole world is one tile of tileSize x tileSize pixels.
func PixelPosition(coordinates GeoCoordinates, zoom int, tileSize int) (float64, float64) {
	x, y := MercatorProjection(coordinates)
	scale := float64(tileSize) * float64(uint(1)<<uint(zoom))
	return x * scale, y * scale
}
