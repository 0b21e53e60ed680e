package cluster

import "strconv"

// Icon is an opaque icon value understood by the map surface.
type Icon interface{}

// IconGenerator creates icons for markers. Both methods must return a non-nil icon.
type IconGenerator interface {
	ClusterIcon(c Cluster) Icon
	ClusterItemIcon(item Item) Icon
}

// Badge is the icon produced by DefaultIconGenerator
type Badge struct {
	Label string
	// Bucket is the lower bound the label was rounded to, 1 for single items
	Bucket int
}

var defaultBuckets = []int{10, 20, 50, 100, 200, 500, 1000}

// DefaultIconGenerator labels clusters with the count rounded down to a bucket ("50+")
// and single items with an empty pin.
type DefaultIconGenerator struct {
	// Buckets must be sorted ascending, defaultBuckets is used when empty
	Buckets []int
}

func (g DefaultIconGenerator) ClusterIcon(c Cluster) Icon {
	size := len(c.Items())
	bucket := g.bucket(size)
	if bucket == size {
		return Badge{Label: strconv.Itoa(size), Bucket: bucket}
	}
	return Badge{Label: strconv.Itoa(bucket) + "+", Bucket: bucket}
}

func (g DefaultIconGenerator) ClusterItemIcon(_ Item) Icon {
	return Badge{Bucket: 1}
}

func (g DefaultIconGenerator) bucket(size int) int {
	buckets := g.Buckets
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}
	if size < buckets[0] {
		return size
	}
	for i := len(buckets) - 1; i >= 0; i-- {
		if size >= buckets[i] {
			return buckets[i]
		}
	}
	return size
}

// mustIcon fails fast on a misconfigured generator.
func mustIcon(icon Icon) Icon {
	if icon == nil {
		panic("cluster: icon generator returned nil icon")
	}
	return icon
}
