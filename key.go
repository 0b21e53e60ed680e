package cluster

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Key is the content key of a cluster: a digest of its set of item IDs.
// Item order and duplicates do not change the key.
type Key [blake2b.Size256]byte

func (k Key) String() string {
	return hex.EncodeToString(k[:8])
}

// KeyOf returns the content key of cluster c.
func KeyOf(c Cluster) Key {
	items := c.Items()
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	sort.Strings(ids)

	var buf []byte
	var prev string
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		prev = id
		buf = binary.AppendUvarint(buf, uint64(len(id)))
		buf = append(buf, id...)
	}
	return blake2b.Sum256(buf)
}

// SameItems reports whether two clusters contain the same set of items.
func SameItems(a, b Cluster) bool {
	return KeyOf(a) == KeyOf(b)
}
