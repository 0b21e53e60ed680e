package cluster

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrEmptyCluster means a cluster without items.
	ErrEmptyCluster = errors.New("cluster has no items")
	// ErrNilCluster means a nil cluster in a render pass.
	ErrNilCluster = errors.New("cluster is nil")
)

// InvalidClusterError means a render pass was rejected because of the cluster at Index.
type InvalidClusterError struct {
	Index int
	Err   error
}

func (e *InvalidClusterError) Error() string {
	return fmt.Sprintf("invalid cluster at index %d: %v", e.Index, e.Err)
}

func (e *InvalidClusterError) Unwrap() error { return e.Err }

// validate checks the whole pass before anything is touched.
func validate(clusters []Cluster) error {
	for i, c := range clusters {
		if isNil(c) {
			return &InvalidClusterError{Index: i, Err: ErrNilCluster}
		}
		if len(c.Items()) == 0 {
			return &InvalidClusterError{Index: i, Err: ErrEmptyCluster}
		}
	}
	return nil
}

// isNil reports a nil interface or a nil pointer, map, slice or func behind it.
func isNil(c Cluster) bool {
	if c == nil {
		return true
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
