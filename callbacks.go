package cluster

// Callbacks receive marker clicks. Return true to consume the click.
type Callbacks interface {
	// OnClusterClick is called for clusters with more than one item
	OnClusterClick(c Cluster) bool
	// OnClusterItemClick is called for clusters with exactly one item
	OnClusterItemClick(item Item) bool
}

// CallbackFuncs adapts functions to Callbacks. Nil functions leave the click unhandled.
type CallbackFuncs struct {
	Cluster func(c Cluster) bool
	Item    func(item Item) bool
}

func (f CallbackFuncs) OnClusterClick(c Cluster) bool {
	if f.Cluster == nil {
		return false
	}
	return f.Cluster(c)
}

func (f CallbackFuncs) OnClusterItemClick(item Item) bool {
	if f.Item == nil {
		return false
	}
	return f.Item(item)
}
