package cluster

// Transition tells how a marker entered or left the map.
type Transition string

const (
	// TransitionFadeIn is a new marker without parent, it fades in.
	TransitionFadeIn Transition = "fade_in"
	// TransitionSplit is a new marker moving out of a removed parent.
	TransitionSplit Transition = "split"
	// TransitionMerge is a removed marker moving into a parent before removal.
	TransitionMerge Transition = "merge"
	// TransitionDrop is a removed marker without parent, removed at once.
	TransitionDrop Transition = "drop"
)

// Timer measures the duration of an operation.
type Timer interface {
	ObserveDuration()
}

// Metrics receives renderer instrumentation. See the prometheus package for an implementation.
type Metrics interface {
	RenderDuration() Timer
	MarkerAdded(t Transition)
	MarkerRemoved(t Transition)
	MarkersVisible(n int)
	// ClickDispatched is called for every tap on a marker, handled is the dispatch result
	ClickDispatched(handled bool)
}

type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

type nopMetrics struct{}

func (nopMetrics) RenderDuration() Timer   { return nopTimer{} }
func (nopMetrics) MarkerAdded(Transition)   {}
func (nopMetrics) MarkerRemoved(Transition) {}
func (nopMetrics) MarkersVisible(int)       {}
func (nopMetrics) ClickDispatched(bool)     {}

// NopMetrics returns Metrics that discards everything.
func NopMetrics() Metrics { return nopMetrics{} }
