package cluster

import (
	"fmt"
	"log/slog"
)

type keyed struct {
	key     Key
	cluster Cluster
}

// rendered owns a marker handle. Every animation captures the generation it
// was started with, a newer animation or removal makes it stale.
type rendered struct {
	keyed
	marker  Marker
	gen     uint64
	removed bool
}

func (h *rendered) begin() uint64 {
	h.gen++
	return h.gen
}

func (h *rendered) current(gen uint64) bool {
	return !h.removed && h.gen == gen
}

func (h *rendered) remove() {
	if h.removed {
		return
	}
	h.removed = true
	h.gen++
	h.marker.Remove()
}

// Renderer keeps markers on the map in sync with the clusters passed to Render.
//
// Renderer is not safe for concurrent use: every method, animation frame and
// animation completion must run on the same control thread.
type Renderer struct {
	m        Map
	opts     rendererOpts
	log      *slog.Logger
	metrics  Metrics
	animator Animator

	// clusters is the current full cluster list, its order decides parent lookups
	clusters []keyed
	markers  map[Key]*rendered
	byMarker map[Marker]*rendered
	exiting  map[*rendered]struct{}
}

// NewRenderer creates renderer for map m and registers it as the marker click listener.
// Marker handles returned by m must be comparable (pointers).
func NewRenderer(m Map, opts ...Option) *Renderer {
	if m == nil {
		panic("cluster: nil map")
	}
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.animator == nil {
		o.animator = NewFrameAnimator()
	}

	r := &Renderer{
		m:        m,
		opts:     o,
		log:      o.log,
		metrics:  o.metrics,
		animator: o.animator,
		markers:  make(map[Key]*rendered),
		byMarker: make(map[Marker]*rendered),
		exiting:  make(map[*rendered]struct{}),
	}
	m.SetMarkerClickListener(r)
	return r
}

// Animator returns the animator markers are animated with.
func (r *Renderer) Animator() Animator {
	return r.animator
}

// SetCallbacks replaces the click callbacks, nil disables dispatch.
func (r *Renderer) SetCallbacks(c Callbacks) {
	r.opts.callbacks = c
}

// SetIconGenerator replaces the icon generator for markers created from now on.
// Existing markers keep their icons until Refresh. Nil restores DefaultIconGenerator.
func (r *Renderer) SetIconGenerator(g IconGenerator) {
	if g == nil {
		g = DefaultIconGenerator{}
	}
	r.opts.iconGenerator = g
}

// Render converges markers on the map to clusters.
//
// Clusters already rendered (same items) are kept untouched. Rendered clusters
// missing from the list are removed first, then the new ones are added.
// A nil or empty cluster rejects the whole pass before anything changes.
// Content-equal duplicates within the list are collapsed, the first one wins.
func (r *Renderer) Render(clusters []Cluster) error {
	if err := validate(clusters); err != nil {
		r.log.Warn("render pass rejected", slog.Any("error", err))
		return fmt.Errorf("render: %w", err)
	}
	defer r.metrics.RenderDuration().ObserveDuration()

	next := make(map[Key]struct{}, len(clusters))
	var toAdd []keyed
	kept := 0
	for _, c := range clusters {
		key := KeyOf(c)
		if _, dup := next[key]; dup {
			continue
		}
		next[key] = struct{}{}
		if _, ok := r.markers[key]; ok {
			kept++
			continue
		}
		toAdd = append(toAdd, keyed{key: key, cluster: c})
	}

	var toRemove []keyed
	current := make([]keyed, 0, len(r.clusters)+len(toAdd))
	for _, kc := range r.clusters {
		if _, ok := next[kc.key]; ok {
			current = append(current, kc)
			continue
		}
		toRemove = append(toRemove, kc)
	}
	current = append(current, toAdd...)
	r.clusters = current

	for _, kc := range toRemove {
		r.removeCluster(kc, current)
	}
	for _, kc := range toAdd {
		r.addCluster(kc, toRemove)
	}

	r.metrics.MarkersVisible(len(r.markers))
	r.log.Debug("render pass",
		slog.Int("added", len(toAdd)),
		slog.Int("removed", len(toRemove)),
		slog.Int("kept", kept),
		slog.Int("visible", len(r.markers)),
	)
	return nil
}

func (r *Renderer) addCluster(kc keyed, toRemove []keyed) {
	opts := r.markerOptions(kc.cluster)
	h := &rendered{keyed: kc}

	position := kc.cluster.Position()
	if parent := findParentCluster(toRemove, position); parent != nil {
		from := parent.Position()
		opts.Position = from
		h.marker = r.m.AddMarker(opts)
		r.animateMove(h, from, position, false)
		r.metrics.MarkerAdded(TransitionSplit)
	} else {
		opts.Alpha = 0
		h.marker = r.m.AddMarker(opts)
		r.animateFadeIn(h)
		r.metrics.MarkerAdded(TransitionFadeIn)
	}
	h.marker.SetTag(kc.cluster)

	r.markers[kc.key] = h
	r.byMarker[h.marker] = h
}

func (r *Renderer) removeCluster(kc keyed, current []keyed) {
	h, ok := r.markers[kc.key]
	if !ok {
		return
	}
	delete(r.markers, kc.key)

	h.marker.SetZIndex(BackgroundZIndex)

	position := h.cluster.Position()
	if parent := findParentCluster(current, position); parent != nil {
		// a fade-in still running is cut short here
		if h.marker.Alpha() < 1 {
			h.marker.SetAlpha(1)
		}
		r.animateMove(h, position, parent.Position(), true)
		r.metrics.MarkerRemoved(TransitionMerge)
		return
	}
	r.discard(h)
	r.metrics.MarkerRemoved(TransitionDrop)
}

// findParentCluster returns the first cluster whose region contains position.
func findParentCluster(candidates []keyed, position GeoCoordinates) Cluster {
	for _, kc := range candidates {
		if kc.cluster.Contains(position.Lat, position.Lon) {
			return kc.cluster
		}
	}
	return nil
}

func (r *Renderer) markerOptions(c Cluster) MarkerOptions {
	opts := MarkerOptions{
		Position: c.Position(),
		Alpha:    1,
		ZIndex:   ForegroundZIndex,
	}
	items := c.Items()
	if len(items) > 1 {
		opts.Icon = mustIcon(r.opts.iconGenerator.ClusterIcon(c))
		return opts
	}
	item := items[0]
	opts.Icon = mustIcon(r.opts.iconGenerator.ClusterItemIcon(item))
	opts.Title = item.Title()
	opts.Snippet = item.Snippet()
	return opts
}

func (r *Renderer) animateMove(h *rendered, from, to GeoCoordinates, removeAfter bool) {
	gen := h.begin()
	if removeAfter {
		r.exiting[h] = struct{}{}
	}
	r.animator.Start(Animation{
		Duration: r.opts.moveDuration,
		Easing:   r.opts.moveEasing,
		Update: func(fraction float64) {
			if h.current(gen) {
				h.marker.SetPosition(Interpolate(fraction, from, to))
			}
		},
		End: func() {
			if removeAfter {
				r.discard(h)
			}
		},
	})
}

// discard removes the marker of h from the map and forgets it.
// Exiting markers stay clickable until discarded.
func (r *Renderer) discard(h *rendered) {
	delete(r.exiting, h)
	delete(r.byMarker, h.marker)
	h.remove()
}

func (r *Renderer) animateFadeIn(h *rendered) {
	gen := h.begin()
	r.animator.Start(Animation{
		Duration: r.opts.fadeDuration,
		Easing:   r.opts.fadeEasing,
		Update: func(fraction float64) {
			if h.current(gen) {
				h.marker.SetAlpha(fraction)
			}
		},
	})
}

// OnMarkerClick dispatches a tap to the callbacks.
// Markers still animating into their parent dispatch the cluster they show.
// It returns false for markers the renderer does not own (or no longer owns)
// and when no callbacks are set, otherwise the callback result.
func (r *Renderer) OnMarkerClick(marker Marker) bool {
	h, ok := r.byMarker[marker]
	if !ok || r.opts.callbacks == nil {
		r.log.Debug("marker click not dispatched", slog.Bool("owned", ok))
		r.metrics.ClickDispatched(false)
		return false
	}

	var handled bool
	items := h.cluster.Items()
	if len(items) > 1 {
		handled = r.opts.callbacks.OnClusterClick(h.cluster)
	} else {
		handled = r.opts.callbacks.OnClusterItemClick(items[0])
	}
	r.metrics.ClickDispatched(handled)
	return handled
}

// Refresh rebuilds icon, title and snippet of rendered clusters content-equal to
// the given ones, in place and without animation. The new cluster values replace
// the rendered ones. It returns the number of refreshed markers.
func (r *Renderer) Refresh(clusters ...Cluster) int {
	n := 0
	for _, c := range clusters {
		if isNil(c) {
			continue
		}
		key := KeyOf(c)
		h, ok := r.markers[key]
		if !ok {
			continue
		}
		opts := r.markerOptions(c)
		h.marker.SetIcon(opts.Icon)
		h.marker.SetTitle(opts.Title)
		h.marker.SetSnippet(opts.Snippet)
		h.marker.SetTag(c)
		h.cluster = c
		for i := range r.clusters {
			if r.clusters[i].key == key {
				r.clusters[i].cluster = c
				break
			}
		}
		n++
	}
	if n > 0 {
		r.log.Debug("markers refreshed", slog.Int("count", n))
	}
	return n
}

// Clear removes every marker immediately, including markers still animating out.
func (r *Renderer) Clear() {
	for _, kc := range r.clusters {
		if h, ok := r.markers[kc.key]; ok {
			h.remove()
		}
	}
	for h := range r.exiting {
		h.remove()
	}
	r.clusters = nil
	r.markers = make(map[Key]*rendered)
	r.byMarker = make(map[Marker]*rendered)
	r.exiting = make(map[*rendered]struct{})
	r.metrics.MarkersVisible(0)
}

// Clusters returns the rendered clusters in the order used for parent lookups.
func (r *Renderer) Clusters() []Cluster {
	out := make([]Cluster, len(r.clusters))
	for i, kc := range r.clusters {
		out[i] = kc.cluster
	}
	return out
}

// Marker returns the marker of a rendered cluster content-equal to c.
func (r *Renderer) Marker(c Cluster) (Marker, bool) {
	h, ok := r.markers[KeyOf(c)]
	if !ok {
		return nil, false
	}
	return h.marker, true
}

// Len returns the number of rendered clusters.
func (r *Renderer) Len() int {
	return len(r.markers)
}

// Exiting returns the number of markers still animating towards their parent.
func (r *Renderer) Exiting() int {
	return len(r.exiting)
}
