package cluster

import (
	"context"
	"time"

	"github.com/tanema/gween"
)

// Animation is a single property animation.
// Update receives eased progress, End is called once after the last Update.
type Animation struct {
	Duration time.Duration
	Easing   Easing
	Update   func(fraction float64)
	End      func()
}

// Animator runs animations. Update and End must be delivered on the control thread.
type Animator interface {
	Start(a Animation)
}

// Interpolate returns linear interpolation between from and to.
// Latitude and longitude are interpolated independently, no great-circle correction.
func Interpolate(fraction float64, from, to GeoCoordinates) GeoCoordinates {
	return GeoCoordinates{
		Lon: from.Lon + (to.Lon-from.Lon)*fraction,
		Lat: from.Lat + (to.Lat-from.Lat)*fraction,
	}
}

type running struct {
	Animation
	tween   *gween.Tween
	elapsed time.Duration
}

// FrameAnimator is an Animator advanced explicitly by the host frame loop.
// It is not safe for concurrent use, all methods run on the control thread.
type FrameAnimator struct {
	active  []*running
	started []*running
}

func NewFrameAnimator() *FrameAnimator {
	return &FrameAnimator{}
}

// Start schedules animation, it begins with the next Advance.
func (f *FrameAnimator) Start(a Animation) {
	if a.Easing == nil {
		a.Easing = Linear
	}
	f.started = append(f.started, &running{
		Animation: a,
		tween:     gween.New(0, 1, float32(a.Duration.Seconds()), a.Easing),
	})
}

// Len returns number of scheduled and running animations.
func (f *FrameAnimator) Len() int {
	return len(f.active) + len(f.started)
}

// Advance moves every animation forward by dt.
// Animations started from Update or End callbacks begin on the next Advance.
func (f *FrameAnimator) Advance(dt time.Duration) {
	f.active = append(f.active, f.started...)
	f.started = nil

	current := f.active
	f.active = nil
	for _, r := range current {
		r.elapsed += dt
		fraction, finished := r.tween.Update(float32(dt.Seconds()))
		// elapsed is exact, the tween clock accumulates float32 rounding.
		// A zero length tween also reports its start value.
		if finished || r.elapsed >= r.Duration {
			fraction, finished = 1, true
		}
		if r.Update != nil {
			r.Update(float64(fraction))
		}
		if !finished {
			f.active = append(f.active, r)
			continue
		}
		if r.End != nil {
			r.End()
		}
	}
}

// Flush runs every animation to the end, including the ones started while flushing.
func (f *FrameAnimator) Flush() {
	for f.Len() > 0 {
		longest := time.Duration(0)
		for _, list := range [][]*running{f.active, f.started} {
			for _, r := range list {
				if left := r.Duration - r.elapsed; left > longest {
					longest = left
				}
			}
		}
		f.Advance(longest)
	}
}

// Run advances the animator every interval until ctx is done.
// Frames are handed to post, which must execute them on the control thread.
func (f *FrameAnimator) Run(ctx context.Context, interval time.Duration, post func(func())) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			post(func() { f.Advance(dt) })
		}
	}
}
