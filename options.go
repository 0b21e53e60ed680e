package cluster

import (
	"log/slog"
	"time"
)

const (
	DefaultMoveDuration = 300 * time.Millisecond
	DefaultFadeDuration = 300 * time.Millisecond
)

type rendererOpts struct {
	log           *slog.Logger
	metrics       Metrics
	animator      Animator
	iconGenerator IconGenerator
	callbacks     Callbacks
	moveDuration  time.Duration
	moveEasing    Easing
	fadeDuration  time.Duration
	fadeEasing    Easing
}

// Option configures a Renderer.
type Option func(*rendererOpts)

func defaultOpts() rendererOpts {
	return rendererOpts{
		metrics:       NopMetrics(),
		iconGenerator: DefaultIconGenerator{},
		moveDuration:  DefaultMoveDuration,
		moveEasing:    FastOutSlowIn,
		fadeDuration:  DefaultFadeDuration,
		fadeEasing:    AccelerateDecelerate,
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(o *rendererOpts) { o.log = log }
}

func WithMetrics(m Metrics) Option {
	return func(o *rendererOpts) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithAnimator sets the animator. By default a FrameAnimator is created, see Renderer.Animator.
func WithAnimator(a Animator) Option {
	return func(o *rendererOpts) { o.animator = a }
}

func WithIconGenerator(g IconGenerator) Option {
	return func(o *rendererOpts) {
		if g != nil {
			o.iconGenerator = g
		}
	}
}

func WithCallbacks(c Callbacks) Option {
	return func(o *rendererOpts) { o.callbacks = c }
}

// WithMoveAnimation configures split and merge moves. Nil easing keeps the current one.
func WithMoveAnimation(d time.Duration, easing Easing) Option {
	return func(o *rendererOpts) {
		o.moveDuration = d
		if easing != nil {
			o.moveEasing = easing
		}
	}
}

// WithFadeAnimation configures fade-in of markers without parent. Nil easing keeps the current one.
func WithFadeAnimation(d time.Duration, easing Easing) Option {
	return func(o *rendererOpts) {
		o.fadeDuration = d
		if easing != nil {
			o.fadeEasing = easing
		}
	}
}
