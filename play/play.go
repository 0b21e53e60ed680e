package main

import (
	"fmt"
	"log/slog"
	"time"

	cluster "github.com/MadAppGang/clusterrenderer"
	"github.com/MadAppGang/clusterrenderer/memmap"
)

const defaultFPS = 60

// PassReport summarizes what one render pass did to the map
type PassReport struct {
	Name    string
	Added   int
	Removed int
	Moves   int
	Frames  int
	Visible int
	Taps    []string
}

type tapLog struct {
	log  *slog.Logger
	last string
}

func (t *tapLog) OnClusterClick(c cluster.Cluster) bool {
	t.last = fmt.Sprintf("cluster of %d items", len(c.Items()))
	t.log.Info("cluster clicked", slog.Int("items", len(c.Items())))
	return true
}

func (t *tapLog) OnClusterItemClick(item cluster.Item) bool {
	t.last = "item " + item.ID()
	t.log.Info("item clicked", slog.String("id", item.ID()), slog.String("title", item.Title()))
	return true
}

// Play runs every pass of the scenario, animations are stepped frame by frame.
func Play(log *slog.Logger, sc *Scenario, fps int) ([]PassReport, error) {
	passes, err := sc.Clusters()
	if err != nil {
		return nil, err
	}
	move, fade, err := sc.Durations()
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = sc.FPS
	}
	if fps <= 0 {
		fps = defaultFPS
	}
	frame := time.Second / time.Duration(fps)

	mapOpts := []memmap.Option{}
	if sc.Zoom > 0 {
		mapOpts = append(mapOpts, memmap.WithZoom(sc.Zoom))
	}
	mp := memmap.New(mapOpts...)
	animator := cluster.NewFrameAnimator()
	taps := &tapLog{log: log}

	opts := []cluster.Option{
		cluster.WithLogger(log),
		cluster.WithAnimator(animator),
		cluster.WithCallbacks(taps),
	}
	if move > 0 {
		opts = append(opts, cluster.WithMoveAnimation(move, nil))
	}
	if fade > 0 {
		opts = append(opts, cluster.WithFadeAnimation(fade, nil))
	}
	r := cluster.NewRenderer(mp, opts...)

	reports := make([]PassReport, 0, len(passes))
	for i, clusters := range passes {
		pass := sc.Passes[i]
		mp.ResetJournal()

		if err := r.Render(clusters); err != nil {
			return reports, fmt.Errorf("pass %d: %w", i, err)
		}
		rep := PassReport{Name: pass.Name}
		for animator.Len() > 0 {
			animator.Advance(frame)
			rep.Frames++
		}
		rep.Added = mp.Count(memmap.OpAdd)
		rep.Removed = mp.Count(memmap.OpRemove)
		rep.Moves = mp.Count(memmap.OpMove)
		rep.Visible = mp.Len()

		for _, tap := range pass.Taps {
			taps.last = ""
			radius := tap.Radius
			if radius <= 0 {
				radius = 24
			}
			if !mp.Tap(cluster.GeoCoordinates{Lon: tap.Lon, Lat: tap.Lat}, radius) {
				taps.last = "miss"
			}
			rep.Taps = append(rep.Taps, taps.last)
		}

		log.Info("pass done",
			slog.String("name", rep.Name),
			slog.Int("added", rep.Added),
			slog.Int("removed", rep.Removed),
			slog.Int("moves", rep.Moves),
			slog.Int("frames", rep.Frames),
			slog.Int("visible", rep.Visible),
		)
		for _, mk := range mp.Markers() {
			log.Debug(mk.String())
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
