package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	cluster "github.com/MadAppGang/clusterrenderer"
)

// Scenario is a scripted sequence of render passes
type Scenario struct {
	Name      string          `yaml:"name" json:"name"`
	Zoom      int             `yaml:"zoom" json:"zoom"`
	FPS       int             `yaml:"fps" json:"fps"`
	Animation AnimationConfig `yaml:"animation" json:"animation"`
	Items     []ItemConfig    `yaml:"items" json:"items"`
	Passes    []PassConfig    `yaml:"passes" json:"passes"`
}

type AnimationConfig struct {
	Move string `yaml:"move" json:"move"`
	Fade string `yaml:"fade" json:"fade"`
}

type ItemConfig struct {
	ID      string  `yaml:"id" json:"id"`
	Lon     float64 `yaml:"lon" json:"lon"`
	Lat     float64 `yaml:"lat" json:"lat"`
	Title   string  `yaml:"title" json:"title"`
	Snippet string  `yaml:"snippet" json:"snippet"`
}

type PassConfig struct {
	Name     string          `yaml:"name" json:"name"`
	Clusters []ClusterConfig `yaml:"clusters" json:"clusters"`
	Taps     []TapConfig     `yaml:"taps" json:"taps"`
}

type ClusterConfig struct {
	Items []string `yaml:"items" json:"items"`
	// Cell is minLon, minLat, maxLon, maxLat
	Cell []float64 `yaml:"cell" json:"cell"`
	// Center is lon, lat. Mean of the items when empty.
	Center []float64 `yaml:"center" json:"center"`
}

type TapConfig struct {
	Lon    float64 `yaml:"lon" json:"lon"`
	Lat    float64 `yaml:"lat" json:"lat"`
	Radius float64 `yaml:"radius" json:"radius"`
}

// LoadScenario reads scenario from YAML or JSON file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format: %s", ext)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks references and shapes, it does not check that cells contain their items.
func (sc *Scenario) Validate() error {
	if _, _, err := sc.Durations(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(sc.Items))
	for i, it := range sc.Items {
		if it.ID == "" {
			return fmt.Errorf("item %d: empty id", i)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	for pi, p := range sc.Passes {
		for ci, c := range p.Clusters {
			if len(c.Items) == 0 {
				return fmt.Errorf("pass %d cluster %d: no items", pi, ci)
			}
			for _, id := range c.Items {
				if _, ok := seen[id]; !ok {
					return fmt.Errorf("pass %d cluster %d: unknown item %q", pi, ci, id)
				}
			}
			if len(c.Cell) != 4 {
				return fmt.Errorf("pass %d cluster %d: cell needs 4 values, got %d", pi, ci, len(c.Cell))
			}
			if len(c.Center) != 0 && len(c.Center) != 2 {
				return fmt.Errorf("pass %d cluster %d: center needs 2 values, got %d", pi, ci, len(c.Center))
			}
		}
	}
	return nil
}

// Durations returns move and fade durations, zero values mean renderer defaults.
func (sc *Scenario) Durations() (move, fade time.Duration, err error) {
	if sc.Animation.Move != "" {
		if move, err = time.ParseDuration(sc.Animation.Move); err != nil {
			return 0, 0, fmt.Errorf("invalid animation.move: %w", err)
		}
	}
	if sc.Animation.Fade != "" {
		if fade, err = time.ParseDuration(sc.Animation.Fade); err != nil {
			return 0, 0, fmt.Errorf("invalid animation.fade: %w", err)
		}
	}
	return move, fade, nil
}

// Clusters builds the clusters of every pass.
func (sc *Scenario) Clusters() ([][]cluster.Cluster, error) {
	items := make(map[string]cluster.Item, len(sc.Items))
	for _, it := range sc.Items {
		items[it.ID] = &cluster.Place{
			Key:         it.ID,
			Coordinates: cluster.GeoCoordinates{Lon: it.Lon, Lat: it.Lat},
			Name:        it.Title,
			Description: it.Snippet,
		}
	}

	passes := make([][]cluster.Cluster, len(sc.Passes))
	for pi, p := range sc.Passes {
		for ci, cc := range p.Clusters {
			members := make([]cluster.Item, len(cc.Items))
			for i, id := range cc.Items {
				members[i] = items[id]
			}
			cell := orb.Bound{
				Min: orb.Point{cc.Cell[0], cc.Cell[1]},
				Max: orb.Point{cc.Cell[2], cc.Cell[3]},
			}

			var c cluster.Cluster
			var err error
			if len(cc.Center) == 2 {
				c, err = cluster.NewClusterAt(cluster.GeoCoordinates{Lon: cc.Center[0], Lat: cc.Center[1]}, cell, members...)
			} else {
				c, err = cluster.NewCluster(cell, members...)
			}
			if err != nil {
				return nil, fmt.Errorf("pass %d cluster %d: %w", pi, ci, err)
			}
			passes[pi] = append(passes[pi], c)
		}
	}
	return passes, nil
}
