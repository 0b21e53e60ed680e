// MIT License
//
// Copyright (c) 2016 MadAppGang

// Package cluster renders map marker clusters and animates them as they merge and split.
//
// The clustering itself happens elsewhere (gocluster, a grid, a quad-tree, a server).
// On every camera change the host hands the full list of clusters that should be
// visible to Renderer.Render, and the renderer converges the markers on the map
// to that list:
//
//   - clusters that are already on the map (same set of items) are left alone
//   - clusters that disappeared are removed; when one of the clusters now on the
//     map contains the old centroid, the marker slides into it before it is removed
//   - new clusters are added; when a disappearing cluster contains the new centroid
//     the marker slides out of it, otherwise it fades in
//
// Very easy to use:
//	//1.Create renderer on top of your map surface
//	r := cluster.NewRenderer(m, cluster.WithCallbacks(cb))
//
//	//2.Build clusters for the current viewport
//	c, _ := cluster.NewCluster(cell, items...)
//
//	//3.Render them
//	err := r.Render([]cluster.Cluster{c})
//
//	//4.Drive animations from your frame loop
//	animator.Advance(frameDuration)
//
// Parent lookups return the first candidate whose region contains the point, so
// the order of the slice passed to Render is significant.
//
// All methods of Renderer must be called from a single control thread (the UI
// thread of the host). Render is not reentrant and concurrent calls are a
// precondition violation, nothing is guarded internally. Animation frames and
// completion callbacks are delivered through the Animator and must land on that
// same thread, FrameAnimator.Run does it through a post function.
//
// Clusters are keyed by content: two clusters with the same item IDs are the same
// cluster regardless of item order. See KeyOf.
package cluster
