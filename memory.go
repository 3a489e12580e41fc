// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eplot

import (
	"fmt"
	"hash/fnv"

	"cogentcore.org/core/base/option"
	"cogentcore.org/core/math32"
)

// memoryStates records whether a plot memory has had its initial
// configuration applied.
type memoryStates int32

const (
	// memoryCreated is a freshly created memory: the axis ranges from
	// the next Show's [Config] still apply.
	memoryCreated memoryStates = iota

	// memoryConfigured means initial ranges were applied (or skipped);
	// from now on only user pan and zoom change the ranges.
	memoryConfigured
)

// PlotMemory is the persistent interaction state for one named plot,
// carried across frames by a [Registry].
type PlotMemory struct {
	// LastDragPos is the pointer position in pixels from the previous
	// frame of an active drag; cleared whenever no drag is active.
	LastDragPos option.Option[math32.Vector2]

	// XRange is the visible X axis range, updated by pan and zoom.
	XRange AxisRange

	// YRange is the visible Y axis range, updated by pan and zoom.
	YRange AxisRange

	state memoryStates
	inUse bool
}

// newPlotMemory returns memory with the default symmetric [-10, 10] view.
func newPlotMemory() *PlotMemory {
	return &PlotMemory{
		XRange: NewAxisRange(-10, 10),
		YRange: NewAxisRange(-10, 10),
	}
}

// PlotID identifies a plot. It is derived deterministically from the plot
// label, so the same label always reaches the same [PlotMemory].
type PlotID uint64

// NewPlotID returns the id for the given plot label (FNV-1a of the label).
func NewPlotID(label string) PlotID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return PlotID(h.Sum64())
}

// Registry owns the [PlotMemory] for every plot label shown through it.
// Entries are created lazily on first use and never removed. The host
// application typically keeps one Registry for its whole lifetime and
// threads it through every frame.
type Registry struct {
	plots map[PlotID]*PlotMemory
}

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{plots: map[PlotID]*PlotMemory{}}
}

// Plot returns the frame runner for the plot with the given label.
// The label determines which [PlotMemory] the frame uses; memory is
// created with default ranges the first time a label is shown.
func (rg *Registry) Plot(label string) *Plot {
	return &Plot{reg: rg, id: NewPlotID(label), label: label}
}

// acquire hands out the exclusive per-frame borrow of a plot's memory,
// creating it on first use. Acquiring memory that is already held by a
// running [Plot.Show] is a caller bug and panics.
func (rg *Registry) acquire(id PlotID, label string) *PlotMemory {
	mem := rg.plots[id]
	if mem == nil {
		mem = newPlotMemory()
		rg.plots[id] = mem
	}
	if mem.inUse {
		panic(fmt.Sprintf("eplot: plot %q is already being shown this frame", label))
	}
	mem.inUse = true
	return mem
}

// release returns the per-frame borrow taken by acquire.
func (rg *Registry) release(mem *PlotMemory) {
	mem.inUse = false
}
