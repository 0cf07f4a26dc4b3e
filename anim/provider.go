// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/animedit/base/errors"
)

// Provider supplies the current [Data] snapshot for the selected
// target. Rebuilds may happen on any goroutine (for example when a
// network message arrives), while readers on the UI goroutine call
// [Provider.Snapshot] at each event and never keep a snapshot across
// events.
type Provider struct {

	// current is the current snapshot.
	current atomic.Pointer[Data]

	// mu serializes rebuilds and protects the fields below.
	mu sync.Mutex

	// paths are all of the upstream motion paths.
	paths []*MotionPath

	// target is the selected target; empty selects all paths.
	target string

	// onChange are called after each successful rebuild.
	onChange []func(d *Data)
}

// NewProvider returns a new [Provider] with an empty snapshot.
func NewProvider() *Provider {
	p := &Provider{}
	p.current.Store(MustBuild(nil))
	return p
}

// Snapshot returns the current immutable snapshot.
func (p *Provider) Snapshot() *Data {
	return p.current.Load()
}

// Target returns the selected target.
func (p *Provider) Target() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// OnChange adds a function called with each new snapshot.
// It is called on the goroutine that caused the rebuild.
func (p *Provider) OnChange(fun func(d *Data)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = append(p.onChange, fun)
}

// Update replaces the upstream motion paths and rebuilds the snapshot.
// If the build fails the previous snapshot stays current and the
// error is logged and returned.
func (p *Provider) Update(paths []*MotionPath) error {
	p.mu.Lock()
	p.paths = slices.Clone(paths)
	return p.rebuild()
}

// SetTarget selects the given target and rebuilds the snapshot.
func (p *Provider) SetTarget(target string) error {
	p.mu.Lock()
	p.target = target
	return p.rebuild()
}

// rebuild must be called with the lock held, which it releases.
func (p *Provider) rebuild() error {
	d, err := BuildForTarget(p.paths, p.target)
	if err != nil {
		p.mu.Unlock()
		return errors.Log(err)
	}
	p.current.Store(d)
	fns := slices.Clone(p.onChange)
	target := p.target
	p.mu.Unlock()
	slog.Debug("anim.Provider: rebuilt snapshot", "target", target, "paths", len(d.Paths), "duration", d.Duration)
	for _, fn := range fns {
		fn(d)
	}
	return nil
}
