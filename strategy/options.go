package strategy

import "context"

// Options holds parameters and callbacks customizing Extract, in the same
// shape as package bfs's BFSOptions.
type Options struct {
	Ctx context.Context

	// OnEnqueue is called when a belief is first discovered and enqueued,
	// with the index it was assigned in the chain arena.
	OnEnqueue func(idx int)

	// OnVisit is called after each dequeued state is processed: a target
	// state has been marked, any other state has had its greedy action
	// chosen and its transitions recorded. If it returns an error, Extract
	// aborts.
	OnVisit func(idx int) error
}

// Option configures Extract via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int) {},
		OnVisit:   func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback invoked when a belief is first seen.
func WithOnEnqueue(fn func(idx int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback invoked after each dequeued state is
// processed (see Options.OnVisit); an error aborts Extract.
func WithOnVisit(fn func(idx int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
