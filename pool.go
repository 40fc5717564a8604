package astar

import (
	"context"
	"sync"
)

// Pool hands out reusable engines so each goroutine searching at a time owns
// its open list without reallocating it per call.
type Pool struct {
	pool sync.Pool
}

// NewPool creates a pool whose engines are built with options.
func NewPool(options ...Option) *Pool {
	p := &Pool{}
	p.pool.New = func() any { return New(options...) }
	return p
}

// Get returns an engine owned by the caller until Put.
func (p *Pool) Get() *Engine {
	return p.pool.Get().(*Engine)
}

// Put returns e to the pool. The engine must not be used afterwards.
func (p *Pool) Put(e *Engine) {
	if e == nil {
		return
	}
	if !e.nodes.IsClean() {
		e.nodes.Clear()
		e.nodes.bind(nil)
	}
	p.pool.Put(e)
}

type engineKey struct{}

// Bind returns a context carrying an engine from p. Current returns that same
// engine for the context and everything derived from it; other tasks bind
// their own. release gives the engine back and must be called once the task
// is done searching. If ctx already carries an engine it is kept and release
// does nothing.
func (p *Pool) Bind(ctx context.Context) (_ context.Context, release func()) {
	if Current(ctx) != nil {
		return ctx, func() {}
	}
	e := p.Get()
	var once sync.Once
	return context.WithValue(ctx, engineKey{}, e), func() {
		once.Do(func() { p.Put(e) })
	}
}

// Current returns the engine bound to ctx, or nil.
func Current(ctx context.Context) *Engine {
	e, _ := ctx.Value(engineKey{}).(*Engine)
	return e
}

var defaultPool = NewPool()

// WithEngine binds an engine from the default pool to ctx.
func WithEngine(ctx context.Context) (context.Context, func()) {
	return defaultPool.Bind(ctx)
}

// Search runs one search from start to goal on the engine bound to ctx, or on
// one borrowed from the default pool for the duration of the call.
func Search(ctx context.Context, grid *Grid, start, goal Point, smooth bool) (*Path, error) {
	if e := Current(ctx); e != nil {
		return e.SearchContext(ctx, start.X(), start.Y(), goal.X(), goal.Y(), grid, smooth)
	}
	e := defaultPool.Get()
	defer defaultPool.Put(e)
	return e.SearchContext(ctx, start.X(), start.Y(), goal.X(), goal.Y(), grid, smooth)
}
