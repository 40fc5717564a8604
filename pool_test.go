package astar

import (
	"context"
	"sync"
	"testing"
)

func TestPoolBind(t *testing.T) {
	p := NewPool()
	ctx := context.Background()
	if Current(ctx) != nil {
		t.Fatal("unbound context has an engine")
	}

	bound, release := p.Bind(ctx)
	defer release()
	e := Current(bound)
	if e == nil {
		t.Fatal("Bind did not attach an engine")
	}

	child, cancel := context.WithCancel(bound)
	defer cancel()
	if Current(child) != e {
		t.Error("derived context sees a different engine")
	}

	again, releaseAgain := p.Bind(child)
	if Current(again) != e {
		t.Error("rebinding replaced the engine")
	}
	releaseAgain()
	releaseAgain()
}

func TestPoolDistinctPerTask(t *testing.T) {
	p := NewPool()
	const tasks = 8
	engines := make([]*Engine, tasks)
	releases := make([]func(), tasks)
	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var ctx context.Context
			ctx, releases[i] = p.Bind(context.Background())
			engines[i] = Current(ctx)
		}(i)
	}
	wg.Wait()

	seen := map[*Engine]bool{}
	for _, e := range engines {
		if seen[e] {
			t.Fatal("two live tasks share an engine")
		}
		seen[e] = true
	}
	for _, release := range releases {
		release()
	}
}

func TestPoolPutCleansEngine(t *testing.T) {
	p := NewPool()
	e := p.Get()
	g := newTestGrid(t, 3, 3)
	e.nodes.bind(g)
	if err := e.nodes.Open(1, 1, 0, 0, DirNone); err != nil {
		t.Fatal(err)
	}
	p.Put(e)
	if !e.nodes.IsClean() {
		t.Error("Put kept open nodes")
	}
	p.Put(nil)
}

func TestPackageSearch(t *testing.T) {
	g := newTestGrid(t, 6, 6)

	p, err := Search(context.Background(), g, ToPoint(0, 0), ToPoint(5, 3), false)
	if err != nil {
		t.Fatal(err)
	}
	checkRoute(t, g, p, 0, 0, 5, 3)

	ctx, release := WithEngine(context.Background())
	defer release()
	e := Current(ctx)
	p, err = Search(ctx, g, ToPoint(5, 5), ToPoint(0, 1), true)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsEmpty() || e.Stats().Expanded == 0 {
		t.Error("search did not run on the bound engine")
	}
	if !g.IsClean() {
		t.Error("state left behind")
	}
}
