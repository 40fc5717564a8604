package astar

import (
	"context"
	"sync"
)

// Query is one search request for SearchAll.
type Query struct {
	Start  Point
	Goal   Point
	Smooth bool
}

// QueryResult pairs a query with its outcome. Err holds faults only; an
// unreachable goal yields an empty Path.
type QueryResult struct {
	Query Query
	Path  *Path
	Err   error
}

// searchTask is handed from SearchAll to a worker.
type searchTask struct {
	index int
	query Query
}

// SearchAll runs queries over the walkability of grid on a pool of workers.
// Every worker searches its own clone of grid with its own engine, so grid
// itself is only read. Results keep the order of queries.
func SearchAll(ctx context.Context, grid *Grid, queries []Query, options ...Option) ([]QueryResult, error) {
	opts := resolveOptions(options)
	workers := opts.NumberOfWorkers
	if workers > len(queries) {
		workers = len(queries)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]QueryResult, len(queries))
	taskChannel := make(chan searchTask)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := grid.Clone()
			engine := New(options...)
			for task := range taskChannel {
				q := task.query
				path, err := engine.SearchContext(ctx, q.Start.X(), q.Start.Y(), q.Goal.X(), q.Goal.Y(), local, q.Smooth)
				results[task.index] = QueryResult{Query: q, Path: path, Err: err}
			}
		}()
	}

	var err error
feed:
	for i, q := range queries {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case taskChannel <- searchTask{index: i, query: q}:
		}
	}
	close(taskChannel)
	wg.Wait()
	return results, err
}
