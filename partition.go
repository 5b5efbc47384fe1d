package bm25index

import (
	"context"
	"sort"
	"sync"
)

// PartitionKeyFunc assigns an input to a shard key. Inputs sharing a key
// are indexed together in one shard's own Index.
type PartitionKeyFunc func(Input) string

// Partitioned is a collection of independently-built shard indexes, each
// with its own term statistics (a shard's IDF is computed only over its
// own documents, not the whole corpus). Searches can target one shard or
// fan out concurrently across a named set of shards.
type Partitioned struct {
	shards map[string]*Index
}

// BuildPartitioned groups inputs by keyFn and builds one Index per group.
func BuildPartitioned(inputs []Input, keyFn PartitionKeyFunc, opts BuildOptions) (*Partitioned, error) {
	grouped := make(map[string][]Input)
	for _, in := range inputs {
		key := keyFn(in)
		grouped[key] = append(grouped[key], in)
	}

	shards := make(map[string]*Index, len(grouped))
	for key, group := range grouped {
		idx, err := Build(group, opts)
		if err != nil {
			for _, built := range shards {
				built.Dispose()
			}
			return nil, err
		}
		shards[key] = idx
	}

	return &Partitioned{shards: shards}, nil
}

// SearchIn runs a search against a single named shard.
func (p *Partitioned) SearchIn(ctx context.Context, key, query string, opts SearchOptions) ([]Result, error) {
	idx, ok := p.shards[key]
	if !ok {
		return nil, nil
	}
	return idx.Search(ctx, query, opts)
}

// SearchMany fans the query out concurrently to the shards named by keys
// (keys naming no shard are skipped), each using its own full limit, then
// concatenates, re-sorts, and truncates to the requested limit.
func (p *Partitioned) SearchMany(ctx context.Context, keys []string, query string, opts SearchOptions) ([]Result, error) {
	if opts.Limit < 1 {
		return nil, ErrInvalidLimit
	}

	type shardResult struct {
		results []Result
		err     error
	}

	targets := make([]*Index, 0, len(keys))
	for _, key := range keys {
		if idx, ok := p.shards[key]; ok {
			targets = append(targets, idx)
		}
	}

	out := make(chan shardResult, len(targets))
	var wg sync.WaitGroup
	for _, idx := range targets {
		idx := idx
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := idx.Search(ctx, query, opts)
			out <- shardResult{results: res, err: err}
		}()
	}
	wg.Wait()
	close(out)

	var all []Result
	for sr := range out {
		if sr.err != nil {
			return nil, sr.err
		}
		all = append(all, sr.results...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Document.ID < all[j].Document.ID
	})
	if len(all) > opts.Limit {
		all = all[:opts.Limit]
	}
	return all, nil
}

// Dispose concurrently disposes every shard's Index.
func (p *Partitioned) Dispose() {
	var wg sync.WaitGroup
	for _, idx := range p.shards {
		idx := idx
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx.Dispose()
		}()
	}
	wg.Wait()
}
