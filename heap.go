package bm25index

import (
	"container/heap"
	"sort"
)

// scoreEntry pairs a document id with its accumulated BM25 score.
type scoreEntry struct {
	doc   uint32
	score float64
}

// minScoreHeap is a container/heap min-heap over scoreEntry, ordered by
// score only; tie-breaking on doc id happens once results are drained.
type minScoreHeap []scoreEntry

func (h minScoreHeap) Len() int            { return len(h) }
func (h minScoreHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h minScoreHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minScoreHeap) Push(x interface{}) { *h = append(*h, x.(scoreEntry)) }
func (h *minScoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK selects the k highest-scoring entries among touched, sorted
// descending by score with ties broken by ascending doc id. If k is at
// least the number of touched documents, all of them are returned sorted;
// otherwise a fixed-capacity min-heap of size k tracks the leaders.
func topK(acc []float64, touched []uint32, k int) []scoreEntry {
	if k >= len(touched) {
		entries := make([]scoreEntry, len(touched))
		for i, d := range touched {
			entries[i] = scoreEntry{doc: d, score: acc[d]}
		}
		sortEntriesDescending(entries)
		return entries
	}

	h := make(minScoreHeap, 0, k)
	for _, d := range touched {
		e := scoreEntry{doc: d, score: acc[d]}
		if len(h) < k {
			heap.Push(&h, e)
			continue
		}
		if e.score > h[0].score {
			heap.Pop(&h)
			heap.Push(&h, e)
		}
	}

	entries := make([]scoreEntry, len(h))
	copy(entries, h)
	sortEntriesDescending(entries)
	return entries
}

func sortEntriesDescending(entries []scoreEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].doc < entries[j].doc
	})
}
