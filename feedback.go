package bm25index

import (
	"context"
	"math"
	"sort"
)

// FeedbackOptions configures SearchWithFeedback.
type FeedbackOptions struct {
	SearchOptions
	// Alpha weights the original query terms in the expanded query.
	Alpha float64
	// Beta weights feedback terms drawn from relevant documents.
	Beta float64
}

// DefaultFeedbackOptions returns the standard feedback configuration:
// limit 10, no filter, alpha 1.0, beta 0.75.
func DefaultFeedbackOptions() FeedbackOptions {
	return FeedbackOptions{
		SearchOptions: DefaultSearchOptions(),
		Alpha:         1.0,
		Beta:          0.75,
	}
}

const maxFeedbackTerms = 30

// SearchWithFeedback expands query using Rocchio-style relevance feedback
// drawn from relevantDocIDs, then runs the expanded query through Search.
// With no relevant documents found among relevantDocIDs, it falls back to
// a plain search with the original query.
func (idx *Index) SearchWithFeedback(ctx context.Context, query string, relevantDocIDs []uint32, opts FeedbackOptions) ([]Result, error) {
	if opts.Limit < 1 {
		return nil, ErrInvalidLimit
	}
	if err := idx.worker.ensureSpawned(ctx, idx.state); err != nil {
		return nil, err
	}

	weights, found, err := idx.accumulateFeedback(ctx, relevantDocIDs)
	if err != nil {
		return nil, err
	}

	queryTerms := Tokenize(query, nil)
	if found == 0 || len(weights) == 0 {
		return idx.Search(ctx, query, opts.SearchOptions)
	}

	expanded := expandQuery(queryTerms, weights, found, opts.Alpha, opts.Beta)
	return idx.Search(ctx, expanded, opts.SearchOptions)
}

// accumulateFeedback computes a per-term Rocchio weight over the relevant
// documents, length-normalized by 1/|d.Terms| per document, and returns the
// weights alongside the number of relevantDocIDs that resolved to an
// actual document with at least one term (documents without terms are
// skipped and not counted).
func (idx *Index) accumulateFeedback(ctx context.Context, relevantDocIDs []uint32) (map[string]float64, int, error) {
	result, err := idx.worker.submit(ctx, func(s *indexState) any {
		weights := make(map[string]float64)
		found := 0
		for _, id := range relevantDocIDs {
			if int(id) < 0 || int(id) >= len(s.docs) {
				continue
			}
			doc := s.docs[id]
			if len(doc.Terms) == 0 {
				continue
			}
			found++
			inv := 1.0 / float64(len(doc.Terms))
			freqs := make(map[string]int, len(doc.Terms))
			for _, t := range doc.Terms {
				freqs[t]++
			}
			for t, tf := range freqs {
				weights[t] += float64(tf) * inv
			}
		}
		return feedbackResult{weights: weights, found: found}
	})
	if err != nil {
		return nil, 0, err
	}
	fr := result.(feedbackResult)
	return fr.weights, fr.found, nil
}

type feedbackResult struct {
	weights map[string]float64
	found   int
}

// expandQuery merges queryTerms (weighted alpha) with the top feedback
// terms by weight (weighted beta/found), re-expanding into a bag of words
// where each term is repeated clamp(round(1+ln(weight)), 1, 8) times.
func expandQuery(queryTerms []string, weights map[string]float64, found int, alpha, beta float64) string {
	type weighted struct {
		term   string
		weight float64
	}

	merged := make(map[string]float64, len(weights)+len(queryTerms))
	for _, t := range queryTerms {
		merged[t] += alpha
	}

	ranked := make([]weighted, 0, len(weights))
	for t, w := range weights {
		ranked = append(ranked, weighted{term: t, weight: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].term < ranked[j].term
	})
	if len(ranked) > maxFeedbackTerms {
		ranked = ranked[:maxFeedbackTerms]
	}
	for _, r := range ranked {
		merged[r.term] += beta * r.weight / float64(found)
	}

	terms := make([]string, 0, len(merged))
	for t := range merged {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	var expanded []string
	for _, t := range terms {
		expanded = append(expanded, repeatTerm(t, merged[t])...)
	}
	return joinTerms(expanded)
}

func repeatTerm(term string, weight float64) []string {
	count := repeatCount(weight)
	out := make([]string, count)
	for i := range out {
		out[i] = term
	}
	return out
}

func repeatCount(weight float64) int {
	if weight <= 0 {
		return 1
	}
	n := int(math.Round(1 + math.Log(weight)))
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	return n
}

func joinTerms(terms []string) string {
	out := ""
	for i, t := range terms {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}
