package bm25index

import "github.com/RoaringBitmap/roaring"

// Result is one ranked hit returned by Search.
type Result struct {
	Document Document
	Score    float64
}

// score runs the BM25 accumulation pass over queryTerms, restricted to
// allowed when non-nil, and returns the top k results sorted descending
// by score with ties broken by ascending doc id.
//
// "First touch" is not detected by testing score[doc]==0: touched is built
// from a separate seen set so every doc that matched at least one query
// term is counted exactly once, regardless of its accumulated score.
func (s *indexState) score(queryTerms []string, allowed *roaring.Bitmap, k int) []Result {
	n := len(s.docs)
	acc := make([]float64, n)
	seen := make([]bool, n)
	var touched []uint32

	for _, term := range queryTerms {
		info, ok := s.dict[term]
		if !ok {
			continue
		}
		block := s.postings[info.off : info.off+info.len]
		var doc uint32
		for i := 0; i < len(block); i += 2 {
			doc += block[i]
			tf := block[i+1]

			if allowed != nil && !allowed.Contains(doc) {
				continue
			}

			norm := s.norms[doc]
			tfF := float64(tf)
			contribution := info.idf * (tfF * (k1 + 1)) / (tfF + k1*norm)
			acc[doc] += contribution

			if !seen[doc] {
				seen[doc] = true
				touched = append(touched, doc)
			}
		}
	}

	entries := topK(acc, touched, k)
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Document: s.docs[e.doc], Score: e.score}
	}
	return results
}
