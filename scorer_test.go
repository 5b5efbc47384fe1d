package bm25index

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
)

func newAllowedBitmap(ids ...uint32) *roaring.Bitmap {
	bm := roaring.NewBitmap()
	bm.AddMany(ids)
	return bm
}

func TestScoreRanksMoreRelevantDocHigher(t *testing.T) {
	inputs := []Input{
		TextInput("the cat sat on the mat"),
		TextInput("the cat the cat the cat played with the cat"),
		TextInput("a dog barked at the moon"),
	}
	state, err := newIndexState(inputs, DefaultBuildOptions(), testLogger())
	if err != nil {
		t.Fatalf("newIndexState() error = %v", err)
	}

	results := state.score(Tokenize("cat", nil), nil, 10)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Document.ID != 1 {
		t.Errorf("top result doc = %d, want 1 (heaviest cat frequency)", results[0].Document.ID)
	}
}

func TestScoreRespectsAllowedFilter(t *testing.T) {
	inputs := []Input{
		TextInput("cat cat cat"),
		TextInput("cat"),
	}
	state, err := newIndexState(inputs, DefaultBuildOptions(), testLogger())
	if err != nil {
		t.Fatalf("newIndexState() error = %v", err)
	}

	bm := newAllowedBitmap(1)
	results := state.score(Tokenize("cat", nil), bm, 10)
	if len(results) != 1 || results[0].Document.ID != 1 {
		t.Errorf("results = %+v, want only doc 1", results)
	}
}

func TestScoreUnknownTermYieldsNoResults(t *testing.T) {
	inputs := []Input{TextInput("the cat sat")}
	state, err := newIndexState(inputs, DefaultBuildOptions(), testLogger())
	if err != nil {
		t.Fatalf("newIndexState() error = %v", err)
	}
	results := state.score(Tokenize("zzqqxx", nil), nil, 10)
	if len(results) != 0 {
		t.Errorf("results = %+v, want none", results)
	}
}

func TestScoreDedupesTouchedAcrossTerms(t *testing.T) {
	inputs := []Input{
		TextInput("cat dog"),
		TextInput("cat"),
	}
	state, err := newIndexState(inputs, DefaultBuildOptions(), testLogger())
	if err != nil {
		t.Fatalf("newIndexState() error = %v", err)
	}
	results := state.score(Tokenize("cat dog", nil), nil, 10)
	seen := map[uint32]bool{}
	for _, r := range results {
		if seen[r.Document.ID] {
			t.Fatalf("doc %d appeared more than once in results", r.Document.ID)
		}
		seen[r.Document.ID] = true
	}
}
