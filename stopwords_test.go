package bm25index

import "testing"

func TestDefaultStopWordsFiltersCommonWords(t *testing.T) {
	got := Tokenize("the cat sat on the mat", DefaultStopWords)
	want := []string{"cat", "sat", "mat"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestDefaultStopWordsDoesNotDropContentWords(t *testing.T) {
	if _, stop := DefaultStopWords["fox"]; stop {
		t.Error("\"fox\" should not be a stopword")
	}
}
