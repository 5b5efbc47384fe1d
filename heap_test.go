package bm25index

import "testing"

func TestTopKReturnsAllWhenKExceedsTouched(t *testing.T) {
	acc := []float64{0.5, 0, 0.9, 0.1}
	touched := []uint32{0, 2, 3}
	got := topK(acc, touched, 10)
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	want := []uint32{2, 0, 3}
	for i, e := range got {
		if e.doc != want[i] {
			t.Errorf("got[%d].doc = %d, want %d", i, e.doc, want[i])
		}
	}
}

func TestTopKBounded(t *testing.T) {
	acc := []float64{1.0, 5.0, 3.0, 4.0, 2.0}
	touched := []uint32{0, 1, 2, 3, 4}
	got := topK(acc, touched, 2)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].doc != 1 || got[1].doc != 3 {
		t.Errorf("got = %+v, want docs [1 3]", got)
	}
}

func TestTopKTieBreakAscendingDocID(t *testing.T) {
	acc := []float64{1.0, 1.0, 1.0}
	touched := []uint32{2, 0, 1}
	got := topK(acc, touched, 3)
	want := []uint32{0, 1, 2}
	for i, e := range got {
		if e.doc != want[i] {
			t.Errorf("got[%d].doc = %d, want %d", i, e.doc, want[i])
		}
	}
}

func TestTopKZeroTouched(t *testing.T) {
	got := topK(nil, nil, 5)
	if len(got) != 0 {
		t.Errorf("topK with no touched docs = %v, want empty", got)
	}
}
