package bm25index

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// termInfo locates a term's postings block inside the packed array and
// carries its precomputed IDF.
type termInfo struct {
	off uint32
	len uint32
	idf float64
}

// indexState is the frozen, read-only corpus representation shared
// between an Index handle and its worker goroutine. Nothing in it is
// ever mutated after build completes.
type indexState struct {
	docs          []Document
	dict          map[string]termInfo
	postings      []uint32
	norms         []float64
	fieldIndex    map[string]map[string]*roaring.Bitmap
	indexedFields map[string]struct{}
	avgDocLen     float64
}

// BuildOptions configures Build.
type BuildOptions struct {
	// IndexFields names the metadata fields materialized into the field
	// index; only these may be used in a Search filter.
	IndexFields []string
	// StopWords are excluded from term statistics at build time.
	StopWords map[string]struct{}
}

// DefaultBuildOptions returns the standard build configuration.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		IndexFields: []string{"filePath"},
	}
}

// termPostings accumulates one term's (doc, tf) pairs during the invert
// pass, in ascending doc id order (documents are processed 0..N-1).
type termPostings struct {
	docs []uint32
	tfs  []uint32
}

func normalizeInput(in Input) (string, map[string]MetaValue, error) {
	switch v := in.(type) {
	case TextInput:
		return string(v), nil, nil
	case DocInput:
		return v.Text, v.Meta, nil
	default:
		return "", nil, ErrInvalidDocument
	}
}

func newIndexState(inputs []Input, opts BuildOptions, logger *slog.Logger) (*indexState, error) {
	if len(inputs) == 0 {
		return nil, ErrInvalidCorpus
	}

	docs := make([]Document, len(inputs))
	docLens := make([]int, len(inputs))
	termFreqs := make([]map[string]int, len(inputs))

	for i, in := range inputs {
		text, meta, err := normalizeInput(in)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		terms := Tokenize(text, opts.StopWords)
		docs[i] = Document{ID: uint32(i), Text: text, Terms: terms, Meta: meta}
		// |doc| is the tokenizer's raw output length, not the stop-word-
		// filtered term count: length normalization must see every token a
		// document actually has, independent of which terms get indexed.
		docLens[i] = len(Tokenize(text, nil))

		freqs := make(map[string]int, len(terms))
		for _, t := range terms {
			freqs[t]++
		}
		termFreqs[i] = freqs
	}

	logger.Info("indexed corpus", slog.Int("documents", len(docs)))

	perTerm := make(map[string]*termPostings)
	for docID, freqs := range termFreqs {
		for term, tf := range freqs {
			tp := perTerm[term]
			if tp == nil {
				tp = &termPostings{}
				perTerm[term] = tp
			}
			tp.docs = append(tp.docs, uint32(docID))
			tp.tfs = append(tp.tfs, uint32(tf))
		}
	}

	terms := make([]string, 0, len(perTerm))
	for term := range perTerm {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	dict := make(map[string]termInfo, len(terms))
	var postings []uint32
	for _, term := range terms {
		tp := perTerm[term]
		off := uint32(len(postings))
		var prevDoc uint32
		for i, doc := range tp.docs {
			postings = append(postings, doc-prevDoc, tp.tfs[i])
			prevDoc = doc
		}
		df := float64(len(tp.docs))
		idf := math.Log((n-df+0.5)/(df+0.5) + 1.0)
		dict[term] = termInfo{off: off, len: uint32(len(postings)) - off, idf: idf}
	}

	var totalLen int
	for _, l := range docLens {
		totalLen += l
	}
	var avgDocLen float64
	if len(docLens) > 0 {
		avgDocLen = float64(totalLen) / float64(len(docLens))
	}

	norms := make([]float64, len(docs))
	for i, l := range docLens {
		ratio := 1.0
		if avgDocLen > 0 {
			ratio = float64(l) / avgDocLen
		}
		norms[i] = (1 - b) + b*ratio
	}

	fieldIndex := buildFieldIndex(docs, opts.IndexFields)
	indexedFields := make(map[string]struct{}, len(opts.IndexFields))
	for _, f := range opts.IndexFields {
		indexedFields[f] = struct{}{}
	}

	return &indexState{
		docs:          docs,
		dict:          dict,
		postings:      postings,
		norms:         norms,
		fieldIndex:    fieldIndex,
		indexedFields: indexedFields,
		avgDocLen:     avgDocLen,
	}, nil
}

func buildFieldIndex(docs []Document, indexFields []string) map[string]map[string]*roaring.Bitmap {
	fieldIndex := make(map[string]map[string]*roaring.Bitmap, len(indexFields))
	for _, field := range indexFields {
		fieldIndex[field] = make(map[string]*roaring.Bitmap)
	}
	for _, doc := range docs {
		if doc.Meta == nil {
			continue
		}
		for _, field := range indexFields {
			mv, ok := doc.Meta[field]
			if !ok {
				continue
			}
			valueIndex := fieldIndex[field]
			for _, prim := range mv.primitives() {
				key := prim.metaString()
				bm, ok := valueIndex[key]
				if !ok {
					bm = roaring.NewBitmap()
					valueIndex[key] = bm
				}
				bm.Add(doc.ID)
			}
		}
	}
	return fieldIndex
}
