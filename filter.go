package bm25index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// resolveFilter turns a Filter into the set of allowed document ids: the
// union of matching docs within each field, intersected across fields.
// A nil or empty filter matches every document: it yields a nil bitmap,
// which callers treat as "no restriction" instead of materializing a full
// bitmap.
func (s *indexState) resolveFilter(filter Filter) (*roaring.Bitmap, error) {
	if len(filter) == 0 {
		return nil, nil
	}

	var unknown []string
	for field := range filter {
		if _, declared := s.indexedFields[field]; !declared {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("field(s) %s: known fields are %s: %w",
			strings.Join(quoteAll(unknown), ", "), strings.Join(quoteAll(s.sortedIndexedFields()), ", "), ErrUnknownField)
	}

	var allowed *roaring.Bitmap
	for field, want := range filter {
		valueIndex := s.fieldIndex[field]
		union := roaring.NewBitmap()
		for _, prim := range want.primitives() {
			if bm, ok := valueIndex[prim.metaString()]; ok {
				union.Or(bm)
			}
		}

		if allowed == nil {
			allowed = union
		} else {
			allowed.And(union)
		}
	}
	return allowed, nil
}

// sortedIndexedFields returns the declared field names in sorted order,
// for deterministic error messages.
func (s *indexState) sortedIndexedFields() []string {
	fields := make([]string, 0, len(s.indexedFields))
	for f := range s.indexedFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func quoteAll(ss []string) []string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return quoted
}
