package bm25index

import "strconv"

// Document is a single indexed record. IDs are assigned at Build time in
// input order starting at 0 and are stable for the index's lifetime.
type Document struct {
	ID    uint32
	Text  string
	Terms []string
	Meta  map[string]MetaValue
}

// Input is the heterogeneous element type Build accepts: either a bare
// TextInput or a DocInput carrying metadata.
type Input interface {
	isInput()
}

// TextInput is a document supplied as plain text with no metadata.
type TextInput string

func (TextInput) isInput() {}

// DocInput is a document supplied with metadata.
type DocInput struct {
	Text string
	Meta map[string]MetaValue
}

func (DocInput) isInput() {}

// MetaPrimitive is one metadata scalar: a string, integer, float, or bool.
// metaString is the canonical stringification used to key the field
// index and to match filter values against it.
type MetaPrimitive interface {
	metaString() string
}

// MetaString is a string metadata primitive.
type MetaString string

func (v MetaString) metaString() string { return string(v) }

// MetaInt is an integer metadata primitive.
type MetaInt int64

func (v MetaInt) metaString() string { return strconv.FormatInt(int64(v), 10) }

// MetaFloat is a floating-point metadata primitive.
type MetaFloat float64

func (v MetaFloat) metaString() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// MetaBool is a boolean metadata primitive.
type MetaBool bool

func (v MetaBool) metaString() string { return strconv.FormatBool(bool(v)) }

// MetaValue holds either a single primitive or an ordered list of them;
// metadata values never nest beyond one list level.
type MetaValue struct {
	single MetaPrimitive
	list   []MetaPrimitive
}

// NewMetaString wraps a string as a metadata value.
func NewMetaString(v string) MetaValue { return MetaValue{single: MetaString(v)} }

// NewMetaInt wraps an integer as a metadata value.
func NewMetaInt(v int64) MetaValue { return MetaValue{single: MetaInt(v)} }

// NewMetaFloat wraps a float as a metadata value.
func NewMetaFloat(v float64) MetaValue { return MetaValue{single: MetaFloat(v)} }

// NewMetaBool wraps a bool as a metadata value.
func NewMetaBool(v bool) MetaValue { return MetaValue{single: MetaBool(v)} }

// NewMetaList wraps an ordered sequence of primitives as a metadata value.
func NewMetaList(vs ...MetaPrimitive) MetaValue { return MetaValue{list: vs} }

// primitives returns the value's elements: the list if it is list-valued,
// otherwise the single primitive as a one-element slice.
func (m MetaValue) primitives() []MetaPrimitive {
	if m.list != nil {
		return m.list
	}
	if m.single != nil {
		return []MetaPrimitive{m.single}
	}
	return nil
}

// Filter is a set of per-field exact-match constraints passed to Search.
// A field's value may be a single primitive (exact match) or a list
// (union: any element matches). The overall filter is the intersection
// across fields.
type Filter map[string]MetaValue
