package bm25index

import "testing"

func TestMetaValueSinglePrimitive(t *testing.T) {
	mv := NewMetaString("docs")
	prims := mv.primitives()
	if len(prims) != 1 || prims[0].metaString() != "docs" {
		t.Errorf("primitives() = %v, want [docs]", prims)
	}
}

func TestMetaValueList(t *testing.T) {
	mv := NewMetaList(MetaString("docs"), MetaString("guides"))
	prims := mv.primitives()
	if len(prims) != 2 {
		t.Fatalf("primitives() length = %d, want 2", len(prims))
	}
	if prims[0].metaString() != "docs" || prims[1].metaString() != "guides" {
		t.Errorf("primitives() = %v", prims)
	}
}

func TestMetaValueZero(t *testing.T) {
	var mv MetaValue
	if prims := mv.primitives(); prims != nil {
		t.Errorf("primitives() of zero MetaValue = %v, want nil", prims)
	}
}

func TestMetaIntStringification(t *testing.T) {
	if got := MetaInt(42).metaString(); got != "42" {
		t.Errorf("MetaInt(42).metaString() = %q, want \"42\"", got)
	}
}

func TestMetaBoolStringification(t *testing.T) {
	if got := MetaBool(true).metaString(); got != "true" {
		t.Errorf("MetaBool(true).metaString() = %q, want \"true\"", got)
	}
}

func TestInputMarkerMethods(t *testing.T) {
	var inputs []Input
	inputs = append(inputs, TextInput("plain text"))
	inputs = append(inputs, DocInput{Text: "with meta", Meta: map[string]MetaValue{"k": NewMetaString("v")}})
	if len(inputs) != 2 {
		t.Fatalf("len(inputs) = %d, want 2", len(inputs))
	}
}
