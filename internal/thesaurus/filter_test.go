package thesaurus

import (
	"errors"
	"reflect"
	"testing"
)

func testDictionary() *Dictionary {
	return NewDictionary(
		[]string{
			"Serviço Público", "Serviço Público de Transporte", "Transporte Ferroviário",
			"Utilidade Pública", "Meio Ambiente",
		},
		[]Edge{
			{Parent: "Serviço Público", Child: "Serviço Público de Transporte"},
			{Parent: "Serviço Público de Transporte", Child: "Transporte Ferroviário"},
		},
	)
}

func TestFilterSpecific_SingleLevel(t *testing.T) {
	dict := NewDictionary(
		[]string{"Transporte", "Transporte Ferroviário"},
		[]Edge{{Parent: "Transporte", Child: "Transporte Ferroviário"}},
	)

	got, err := dict.FilterSpecific([]string{"Transporte", "Transporte Ferroviário"})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	want := []string{"Transporte Ferroviário"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFilterSpecific_MultiLevel(t *testing.T) {
	dict := NewDictionary(
		[]string{"A", "B", "C"},
		[]Edge{{Parent: "A", Child: "B"}, {Parent: "B", Child: "C"}},
	)

	// A is pruned even though it is not C's direct parent
	got, err := dict.FilterSpecific([]string{"A", "C"})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	want := []string{"C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFilterSpecific_WholeChain(t *testing.T) {
	dict := testDictionary()

	got, err := dict.FilterSpecific([]string{
		"Serviço Público", "Serviço Público de Transporte", "Transporte Ferroviário",
	})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	want := []string{"Transporte Ferroviário"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFilterSpecific_NoFalseRemoval(t *testing.T) {
	dict := testDictionary()

	// Unrelated candidates are all retained, in either input order
	inputs := [][]string{
		{"Utilidade Pública", "Meio Ambiente", "Transporte Ferroviário"},
		{"Transporte Ferroviário", "Meio Ambiente", "Utilidade Pública"},
	}
	want := []string{"Meio Ambiente", "Transporte Ferroviário", "Utilidade Pública"}

	for _, in := range inputs {
		got, err := dict.FilterSpecific(in)
		if err != nil {
			t.Fatalf("FilterSpecific failed: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Input %v: expected %v, got %v", in, want, got)
		}
	}
}

func TestFilterSpecific_UnknownTermPassesThrough(t *testing.T) {
	dict := testDictionary()

	got, err := dict.FilterSpecific([]string{"Meio Ambiente"})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Meio Ambiente"}) {
		t.Errorf("Term without relations must pass through, got %v", got)
	}
}

func TestFilterSpecific_Idempotent(t *testing.T) {
	dict := testDictionary()

	once, err := dict.FilterSpecific([]string{
		"Serviço Público", "Transporte Ferroviário", "Utilidade Pública",
	})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	twice, err := dict.FilterSpecific(once)
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter is not idempotent: %v != %v", once, twice)
	}
}

func TestFilterSpecific_Empty(t *testing.T) {
	dict := testDictionary()
	got, err := dict.FilterSpecific(nil)
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}

	empty := NewDictionary(nil, nil)
	got, err = empty.FilterSpecific([]string{"Transporte"})
	if err != nil {
		t.Fatalf("FilterSpecific failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Transporte"}) {
		t.Errorf("Empty dictionary must not filter, got %v", got)
	}
}

func TestFilterSpecific_CycleSafety(t *testing.T) {
	dict := NewDictionary(
		[]string{"A", "B"},
		[]Edge{{Parent: "A", Child: "B"}, {Parent: "B", Child: "A"}},
	)

	got, err := dict.FilterSpecific([]string{"A", "B"})
	if !errors.Is(err, ErrMalformedHierarchy) {
		t.Fatalf("Expected ErrMalformedHierarchy, got %v", err)
	}
	// Fallback is the unfiltered candidate set, never a hang or a crash
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected unfiltered fallback %v, got %v", want, got)
	}
}

func TestCycles(t *testing.T) {
	clean := testDictionary()
	if got := clean.Cycles(); len(got) != 0 {
		t.Errorf("Expected no cycles, got %v", got)
	}

	cyclic := NewDictionary(
		[]string{"A", "B", "C"},
		[]Edge{{Parent: "A", Child: "B"}, {Parent: "B", Child: "A"}},
	)
	if got := cyclic.Cycles(); len(got) == 0 {
		t.Error("Expected cycle report, got none")
	}
}
