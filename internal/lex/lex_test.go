package lex

import (
	"reflect"
	"testing"
)

func TestTokenize_WordsAndOperators(t *testing.T) {
	got, err := Tokenize("cat AND dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"cat", "AND", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_ParensAreStandaloneLexemes(t *testing.T) {
	got, err := Tokenize("(cat OR dog) ANDNOT fish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"(", "cat", "OR", "dog", ")", "ANDNOT", "fish"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_NoParenWhitespace(t *testing.T) {
	got, err := Tokenize("(cat)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"(", "cat", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenize_EmptyStringYieldsNoTokens(t *testing.T) {
	got, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no tokens", got)
	}
}

func TestTokenize_CollapsesRepeatedWhitespace(t *testing.T) {
	got, err := Tokenize("cat   OR\tdog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"cat", "OR", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
