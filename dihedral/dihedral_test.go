package dihedral

import "testing"

func TestSegmentChains(t *testing.T) {
	// Each non-increasing step starts a new chain, including the
	// equal-number case.
	numbers := []int{10, 11, 12, 5, 6, 50, 49}
	want := []int{1, 1, 1, 2, 2, 3, 4}

	residues := make([]Residue, len(numbers))
	for i, n := range numbers {
		residues[i] = Residue{Name: "ALA", Number: n}
	}
	tagged := SegmentChains(residues)
	for i, r := range tagged {
		if r.Chain != want[i] {
			t.Errorf("residue %d (number %d): chain = %d, want %d",
				i, r.Number, r.Chain, want[i])
		}
	}
}

func TestSegmentChainsDuplicateNumber(t *testing.T) {
	residues := []Residue{
		{Name: "ALA", Number: 7},
		{Name: "ALA", Number: 7},
	}
	tagged := SegmentChains(residues)
	if tagged[0].Chain != 1 || tagged[1].Chain != 2 {
		t.Fatalf("duplicate residue number must start a new chain, "+
			"got chains %d and %d", tagged[0].Chain, tagged[1].Chain)
	}
}

func TestSegmentChainsEmpty(t *testing.T) {
	if tagged := SegmentChains(nil); len(tagged) != 0 {
		t.Fatalf("segmenting nothing produced %d residues", len(tagged))
	}
}

func TestSegmentChainsSingle(t *testing.T) {
	tagged := SegmentChains([]Residue{{Name: "GLY", Number: 1}})
	if tagged[0].Chain != 1 {
		t.Fatalf("single residue got chain %d, want 1", tagged[0].Chain)
	}
}

func TestSegmentChainsDoesNotMutate(t *testing.T) {
	in := []Residue{{Name: "ALA", Number: 3}}
	SegmentChains(in)
	if in[0].Chain != 0 {
		t.Fatalf("input was mutated: chain = %d", in[0].Chain)
	}
}
