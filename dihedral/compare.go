package dihedral

import (
	"fmt"
	"math"
)

// Pair is one residue matched between two structures, carrying both
// structures' angles and their circular differences.
type Pair struct {
	Chain  int
	Name   string
	Number int

	Phi1, Psi1 float64
	Phi2, Psi2 float64

	PhiDiff float64
	PsiDiff float64
}

// Comparison is the result of comparing two structures.
//
// Aligned holds every residue matched between the two structures, in
// the order the first structure lists them. Notable is the subset
// whose phi or psi difference meets or exceeds the threshold.
//
// Unmatched1 and Unmatched2 count the amino-acid residues of each
// input that found no partner. Unmatched residues are dropped from
// both tables without complaint (numbering gaps between homologous
// structures are common); the counts exist so callers can tell an
// empty result apart from a failed alignment.
type Comparison struct {
	Aligned []Pair
	Notable []Pair

	Unmatched1 int
	Unmatched2 int
}

// residueKey identifies a residue for alignment: two records refer to
// the same residue only if chain, name and number all agree.
type residueKey struct {
	chain  int
	name   string
	number int
}

// Compare aligns two chain-tagged residue tables and computes the
// circular phi/psi differences of every matched residue.
//
// Records with an empty Name (ligands, waters) are dropped from both
// inputs first. The remaining residues are inner-joined on
// (chain, name, number). Threshold is in degrees and is compared
// inclusively; callers normalize it with NormalizeThreshold.
//
// A record with a NaN or infinite angle is a malformed upstream
// record and yields an error rather than a table with poisoned
// differences.
func Compare(s1, s2 []Residue, threshold int) (*Comparison, error) {
	f1, err := aminoOnly(s1, "first")
	if err != nil {
		return nil, err
	}
	f2, err := aminoOnly(s2, "second")
	if err != nil {
		return nil, err
	}

	// Index the second structure by residue identity. Duplicate keys
	// cannot arise within a chain (SegmentChains splits on repeated
	// numbers); if one arises anyway, the first occurrence wins.
	lookup := make(map[residueKey]int, len(f2))
	for i, r := range f2 {
		key := residueKey{r.Chain, r.Name, r.Number}
		if _, ok := lookup[key]; !ok {
			lookup[key] = i
		}
	}

	cmp := &Comparison{
		Aligned: make([]Pair, 0, len(f1)),
		Notable: make([]Pair, 0),
	}
	matched2 := make(map[int]bool, len(f2))
	for _, r1 := range f1 {
		i2, ok := lookup[residueKey{r1.Chain, r1.Name, r1.Number}]
		if !ok {
			cmp.Unmatched1++
			continue
		}
		r2 := f2[i2]
		matched2[i2] = true

		pair := Pair{
			Chain:   r1.Chain,
			Name:    r1.Name,
			Number:  r1.Number,
			Phi1:    r1.Phi,
			Psi1:    r1.Psi,
			Phi2:    r2.Phi,
			Psi2:    r2.Psi,
			PhiDiff: Diff(r1.Phi, r2.Phi),
			PsiDiff: Diff(r1.Psi, r2.Psi),
		}
		cmp.Aligned = append(cmp.Aligned, pair)
		if pair.PhiDiff >= float64(threshold) || pair.PsiDiff >= float64(threshold) {
			cmp.Notable = append(cmp.Notable, pair)
		}
	}
	cmp.Unmatched2 = len(f2) - len(matched2)
	return cmp, nil
}

// aminoOnly drops records without an amino-acid name and rejects
// records whose angles are not finite numbers.
func aminoOnly(residues []Residue, which string) ([]Residue, error) {
	kept := make([]Residue, 0, len(residues))
	for _, r := range residues {
		if len(r.Name) == 0 {
			continue
		}
		if badAngle(r.Phi) || badAngle(r.Psi) {
			return nil, fmt.Errorf(
				"malformed record in %s structure: residue %s-%d has "+
					"angles (%v, %v)", which, r.Name, r.Number, r.Phi, r.Psi)
		}
		kept = append(kept, r)
	}
	return kept, nil
}

func badAngle(a float64) bool {
	return math.IsNaN(a) || math.IsInf(a, 0)
}
