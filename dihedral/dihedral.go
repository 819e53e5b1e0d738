// Package dihedral compares the backbone dihedral geometry of two
// protein structures. Given per-residue (phi, psi) angle records
// extracted from each structure, it assigns chain indices, aligns
// residues across the structures and computes the minimum circular
// difference of each angle pair.
package dihedral

// Residue is one extracted residue with its backbone dihedral angles.
//
// Name is the amino acid code (e.g. "ALA"). An empty Name marks a
// non-amino entry (ligand, water); such records are dropped by
// Compare. Phi and Psi are in degrees and may be expressed in any
// representative range of the 360 degree circle.
//
// Chain is assigned by SegmentChains, not parsed from the structure
// file. It is zero until then.
type Residue struct {
	Name   string
	Number int
	Phi    float64
	Psi    float64
	Chain  int
}

// SegmentChains assigns 1-based chain indices to a sequence of
// residues in extraction order. A new chain starts exactly when a
// residue number is not greater than the one before it.
//
// Note the sharpness of that rule: a duplicated residue number (as
// alternate conformers can produce) also starts a new chain. This
// mirrors how multimeric complexes come out of the extractor, where
// each subunit restarts its numbering.
//
// The input is not modified; a tagged copy is returned. Any input,
// including an empty one, yields a valid output.
func SegmentChains(residues []Residue) []Residue {
	tagged := make([]Residue, len(residues))
	chain := 1
	prev := 0
	for i, r := range residues {
		if i > 0 && prev >= r.Number {
			chain++
		}
		r.Chain = chain
		tagged[i] = r
		prev = r.Number
	}
	return tagged
}
