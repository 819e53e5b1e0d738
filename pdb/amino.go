// Package pdb resolves protein structure inputs. A structure is named
// either by a local file path or by a four character PDB accession,
// in which case the entry is downloaded from RCSB. The package also
// carries the amino acid naming tables used to tell residues apart
// from ligands and waters.
package pdb

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// IsAmino reports whether name is a known three letter amino acid
// code.
func IsAmino(name string) bool {
	_, ok := AminoThreeToOne[name]
	return ok
}
