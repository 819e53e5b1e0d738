package pymol

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/redapplepi3141/PhiPsiAnalysis/dihedral"
	"github.com/redapplepi3141/PhiPsiAnalysis/pdb"
)

// PyMOL's phi_psi command prints one line per residue, e.g.
//
//	SER-56:    (  -61.7,  -31.1 )
var phiPsiLine = regexp.MustCompile(
	`(\w+)-(\d+):\s+\(\s*(-?\d+\.\d+),\s*(-?\d+\.\d+)\s*\)`)

// parsePhiPsi scrapes a phi_psi listing into residue records. Names
// that are not amino acid codes are blanked, which marks the record
// for exclusion downstream. A listing with no parseable lines at all
// is an error.
func parsePhiPsi(out string) ([]dihedral.Residue, error) {
	matches := phiPsiLine.FindAllStringSubmatch(out, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no phi/psi lines found in output")
	}

	residues := make([]dihedral.Residue, 0, len(matches))
	for _, m := range matches {
		number, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("bad residue number in '%s': %s", m[0], err)
		}
		phi, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("bad phi in '%s': %s", m[0], err)
		}
		psi, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad psi in '%s': %s", m[0], err)
		}

		name := m[1]
		if !pdb.IsAmino(name) {
			name = ""
		}
		residues = append(residues, dihedral.Residue{
			Name:   name,
			Number: number,
			Phi:    phi,
			Psi:    psi,
		})
	}
	return residues, nil
}
