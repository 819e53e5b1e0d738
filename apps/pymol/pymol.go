// Package pymol wraps the PyMOL binary to extract backbone dihedral
// angles from a protein structure file. PyMOL is run headless with a
// transient script and its textual phi_psi listing is scraped into
// typed records.
package pymol

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/redapplepi3141/PhiPsiAnalysis/dihedral"
)

// DefaultConfig provides some sane defaults to run PyMOL with.
// For example:
//
//	residues, err := pymol.DefaultConfig.PhiPsi("structs/1bni.pdb")
var DefaultConfig = Config{
	Exec:    "pymol",
	Verbose: false,
	Vomit:   false,
}

// Config is used to specify the location of the PyMOL binary, in
// addition to the level of vomit echoed to stderr.
type Config struct {
	// Exec points to the 'pymol' executable. If 'pymol' is in your
	// PATH, it is sufficient to leave this as 'pymol'.
	Exec string

	// Verbose controls whether all commands executed are printed
	// to stderr.
	Verbose bool

	// When Vomit is true, all output from commands executed will also
	// be printed to stderr.
	Vomit bool
}

// PhiPsi loads the structure file at fpath into PyMOL and returns one
// record per residue with a computable backbone dihedral, in the
// order PyMOL lists them. Chain indices are not assigned here; feed
// the result to dihedral.SegmentChains.
//
// Alternate conformers are stripped before the angles are computed,
// so a residue contributes at most one record. Terminal residues of
// each chain lack one of phi/psi and are omitted by PyMOL itself.
//
// An empty or unparseable listing is a hard error: no defaults are
// substituted.
func (conf Config) PhiPsi(fpath string) ([]dihedral.Residue, error) {
	target := strings.TrimSuffix(path.Base(fpath), path.Ext(fpath))
	script := strings.Join([]string{
		fmt.Sprintf("load %s", fpath),
		"remove not alt ''+A",
		"alter all, alt=''",
		"sort",
		fmt.Sprintf("phi_psi %s", target),
	}, "\n")

	scriptFile, err := os.CreateTemp("", "phipsi-*.pml")
	if err != nil {
		return nil, err
	}
	defer os.Remove(scriptFile.Name())
	if _, err := scriptFile.WriteString(script); err != nil {
		scriptFile.Close()
		return nil, err
	}
	if err := scriptFile.Close(); err != nil {
		return nil, err
	}

	args := []string{"-cq", scriptFile.Name()}
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", conf.Exec, strings.Join(args, " "))
	}
	out, err := exec.Command(conf.Exec, args...).CombinedOutput()
	if conf.Vomit {
		fmt.Fprintf(os.Stderr, "%s\n", string(out))
	}
	if err != nil {
		return nil, fmt.Errorf("%s\n%s", out, err)
	}

	residues, err := parsePhiPsi(string(out))
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse PyMOL phi_psi output for '%s': %s", fpath, err)
	}
	return residues, nil
}
