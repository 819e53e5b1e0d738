// Package session orchestrates one dihedral comparison end to end:
// resolve the two structure arguments, extract their phi/psi angles,
// run the comparison and present the results. Each analysis is a pure
// function of its request; there is no state between runs.
package session

import (
	"fmt"
	"io"
	"os"
	"path"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/redapplepi3141/PhiPsiAnalysis/dihedral"
	"github.com/redapplepi3141/PhiPsiAnalysis/pdb"
	"github.com/redapplepi3141/PhiPsiAnalysis/ramaplot"
)

// Extractor produces per-residue dihedral records from a structure
// file. pymol.Config satisfies this; tests substitute their own.
type Extractor interface {
	PhiPsi(fpath string) ([]dihedral.Residue, error)
}

// Request is one analysis: two structures, each named by a file path
// or a PDB accession, and the minimum angle of interest in degrees.
// The threshold may be any integer; it is normalized before use.
type Request struct {
	Struct1   string
	Struct2   string
	Threshold int
}

// Options configures how requests are executed.
type Options struct {
	// Extractor computes dihedral angles from a structure file.
	Extractor Extractor

	// FetchDir is where PDB accessions are downloaded to. Downloads
	// are deleted when the analysis finishes. Empty means the system
	// temp directory.
	FetchDir string

	// RamaPlot and DiffPlot, when non-empty, are the output paths of
	// the Ramachandran overlay and the per-residue difference chart
	// for chain 1.
	RamaPlot string
	DiffPlot string

	// Out receives the notable-residue report. Nil means stdout.
	Out io.Writer
}

// Run executes a single analysis and returns the full comparison.
func Run(req Request, opts Options) (*dihedral.Comparison, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	fetchDir := opts.FetchDir
	if len(fetchDir) == 0 {
		fetchDir = os.TempDir()
	}

	path1, release1, err := pdb.Resolve(req.Struct1, fetchDir)
	if err != nil {
		return nil, err
	}
	defer release1()
	path2, release2, err := pdb.Resolve(req.Struct2, fetchDir)
	if err != nil {
		return nil, err
	}
	defer release2()

	raw1, err := opts.Extractor.PhiPsi(path1)
	if err != nil {
		return nil, err
	}
	raw2, err := opts.Extractor.PhiPsi(path2)
	if err != nil {
		return nil, err
	}
	s1 := dihedral.SegmentChains(raw1)
	s2 := dihedral.SegmentChains(raw2)

	threshold := dihedral.NormalizeThreshold(req.Threshold)
	cmp, err := dihedral.Compare(s1, s2, threshold)
	if err != nil {
		return nil, err
	}

	printNotable(out, cmp, threshold)

	if len(opts.RamaPlot) > 0 {
		err := ramaplot.Ramachandran(opts.RamaPlot,
			ramaplot.Set{Label: path.Base(path1), Residues: s1},
			ramaplot.Set{Label: path.Base(path2), Residues: s2})
		if err != nil {
			return nil, err
		}
	}
	if len(opts.DiffPlot) > 0 {
		if err := ramaplot.DiffLines(opts.DiffPlot, Chain(cmp.Aligned, 1)); err != nil {
			return nil, err
		}
	}
	return cmp, nil
}

// Chain returns the aligned pairs belonging to one chain.
func Chain(pairs []dihedral.Pair, chain int) []dihedral.Pair {
	kept := make([]dihedral.Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Chain == chain {
			kept = append(kept, p)
		}
	}
	return kept
}

// printNotable writes the notable-residue table, or a message that
// nothing met the threshold. An empty alignment and an alignment with
// no notable residues read the same here; the Unmatched counts on the
// comparison are there for callers who need to tell them apart.
func printNotable(w io.Writer, cmp *dihedral.Comparison, threshold int) {
	if len(cmp.Notable) == 0 {
		fmt.Fprintln(w, "No residues exceed that threshold.")
		return
	}

	fmt.Fprintf(w, "Residues with a phi or psi difference >= %d degrees:\n\n",
		threshold)
	fmt.Fprintf(w, "%-5s  %-7s  %-7s  %8s  %8s\n",
		"Chain", "ResName", "Residue", "Phi_diff", "Psi_diff")
	for _, p := range cmp.Notable {
		fmt.Fprintf(w, "%-5d  %-7s  %-7d  %8.2f  %8.2f\n",
			p.Chain, p.Name, p.Number, p.PhiDiff, p.PsiDiff)
	}

	phis, psis := diffColumns(cmp.Aligned)
	fmt.Fprintf(w, "\n%d of %d aligned residues are notable. "+
		"Max diff: phi %.2f, psi %.2f. Mean diff: phi %.2f, psi %.2f.\n",
		len(cmp.Notable), len(cmp.Aligned),
		floats.Max(phis), floats.Max(psis),
		stat.Mean(phis, nil), stat.Mean(psis, nil))
}

func diffColumns(pairs []dihedral.Pair) (phis, psis []float64) {
	phis = make([]float64, len(pairs))
	psis = make([]float64, len(pairs))
	for i, p := range pairs {
		phis[i] = p.PhiDiff
		psis[i] = p.PsiDiff
	}
	return phis, psis
}
