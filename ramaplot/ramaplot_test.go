package ramaplot

import (
	"os"
	"path"
	"testing"

	"github.com/redapplepi3141/PhiPsiAnalysis/dihedral"
)

func TestRamachandran(t *testing.T) {
	fpath := path.Join(t.TempDir(), "rama.png")
	err := Ramachandran(fpath,
		Set{Label: "a.pdb", Residues: []dihedral.Residue{
			{Name: "ALA", Number: 1, Phi: -60, Psi: 140},
			{Name: "GLY", Number: 2, Phi: 80, Psi: 10},
			{Name: "", Number: 200, Phi: 0, Psi: 0}, // ligand, skipped
		}},
		Set{Label: "b.pdb", Residues: []dihedral.Residue{
			{Name: "ALA", Number: 1, Phi: -65, Psi: 135},
		}})
	if err != nil {
		t.Fatal(err)
	}
	assertNonEmpty(t, fpath)
}

func TestDiffLines(t *testing.T) {
	fpath := path.Join(t.TempDir(), "diff.png")
	err := DiffLines(fpath, []dihedral.Pair{
		{Chain: 1, Name: "ALA", Number: 1, PhiDiff: 5, PsiDiff: 2},
		{Chain: 1, Name: "GLY", Number: 2, PhiDiff: 45, PsiDiff: 12},
		{Chain: 1, Name: "SER", Number: 3, PhiDiff: 1, PsiDiff: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	assertNonEmpty(t, fpath)
}

func TestDiffLinesEmpty(t *testing.T) {
	// An empty alignment still renders a (bare) chart.
	fpath := path.Join(t.TempDir(), "diff.png")
	if err := DiffLines(fpath, nil); err != nil {
		t.Fatal(err)
	}
	assertNonEmpty(t, fpath)
}

func assertNonEmpty(t *testing.T, fpath string) {
	t.Helper()
	info, err := os.Stat(fpath)
	if err != nil {
		t.Fatalf("plot was not written: %s", err)
	}
	if info.Size() == 0 {
		t.Fatalf("plot '%s' is empty", fpath)
	}
}
