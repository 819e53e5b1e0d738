// Package ramaplot renders the two charts of a dihedral comparison:
// a Ramachandran scatter overlay of the compared structures and a
// per-residue phi/psi difference line chart.
package ramaplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/redapplepi3141/PhiPsiAnalysis/dihedral"
)

// Colors assigned to structures on the Ramachandran overlay, in the
// order the sets are given. Wraps around if there are more sets.
var setColors = []color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 0, G: 160, B: 0, A: 255},
}

var (
	phiColor = color.RGBA{R: 249, G: 87, B: 0, A: 255}
	psiColor = color.RGBA{R: 0, G: 177, B: 210, A: 255}
)

// Set is one structure's angles for the Ramachandran overlay.
type Set struct {
	Label    string
	Residues []dihedral.Residue
}

// Ramachandran draws a scatter overlay of every given structure's
// (phi, psi) pairs on fixed [-180, 180] axes and saves it to fpath.
// The image format follows the file extension (".png" works).
func Ramachandran(fpath string, sets ...Set) error {
	p := plot.New()
	p.Title.Text = "Ramachandran Plot Comparison"
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	p.X.Min, p.X.Max = -180, 180
	p.Y.Min, p.Y.Max = -180, 180
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, set := range sets {
		pts := make(plotter.XYs, 0, len(set.Residues))
		for _, r := range set.Residues {
			if len(r.Name) == 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: r.Phi, Y: r.Psi})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = setColors[i%len(setColors)]
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(set.Label, s)
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, fpath); err != nil {
		return fmt.Errorf("could not save Ramachandran plot: %s", err)
	}
	return nil
}

// DiffLines draws the per-residue phi and psi circular differences of
// the given aligned pairs as two lines over residue number, and saves
// the chart to fpath. Callers typically pass the pairs of a single
// chain.
func DiffLines(fpath string, pairs []dihedral.Pair) error {
	p := plot.New()
	p.Title.Text = "Phi/Psi Difference by Residue"
	p.X.Label.Text = "Residue Number"
	p.Y.Label.Text = "Dihedral Angle Difference (deg)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	phis := make(plotter.XYs, len(pairs))
	psis := make(plotter.XYs, len(pairs))
	for i, pair := range pairs {
		phis[i] = plotter.XY{X: float64(pair.Number), Y: pair.PhiDiff}
		psis[i] = plotter.XY{X: float64(pair.Number), Y: pair.PsiDiff}
	}

	phiLine, err := plotter.NewLine(phis)
	if err != nil {
		return err
	}
	phiLine.LineStyle.Color = phiColor
	psiLine, err := plotter.NewLine(psis)
	if err != nil {
		return err
	}
	psiLine.LineStyle.Color = psiColor

	p.Add(phiLine, psiLine)
	p.Legend.Add("phi difference", phiLine)
	p.Legend.Add("psi difference", psiLine)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, fpath); err != nil {
		return fmt.Errorf("could not save difference plot: %s", err)
	}
	return nil
}
