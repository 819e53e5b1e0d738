// phipsi compares the backbone phi/psi dihedral angles of two protein
// structures and reports the residues whose angular difference meets
// a minimum threshold. Structures may be given as file paths or PDB
// accessions; accessions are fetched from RCSB and removed again when
// the analysis finishes.
//
// The tool is meant for two conformational states of the same protein
// or for two similar proteins, and assumes both use UniProt numbering
// (typical for PDB entries) or some other numbering system consistent
// across the pair.
package main

import (
	"flag"

	"github.com/redapplepi3141/PhiPsiAnalysis/cmd/util"
	"github.com/redapplepi3141/PhiPsiAnalysis/session"
)

var (
	flagBatch = ""
	flagRama  = ""
	flagDiff  = ""
)

func init() {
	flag.StringVar(&flagBatch, "batch", flagBatch,
		"When set, requests are read from the file provided, one\n"+
			"'struct1 struct2 min-angle' triple per line, and the\n"+
			"positional arguments are not used.")
	flag.StringVar(&flagRama, "rama", flagRama,
		"When set, a Ramachandran overlay of both structures is\n"+
			"written to the PNG file provided.")
	flag.StringVar(&flagDiff, "diff", flagDiff,
		"When set, a per-residue phi/psi difference chart for the\n"+
			"first chain is written to the PNG file provided.")

	util.FlagUse("pymol", "fetch-dir", "verbose")
	util.FlagParse("struct1 struct2 min-angle",
		"Each struct is a PDB file path or a 4-character PDB accession.\n"+
			"min-angle is an integer number of degrees; any value is\n"+
			"reduced to the equivalent minimum circular angle in [0, 180].")
	if len(flagBatch) == 0 {
		util.AssertNArg(3)
	}
}

func main() {
	opts := session.Options{
		Extractor: util.FlagPymol,
		FetchDir:  util.FlagFetchDir,
		RamaPlot:  flagRama,
		DiffPlot:  flagDiff,
	}
	util.AssertIsDir(opts.FetchDir)

	if len(flagBatch) > 0 {
		lines := util.ReadLines(util.OpenFile(flagBatch))
		util.Assert(session.RunBatch(lines, opts),
			"Batch '%s' failed", flagBatch)
		return
	}

	req := session.Request{
		Struct1:   util.Arg(0),
		Struct2:   util.Arg(1),
		Threshold: util.ParseInt(util.Arg(2)),
	}
	_, err := session.Run(req, opts)
	util.Assert(err, "Analysis of '%s' vs '%s' failed",
		req.Struct1, req.Struct2)
}
