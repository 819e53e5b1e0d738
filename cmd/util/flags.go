package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/redapplepi3141/PhiPsiAnalysis/apps/pymol"
)

var (
	flagPymolExec = "pymol"
	FlagPymol     pymol.Config

	FlagFetchDir = os.TempDir()

	FlagVerbose = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"pymol": {
		set: func() {
			flag.StringVar(&flagPymolExec, "pymol", flagPymolExec,
				"The path to the PyMOL executable.")
		},
		init: func() {
			FlagPymol = pymol.DefaultConfig
			FlagPymol.Exec = flagPymolExec
			FlagPymol.Verbose = FlagVerbose
		},
	},
	"fetch-dir": {
		set: func() {
			flag.StringVar(&FlagFetchDir, "fetch-dir", FlagFetchDir,
				"The directory where PDB entries are downloaded to.")
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, all commands executed are printed to stderr.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
