package session

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRequest parses one batch line of the form
//
//	struct1 struct2 min-angle
//
// where each struct is a file path or PDB accession and min-angle is
// an integer number of degrees. Blank lines and lines starting with
// '#' yield a zero Request and ok == false.
func ParseRequest(line string) (Request, bool, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || strings.HasPrefix(line, "#") {
		return Request{}, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Request{}, false, fmt.Errorf(
			"batch line must be 'struct1 struct2 min-angle', got '%s'", line)
	}
	angle, err := strconv.Atoi(fields[2])
	if err != nil {
		return Request{}, false, fmt.Errorf(
			"could not parse '%s' as an integer angle", fields[2])
	}
	return Request{
		Struct1:   fields[0],
		Struct2:   fields[1],
		Threshold: angle,
	}, true, nil
}

// RunBatch parses each line as a request and runs the analyses in
// order, failing on the first error. Plot output paths in opts are
// suffixed with the request index when there is more than one
// request, so runs do not overwrite each other.
func RunBatch(lines []string, opts Options) error {
	reqs := make([]Request, 0, len(lines))
	for i, line := range lines {
		req, ok, err := ParseRequest(line)
		if err != nil {
			return fmt.Errorf("line %d: %s", i+1, err)
		}
		if ok {
			reqs = append(reqs, req)
		}
	}

	for i, req := range reqs {
		runOpts := opts
		if len(reqs) > 1 {
			runOpts.RamaPlot = indexedPath(opts.RamaPlot, i+1)
			runOpts.DiffPlot = indexedPath(opts.DiffPlot, i+1)
		}
		if _, err := Run(req, runOpts); err != nil {
			return fmt.Errorf(
				"analysis of '%s' vs '%s': %s", req.Struct1, req.Struct2, err)
		}
	}
	return nil
}

func indexedPath(fpath string, i int) string {
	if len(fpath) == 0 {
		return ""
	}
	dot := strings.LastIndex(fpath, ".")
	if dot <= 0 {
		return fmt.Sprintf("%s-%d", fpath, i)
	}
	return fmt.Sprintf("%s-%d%s", fpath[:dot], i, fpath[dot:])
}
