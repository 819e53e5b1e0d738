package pdb

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
)

// DownloadURL is the base URL entries are fetched from. RCSB serves
// legacy-format files at <base>/<idcode>.pdb.
var DownloadURL = "https://files.rcsb.org/download"

// IsIDCode reports whether s looks like a PDB accession: four
// characters, the first a digit, the rest alphanumeric. File paths
// never match, since path separators and extensions are rejected.
func IsIDCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	if s[0] < '0' || s[0] > '9' {
		return false
	}
	for i := 1; i < 4; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// Fetch downloads the PDB entry for the given accession into dir and
// returns the path of the downloaded file. Anything other than a 200
// response is an error.
func Fetch(idCode, dir string) (string, error) {
	url := fmt.Sprintf("%s/%s.pdb", DownloadURL, strings.ToLower(idCode))
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("could not fetch PDB entry '%s': %s", idCode, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("could not fetch PDB entry '%s' from '%s': %s",
			idCode, url, resp.Status)
	}

	fpath := path.Join(dir, fmt.Sprintf("%s.pdb", strings.ToLower(idCode)))
	f, err := os.Create(fpath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(fpath)
		return "", fmt.Errorf("could not write '%s': %s", fpath, err)
	}
	return fpath, nil
}

// Resolve turns a structure argument into a readable file path. A
// path to an existing file is returned as is. A PDB accession is
// fetched into dir first, and the returned release function deletes
// the downloaded file. Release is never nil and is safe to call for
// local files too; it does nothing for them.
func Resolve(arg, dir string) (string, func(), error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, func() {}, nil
	}
	if !IsIDCode(arg) {
		return "", nil, fmt.Errorf(
			"'%s' is neither a readable file nor a PDB accession", arg)
	}
	fpath, err := Fetch(arg, dir)
	if err != nil {
		return "", nil, err
	}
	return fpath, func() { os.Remove(fpath) }, nil
}
