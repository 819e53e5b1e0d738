package session

import "testing"

func TestParseRequest(t *testing.T) {
	req, ok, err := ParseRequest("1bni structs/other.pdb 30")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("a full request line must parse")
	}
	want := Request{Struct1: "1bni", Struct2: "structs/other.pdb", Threshold: 30}
	if req != want {
		t.Fatalf("parsed %+v, want %+v", req, want)
	}

	// Negative thresholds are allowed; normalization happens later.
	req, ok, err = ParseRequest("a.pdb b.pdb -190")
	if err != nil || !ok {
		t.Fatalf("negative angle must parse, got ok=%v err=%v", ok, err)
	}
	if req.Threshold != -190 {
		t.Fatalf("threshold = %d, want -190", req.Threshold)
	}
}

func TestParseRequestSkipsBlanksAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment"} {
		if _, ok, err := ParseRequest(line); ok || err != nil {
			t.Fatalf("line %q: ok=%v err=%v, want skipped", line, ok, err)
		}
	}
}

func TestParseRequestErrors(t *testing.T) {
	for _, line := range []string{
		"only-two args",
		"a.pdb b.pdb thirty",
		"a b c d",
	} {
		if _, _, err := ParseRequest(line); err == nil {
			t.Fatalf("line %q must not parse", line)
		}
	}
}

func TestIndexedPath(t *testing.T) {
	tests := []struct {
		fpath string
		i     int
		want  string
	}{
		{"", 3, ""},
		{"rama.png", 1, "rama-1.png"},
		{"out/rama.png", 2, "out/rama-2.png"},
		{"rama", 2, "rama-2"},
	}
	for _, test := range tests {
		if got := indexedPath(test.fpath, test.i); got != test.want {
			t.Errorf("indexedPath(%q, %d) = %q, want %q",
				test.fpath, test.i, got, test.want)
		}
	}
}
