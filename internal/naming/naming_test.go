package naming

import "testing"

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"Deploy":     "deploy",
		"RunTests":   "run_tests",
		"HTTPServer": "http_server",
		"Check2Go":   "check2_go",
		"already":    "already",
	}
	for in, want := range cases {
		if got := Snake(in); got != want {
			t.Errorf("Snake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWords(t *testing.T) {
	if got := Words("DiskSpaceCheck"); got != "disk space check" {
		t.Errorf("Words() = %q", got)
	}
}
