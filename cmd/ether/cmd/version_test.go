package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestVersionCommandPrintsBuildInfo(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = "9.9.9", "deadbeef", "2026-01-01"
	defer func() { Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	versionCmd.Run(versionCmd, nil)

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()

	if !strings.Contains(out, "ether version 9.9.9") {
		t.Errorf("expected version line, got: %s", out)
	}
	if !strings.Contains(out, "deadbeef") {
		t.Errorf("expected commit line, got: %s", out)
	}
	if !strings.Contains(out, "2026-01-01") {
		t.Errorf("expected build date line, got: %s", out)
	}
}
