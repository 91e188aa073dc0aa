package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ms-henglu/logtree/internal/log"
)

var escapePattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func stripANSI(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	var out bytes.Buffer
	log.SetOutput(&out, &out)
	t.Cleanup(func() {
		color.NoColor = noColor
		log.Reset()
	})
	return &out
}

func TestRenderCmd_ExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	build := writeManifest(t, dir, "build.tree.hcl", `
tree "Build" {
  node "Compiling" {
    color = "green"
  }
  node "Linking" {}
}
`)
	deploy := writeManifest(t, dir, "deploy.tree.hcl", `
tree "Deploy" {
  charset = "ascii"
  node "staging" {}
}
`)

	var out bytes.Buffer
	c := NewRenderCmd()
	c.SetOut(&out)
	c.SetArgs([]string{build, deploy})
	if err := c.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	expected := strings.TrimLeft(`
Build
├─ Compiling
└─ Linking
Deploy
`+"`"+`- staging
`, "\n")
	if got := stripANSI(out.String()); got != expected {
		t.Errorf("render output = \n%v, want \n%v", got, expected)
	}
	if !strings.Contains(out.String(), "\x1b[32mCompiling") {
		t.Errorf("expected green Compiling, got %q", out.String())
	}
}

func TestRenderCmd_DiscoversWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "10-second.tree.hcl", `tree "second" {}`)
	writeManifest(t, dir, "00-first.tree.hcl", `tree "first" {}`)
	writeManifest(t, dir, "ignored.hcl", `tree "ignored" {}`)
	chdir(t, dir)

	var out bytes.Buffer
	c := NewRenderCmd()
	c.SetOut(&out)
	c.SetArgs(nil)
	if err := c.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if got := stripANSI(out.String()); got != "first\nsecond\n" {
		t.Errorf("render output = %q", got)
	}
}

func TestRenderCmd_Source(t *testing.T) {
	bundle := t.TempDir()
	writeManifest(t, bundle, "remote.tree.hcl", `
tree "Remote" {
  node "fetched" {}
}
`)
	chdir(t, t.TempDir())

	var out bytes.Buffer
	c := NewRenderCmd()
	c.SetOut(&out)
	c.SetArgs([]string{"--source", bundle})
	if err := c.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if got := stripANSI(out.String()); got != "Remote\n└─ fetched\n" {
		t.Errorf("render output = %q", got)
	}
}

func TestRenderCmd_NoManifests(t *testing.T) {
	logOut := captureLog(t)
	chdir(t, t.TempDir())

	var out bytes.Buffer
	c := NewRenderCmd()
	c.SetOut(&out)
	c.SetArgs(nil)
	if err := c.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no tree output, got %q", out.String())
	}
	if !strings.Contains(logOut.String(), "No tree manifests") {
		t.Errorf("expected hint, got %q", logOut.String())
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeManifest(t, dir, "bad.tree.hcl", `tree "x" { color = "orange" }`)

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "invalid manifest",
			args:     []string{bad},
			contains: `unknown color "orange"`,
		},
		{
			name:     "source with files",
			args:     []string{"--source", dir, bad},
			contains: "cannot be combined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRenderCmd()
			c.SetOut(&bytes.Buffer{})
			c.SetErr(&bytes.Buffer{})
			c.SilenceUsage = true
			c.SetArgs(tt.args)
			err := c.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}
