package cmd

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("xuidemo %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestDumpPrintsCommands(t *testing.T) {
	out := execute(t, "dump", "--frames", "6")
	for _, want := range []string{`"Demo Window"`, `"Log Window"`, `"Stats"`, "\nclip ", "\nrect "} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %s", want)
		}
	}
	for line := range strings.Lines(out) {
		if strings.HasPrefix(line, "jump") {
			t.Fatalf("jump leaked into output: %q", line)
		}
	}
}

func TestDumpWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	execute(t, "dump", "--frames", "2", "--png", path, "--width", "320", "--height", "200")

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	pc, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Width != 320 || pc.Height != 200 {
		t.Errorf("png is %dx%d, want 320x200", pc.Width, pc.Height)
	}
}

func TestDumpRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[window]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"dump", "--config", path})
	defer func() { configPath = "" }()
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown config key")
	}
}
