package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "input.txt")
	input := bytes.Repeat([]byte("hello, huffman\n"), 20)
	if err := os.WriteFile(original, input, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := run("huffer", []string{"compress", original}); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if _, err := os.Stat(original + ".huff"); err != nil {
		t.Fatalf("expected %s.huff to exist: %v", original, err)
	}

	restored := filepath.Join(dir, "restored.txt")
	if err := run("puff", []string{"-o", restored, original + ".huff"}); err != nil {
		t.Fatalf("decompress failed: %v", err)
	}

	actual, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(input, actual) {
		t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", input, actual)
	}
}

func TestRun_Usage(t *testing.T) {
	type testRow struct {
		name     string
		progname string
		args     []string
	}

	testData := [...]testRow{
		{"no subcommand", "huffer", nil},
		{"unknown subcommand", "huffer", []string{"squash", "file"}},
		{"missing file", "huffer", []string{"compress"}},
		{"bad suffix", "puff", []string{"file.txt"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if err := run(row.progname, row.args); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestRun_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.huff")
	if err := os.WriteFile(corrupt, []byte("garbage!"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := run("huffer", []string{"decompress", corrupt}); err == nil {
		t.Fatalf("expected an error")
	}
	if _, err := os.Stat(filepath.Join(dir, "corrupt")); !os.IsNotExist(err) {
		t.Errorf("expected the partial output to be removed, got %v", err)
	}
}
