package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/rbset/console"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeText(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunTopWithDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	path := writeText(t, "Apple pear apple fig.\napple pear kiwi\n")
	dotPath := filepath.Join(t.TempDir(), "words.dot")
	var buf bytes.Buffer
	if err := run(console.NewPrinter(&buf, false), path, 0, false, false, 2, dotPath); err != nil {
		t.Fatal(err)
	}
	expected := "   1. apple (3)\n   2. pear (2)\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, buf.String())
	}
	dot, err := os.ReadFile(dotPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"strict digraph", `"apple"`, `"kiwi"`} {
		if !strings.Contains(string(dot), w) {
			t.Errorf("expected DOT output to contain %s", w)
		}
	}
}

func TestRunListings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	path := writeText(t, "b a c a")
	var buf bytes.Buffer
	if err := run(console.NewPrinter(&buf, false), path, 0, true, false, 0, ""); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "c (1)\nb (1)\na (2)\n" {
		t.Errorf("expected descending listing, have %q", buf.String())
	}
	buf.Reset()
	if err := run(console.NewPrinter(&buf, false), path, 0, false, false, 0, ""); err != nil {
		t.Fatal(err)
	}
	if strings.Fields(buf.String())[0] != "a" {
		t.Errorf("expected ascending listing to start with a, have %q", buf.String())
	}
	if err := run(console.NewPrinter(&buf, false), filepath.Join(t.TempDir(), "none"), 0, false, false, 0, ""); err == nil {
		t.Errorf("expected error for missing file")
	}
}
