package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "stored.css")
	if err := os.WriteFile(stored, []byte("a { b: 1 }"), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "copied.css")
	if err := os.WriteFile(copied, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("styles/stored.css", stored)
	if err := r.StoreCopy("styles/copied.css", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.StoreData("styles/composed.css", []byte("composed"))
	r.Store("absent.log", filepath.Join(dir, "absent.log"))

	// copy must not see later changes
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if got := files["styles/stored.css"]; got != "a { b: 1 }" {
		t.Errorf("stored.css = %q", got)
	}
	if got := files["styles/copied.css"]; got != "original" {
		t.Errorf("copied.css = %q", got)
	}
	if got := files["styles/composed.css"]; got != "composed" {
		t.Errorf("composed.css = %q", got)
	}
	if _, ok := files["absent.log"]; ok {
		t.Error("absent file should be skipped")
	}
	if !strings.HasPrefix(files["MANIFEST"], "chartstyle report "+r.ID()+"\n") {
		t.Errorf("MANIFEST lacks report id:\n%s", files["MANIFEST"])
	}
	if !strings.Contains(files["MANIFEST"], "styles/stored.css") {
		t.Errorf("MANIFEST lacks entries:\n%s", files["MANIFEST"])
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.css")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &Report{entries: make(map[string]entry)}
	for range 2 {
		if err := r.StoreCopy("a.css", path); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}

	if err := r.StoreCopy("missing", filepath.Join(dir, "missing.css")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReport_StorePanicsOnConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("x", "/a")
	r.Store("x", "/a") // same path is fine

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting store")
		}
	}()
	r.Store("x", "/b")
}

func TestReport_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" || r.ID() != "" {
		t.Error("Name() and ID() on nil report should be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReport_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
