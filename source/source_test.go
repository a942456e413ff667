package source

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path string, files ...[2]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.Create(file[0])
		if err != nil {
			t.Fatalf("zip create %s: %v", file[0], err)
		}
		if _, err := w.Write([]byte(file[1])); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
}

func TestOpenSingleDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.gpx")
	if err := os.WriteFile(path, []byte("<gpx/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	in, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if in.Archive {
		t.Fatalf("expected single document")
	}
	if len(in.Entries) != 1 || string(in.Entries[0].Data) != "<gpx/>" {
		t.Fatalf("unexpected entries %+v", in.Entries)
	}
}

func TestOpenArchiveKeepsOrderAndSkipsDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.zip")
	writeZip(t, path,
		[2]string{"b.gpx", "second"},
		[2]string{"rides/", ""},
		[2]string{"rides/a.gpx", "first"},
	)

	in, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !in.Archive {
		t.Fatalf("expected archive")
	}
	if len(in.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(in.Entries))
	}
	if in.Entries[0].Name != "b.gpx" || string(in.Entries[0].Data) != "second" {
		t.Fatalf("unexpected first entry %+v", in.Entries[0])
	}
	if in.Entries[1].Name != "rides/a.gpx" || string(in.Entries[1].Data) != "first" {
		t.Fatalf("unexpected second entry %+v", in.Entries[1])
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.gpx"))
	if !errors.Is(err, ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestOpenCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	if err := os.WriteFile(path, []byte("PK\x03\x04garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); !errors.Is(err, ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}

func TestOpenEmptyArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.zip")
	writeZip(t, path)

	in, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !in.Archive {
		t.Fatalf("expected empty zip to be detected as archive")
	}
	if len(in.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(in.Entries))
	}
}

func TestIsZip(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{"PK\x03\x04rest", true},
		{"PK\x05\x06rest", true},
		{"PK\x07\x08rest", true},
		{"<gpx/>", false},
		{"PK", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isZip([]byte(tt.data)); got != tt.want {
			t.Fatalf("isZip(%q): expected %v, got %v", tt.data, tt.want, got)
		}
	}
}
