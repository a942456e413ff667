package source

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrInput = errors.New("input error")

// local file header, empty archive (end of central directory), spanned archive
var zipMagic = [][]byte{
	[]byte("PK\x03\x04"),
	[]byte("PK\x05\x06"),
	[]byte("PK\x07\x08"),
}

func isZip(data []byte) bool {
	for _, m := range zipMagic {
		if bytes.HasPrefix(data, m) {
			return true
		}
	}
	return false
}

// Entry is one GPX document, already read into memory.
type Entry struct {
	Name string
	Data []byte
}

// Input is either a single document or the entries of a zip archive in
// archive order.
type Input struct {
	Archive bool
	Entries []Entry
}

// Open reads path. Files starting with a zip signature are treated as
// archives; anything else is a single document.
func Open(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if !isZip(data) {
		return &Input{Entries: []Entry{{Name: path, Data: data}}}, nil
	}
	entries, err := readArchive(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, path, err)
	}
	return &Input{Archive: true, Entries: entries}, nil
}

func readArchive(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			continue
		}
		b, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", f.Name, err)
		}
		out = append(out, Entry{Name: f.Name, Data: b})
	}
	return out, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
