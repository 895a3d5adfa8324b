// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	// DefaultMaxEntrySize caps one extracted part.
	DefaultMaxEntrySize int64 = 50 << 20

	// DefaultMaxEntries caps the number of parts in a package.
	DefaultMaxEntries = 10000
)

// archive indexes the parts of an OPC package and reads them within the
// configured size limit.
type archive struct {
	files    map[string]*zip.File
	maxEntry int64
}

func openArchive(ra io.ReaderAt, size int64, maxEntry int64, maxEntries int) (*archive, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid package size %d", size)
	}
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening zip: %w", err)
	}
	if len(zr.File) > maxEntries {
		return nil, fmt.Errorf("package has too many entries (%d > %d)", len(zr.File), maxEntries)
	}
	a := &archive{files: make(map[string]*zip.File, len(zr.File)), maxEntry: maxEntry}
	for _, f := range zr.File {
		a.files[strings.TrimPrefix(f.Name, "/")] = f
	}
	return a, nil
}

func (a *archive) has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// read returns the bytes of a part. Both the declared and the actual
// uncompressed size are checked against the limit.
func (a *archive) read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", name)
	}
	if f.UncompressedSize64 > uint64(a.maxEntry) {
		return nil, fmt.Errorf("part %s exceeds maximum size (%d bytes)", name, a.maxEntry)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, a.maxEntry+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > a.maxEntry {
		return nil, fmt.Errorf("part %s exceeds maximum size (%d bytes)", name, a.maxEntry)
	}
	return data, nil
}

func (a *archive) decode(name string, v any) error {
	data, err := a.read(name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Relationship type suffixes. Transitional and strict packages differ only
// in the namespace prefix.
const (
	relSlide      = "/slide"
	relNotesSlide = "/notesSlide"
	relImage      = "/image"
	relHyperlink  = "/hyperlink"
	relChart      = "/chart"
	relTheme      = "/theme"
	relOffice     = "/officeDocument"
)

type xRelationships struct {
	Items []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

func (r xRelationship) external() bool {
	return strings.EqualFold(r.TargetMode, "External")
}

// rels maps relationship IDs of a part. Targets of internal relationships
// are resolved to absolute part names.
type rels map[string]xRelationship

func (a *archive) rels(part string) rels {
	dir, file := path.Split(part)
	name := dir + "_rels/" + file + ".rels"
	out := rels{}
	var x xRelationships
	if !a.has(name) || a.decode(name, &x) != nil {
		return out
	}
	for _, r := range x.Items {
		if !r.external() {
			r.Target = resolvePart(dir, r.Target)
		}
		out[r.ID] = r
	}
	return out
}

// first returns the first relationship whose type ends with suffix.
func (rs rels) first(suffix string) (xRelationship, bool) {
	var found xRelationship
	ok := false
	for _, r := range rs {
		if strings.HasSuffix(r.Type, suffix) && (!ok || r.ID < found.ID) {
			found, ok = r, true
		}
	}
	return found, ok
}

// resolvePart resolves a relationship target against the directory of
// the source part. Targets cannot escape the package root.
func resolvePart(dir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	p := path.Clean("/" + dir + target)
	return strings.TrimPrefix(p, "/")
}
