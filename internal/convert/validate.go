// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Format identifies which parser reads a file.
type Format int

const (
	FormatUnknown Format = iota
	// FormatPPTX is an Office Open XML package (zip).
	FormatPPTX
	// FormatPPT is a legacy OLE2 compound file.
	FormatPPT
	// FormatModel is a YAML or JSON document model file.
	FormatModel
)

func (f Format) String() string {
	switch f {
	case FormatPPTX:
		return "pptx"
	case FormatPPT:
		return "ppt"
	case FormatModel:
		return "model"
	}
	return "unknown"
}

// minPresentationSize is the smallest file that can carry a magic number.
const minPresentationSize = 8

var (
	presentationExts = map[string]bool{
		"ppt": true, "pptx": true, "pot": true, "potx": true, "pps": true, "ppsx": true,
		"pptm": true, "potm": true, "ppsm": true, "dps": true, "dpt": true,
	}
	modelExts = map[string]bool{"yaml": true, "yml": true, "json": true}

	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0}
	zipMagic  = []byte("PK")

	encryptionStreams = map[string]bool{
		"EncryptedPackage": true,
		"EncryptionInfo":   true,
		"EncryptedSummary": true,
	}
)

// Extension returns the lowercased extension of path without the dot.
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Supported reports whether path has an extension deckhtml can read.
func Supported(path string) bool {
	ext := Extension(path)
	return presentationExts[ext] || modelExts[ext]
}

// Validate checks that path names a readable presentation or model file
// and reports which parser handles it. Presentation files are routed by
// their magic number, so a legacy file saved with a .pptx extension is
// still read as a compound file.
func Validate(path string) (Format, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FormatUnknown, fmt.Errorf("%w: file does not exist: %s", ErrInvalidInput, path)
		}
		return FormatUnknown, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !info.Mode().IsRegular() {
		return FormatUnknown, fmt.Errorf("%w: path is not a file: %s", ErrInvalidInput, path)
	}

	ext := Extension(path)
	if modelExts[ext] {
		return FormatModel, nil
	}
	if !presentationExts[ext] {
		return FormatUnknown, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnsupportedFormat, ext)
	}
	if info.Size() < minPresentationSize {
		return FormatUnknown, fmt.Errorf("%w: file too small or corrupt: %s", ErrInvalidInput, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer f.Close()

	header := make([]byte, minPresentationSize)
	if _, err := io.ReadFull(f, header); err != nil {
		return FormatUnknown, fmt.Errorf("%w: reading header of %s: %w", ErrInvalidInput, path, err)
	}

	switch {
	case bytes.HasPrefix(header, zipMagic):
		return FormatPPTX, nil
	case bytes.HasPrefix(header, ole2Magic):
		encrypted, err := ole2Encrypted(f)
		if err != nil {
			return FormatUnknown, fmt.Errorf("%w: reading compound file %s: %w", ErrInvalidInput, path, err)
		}
		if encrypted {
			return FormatUnknown, fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrEncrypted, path)
		}
		return FormatPPT, nil
	}
	return FormatUnknown, fmt.Errorf("%w: not a PPT or PPTX file: %s", ErrInvalidInput, path)
}

// ole2Encrypted reports whether the compound file carries any of the
// streams Office writes for password-protected documents.
func ole2Encrypted(ra io.ReaderAt) (bool, error) {
	cf, err := mscfb.New(ra)
	if err != nil {
		return false, err
	}
	for entry, err := cf.Next(); err == nil; entry, err = cf.Next() {
		if encryptionStreams[strings.TrimLeft(entry.Name, "\x05")] {
			return true, nil
		}
	}
	return false, nil
}
