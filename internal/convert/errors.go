// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/deckhtml/internal/ppt"
)

var (
	// ErrInvalidInput marks input that cannot be converted at all: a missing
	// path, a directory, an unsupported extension or a corrupt header.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConversion marks a failure while parsing a valid-looking file or
	// writing the output.
	ErrConversion = errors.New("conversion failed")

	// ErrUnsupportedFormat is wrapped together with ErrInvalidInput when the
	// file extension is not recognised.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEncrypted is wrapped together with ErrInvalidInput for
	// password-protected presentations.
	ErrEncrypted = errors.New("encrypted presentations are not supported")
)

// parseError classifies an error returned by a Parser.
func parseError(path string, err error) error {
	if errors.Is(err, ppt.ErrEncrypted) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrEncrypted, path)
	}
	return fmt.Errorf("%w: parsing %s: %w", ErrConversion, path, err)
}
