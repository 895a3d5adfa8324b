// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderConfig holds settings for the HTML renderer.
type RenderConfig struct {
	// Title is the <title> of the generated document. Empty uses the
	// document's own title, then DefaultDocumentTitle.
	Title string `json:"title" yaml:"title"`

	// Workers is the number of slides rendered concurrently (default 1).
	Workers int `json:"workers" yaml:"workers"`

	// IncludeNotes controls whether speaker notes are rendered (default true).
	IncludeNotes bool `json:"include_notes" yaml:"include_notes"`
}

// DefaultDocumentTitle is used when neither configuration nor the source
// document provide a title.
const DefaultDocumentTitle = "PPT to HTML Conversion"

// LegacyBackend selects how legacy binary .ppt files are read.
type LegacyBackend string

const (
	// LegacyNative extracts slide text directly from the OLE2 container.
	LegacyNative LegacyBackend = "native"

	// LegacyContainer upgrades the file to .pptx inside a container first.
	LegacyContainer LegacyBackend = "container"
)

// ParseConfig holds settings for the presentation parsers.
type ParseConfig struct {
	// LegacyBackend is native or container (default native).
	LegacyBackend LegacyBackend `json:"legacy_backend" yaml:"legacy_backend"`

	// ContainerImage is the image used by the container backend. It must
	// read a presentation on stdin and write .pptx to stdout.
	ContainerImage string `json:"container_image" yaml:"container_image"`

	// MaxEntrySize caps a single extracted archive member in bytes.
	MaxEntrySize int64 `json:"max_entry_size" yaml:"max_entry_size"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Enabled records every successful conversion.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir contains catalog.db.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default limit for search and history (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is debug, info, warn or error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// Config groups all configuration sections.
type Config struct {
	Render  RenderConfig  `json:"render" yaml:"render"`
	Parse   ParseConfig   `json:"parse" yaml:"parse"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Log     LogConfig     `json:"log" yaml:"log"`
}
