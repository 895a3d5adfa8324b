// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ppt

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdiddy/deckhtml/internal/container"
	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/internal/pptx"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// DefaultContainerImage is used when no image is configured. The image
// must read a presentation on stdin and write .pptx to stdout.
const DefaultContainerImage = "deckhtml/unoconv:latest"

// ContainerReader upgrades legacy files to .pptx inside a container and
// reads the result with the pptx reader.
type ContainerReader struct {
	image  string
	detect func(context.Context) (container.Runtime, error)
	pptx   *pptx.Reader
	logger *slog.Logger
}

// NewContainerReader creates a ContainerReader using docker or podman,
// whichever is available.
func NewContainerReader(cfg types.ParseConfig, logger *slog.Logger) *ContainerReader {
	image := cfg.ContainerImage
	if image == "" {
		image = DefaultContainerImage
	}
	return &ContainerReader{
		image:  image,
		detect: container.DetectRuntime,
		pptx:   pptx.NewReader(cfg, logger),
		logger: logging.OrDiscard(logger),
	}
}

// Parse converts the file at path and reads the upgraded package.
func (c *ContainerReader) Parse(ctx context.Context, path string) (*types.Document, error) {
	rt, err := c.detect(ctx)
	if err != nil {
		return nil, err
	}
	if err := rt.ImageExists(ctx, c.image); err != nil {
		return nil, err
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	c.logger.Info("upgrading legacy presentation", "path", path, "runtime", rt.Name(), "image", c.image)
	var out bytes.Buffer
	if err := rt.Run(ctx, c.image, in, &out); err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s: container %s produced no output", path, c.image)
	}

	doc, err := c.pptx.ReadFrom(ctx, bytes.NewReader(out.Bytes()), int64(out.Len()))
	if err != nil {
		return nil, fmt.Errorf("%s: reading upgraded package: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}
