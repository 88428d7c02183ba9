package filesystem

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.AttachmentLoader = (*Loader)(nil)

// Loader reads attachments from the local filesystem.
type Loader struct{}

// NewLoader creates a filesystem attachment loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and declares its media type.
// Unsupported media types are returned as-is; accepting or rejecting them
// is up to the caller.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	mediaType := DeclaredMediaType(name, data)
	logger.Debug("loaded %s: %d bytes, %s", name, len(data), mediaType)

	return &domain.Attachment{
		Name:      name,
		MediaType: mediaType,
		Data:      data,
	}, nil
}

// DeclaredMediaType returns the base media type of a file's content.
// Content that mimetype classifies as a kind of text (CSV, HTML, JSON)
// counts as plain text when the name ends in .txt.
func DeclaredMediaType(name string, data []byte) string {
	if len(data) == 0 {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
			return domain.BaseMediaType(byExt)
		}
	}

	detected := mimetype.Detect(data)
	if detected.Is(domain.MediaTypePDF) || detected.Is(domain.MediaTypePlainText) {
		return domain.BaseMediaType(detected.String())
	}

	if strings.EqualFold(filepath.Ext(name), ".txt") {
		for m := detected.Parent(); m != nil; m = m.Parent() {
			if m.Is(domain.MediaTypePlainText) {
				return domain.MediaTypePlainText
			}
		}
	}

	return domain.BaseMediaType(detected.String())
}
