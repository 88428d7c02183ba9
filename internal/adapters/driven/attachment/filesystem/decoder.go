package filesystem

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
)

// Ensure TextDecoder implements the interface.
var _ driven.TextDecoder = (*TextDecoder)(nil)

// TextDecoder turns plain text attachments into displayable strings.
// UTF-8 and UTF-16 byte order marks are honoured; without one the bytes
// are read as UTF-8 and invalid sequences become U+FFFD.
type TextDecoder struct{}

// NewTextDecoder creates a text decoder.
func NewTextDecoder() *TextDecoder {
	return &TextDecoder{}
}

// Decode returns the attachment's text with line endings normalised to \n.
func (d *TextDecoder) Decode(ctx context.Context, attachment *domain.Attachment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if attachment == nil {
		return "", fmt.Errorf("%w: no attachment", domain.ErrInvalidInput)
	}
	if !attachment.IsPlainText() {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, attachment.MediaType)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, attachment.Data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", attachment.Name, err)
	}

	text := strings.ReplaceAll(string(out), "\r\n", "\n")
	return text, nil
}
