package driven

import (
	"context"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// AttachmentLoader reads a file chosen by the user.
// It declares the media type but does not judge it; validation belongs to the core.
type AttachmentLoader interface {
	// Load reads the file at path into an attachment.
	Load(ctx context.Context, path string) (*domain.Attachment, error)
}

// TextDecoder turns a plain-text attachment into displayable text.
type TextDecoder interface {
	// Decode returns the text of the attachment.
	Decode(ctx context.Context, attachment *domain.Attachment) (string, error)
}
