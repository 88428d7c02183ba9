package driving

import (
	"context"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// AttachmentService reads attachments and decodes their previews.
type AttachmentService interface {
	// Load reads the file at path.
	Load(ctx context.Context, path string) (*domain.Attachment, error)

	// Preview decodes a plain-text attachment for display.
	Preview(ctx context.Context, attachment *domain.Attachment) (string, error)
}
