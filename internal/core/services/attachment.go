package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

// Ensure AttachmentService implements the interface.
var _ driving.AttachmentService = (*AttachmentService)(nil)

// ErrNoPreview indicates the attachment has no text preview.
var ErrNoPreview = errors.New("attachment has no text preview")

// AttachmentService loads attachments and decodes their previews.
type AttachmentService struct {
	loader  driven.AttachmentLoader
	decoder driven.TextDecoder
}

// NewAttachmentService creates an attachment service. decoder may be nil,
// in which case no previews are produced.
func NewAttachmentService(loader driven.AttachmentLoader, decoder driven.TextDecoder) *AttachmentService {
	return &AttachmentService{
		loader:  loader,
		decoder: decoder,
	}
}

// Load reads the file at path.
func (s *AttachmentService) Load(ctx context.Context, path string) (*domain.Attachment, error) {
	if s.loader == nil {
		return nil, fmt.Errorf("load attachment: %w", domain.ErrInvalidInput)
	}
	attachment, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load attachment: %w", err)
	}
	return attachment, nil
}

// Preview decodes a plain-text attachment. Other media types have no preview.
func (s *AttachmentService) Preview(ctx context.Context, attachment *domain.Attachment) (string, error) {
	if s.decoder == nil || !attachment.IsPlainText() {
		return "", ErrNoPreview
	}
	text, err := s.decoder.Decode(ctx, attachment)
	if err != nil {
		return "", fmt.Errorf("decode preview: %w", err)
	}
	return text, nil
}
