package driven

import (
	"context"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// Classifier sends email content to the classification service.
//
// Implementations must send exactly one request per call, with the
// attachment when content is an *domain.Attachment and the text otherwise.
// Failures are reported as *domain.RequestError when the service answered
// with a non-success status, and *domain.TransportError when it could not
// be reached.
type Classifier interface {
	// Classify returns the label assigned to content.
	Classify(ctx context.Context, content domain.Content) (domain.Classification, error)
}
