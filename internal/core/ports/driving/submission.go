package driving

import (
	"context"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// SubmissionController owns the submission form and performs one classify
// request per user-initiated submit.
//
// Implementations are not safe for concurrent use. Drive them from a single
// event loop; only Execute may run elsewhere.
type SubmissionController interface {
	// EditText replaces the text and drops any attachment and stale result.
	EditText(text string)

	// SelectFile validates and stores an attachment. For plain-text files it
	// returns a ticket for an asynchronous preview decode.
	// Returns domain.ErrUnsupportedMediaType when the media type is rejected.
	SelectFile(attachment *domain.Attachment) (*domain.PreviewTicket, error)

	// ApplyPreview writes decoded preview text if the ticket is still current.
	// Returns false when the ticket was superseded.
	ApplyPreview(ticket domain.PreviewTicket, text string) bool

	// CancelPreview drops any pending preview decode.
	CancelPreview()

	// Begin validates the content and marks the form busy.
	// Returns domain.ErrEmptyContent or domain.ErrSubmissionInProgress when
	// no request may be issued.
	Begin() (*domain.Submission, error)

	// Execute performs the classify request for a submission.
	// It does not touch form state and may run off the event loop.
	Execute(ctx context.Context, submission domain.Submission) domain.SubmissionResult

	// Complete applies a result to the form if it belongs to the in-flight submission.
	// Returns false when the result was dropped.
	Complete(result domain.SubmissionResult) bool

	// Submit runs Begin, Execute and Complete in sequence.
	Submit(ctx context.Context) (domain.Classification, error)

	// State returns a snapshot of the form.
	State() domain.FormState

	// Content returns the content a submit would send right now.
	Content() domain.Content

	// Reset clears the form and drops any pending preview or in-flight result.
	Reset()
}
