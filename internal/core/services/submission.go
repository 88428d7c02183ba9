package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// Ensure SubmissionController implements the interface.
var _ driving.SubmissionController = (*SubmissionController)(nil)

// SubmissionController holds the form state and mediates between the text
// field, the file input and the classifier.
//
// State transitions:
//
//	Idle --Begin(valid)--> Submitting --Complete--> Idle (classification or error set)
//	Idle --Begin(empty)--> Idle (error set, no request)
//	Submitting --Begin--> Submitting (rejected with ErrSubmissionInProgress)
type SubmissionController struct {
	classifier driven.Classifier
	newID      func() string

	text       string
	attachment *domain.Attachment
	fileName   string

	classification domain.Classification
	errorMessage   string

	// inFlight is the ID of the running submission, empty when idle.
	inFlight string

	// previewSeq invalidates preview tickets. Every edit, file selection
	// and reset bumps it; a pending ticket applies only while it matches.
	previewSeq     uint64
	previewPending bool
}

// NewSubmissionController creates a controller that classifies through classifier.
func NewSubmissionController(classifier driven.Classifier) *SubmissionController {
	return &SubmissionController{
		classifier: classifier,
		newID:      func() string { return uuid.New().String() },
	}
}

// EditText replaces the text value. Any attachment, file name and displayed
// classification are cleared. Errors are left as they are.
func (c *SubmissionController) EditText(text string) {
	c.cancelPreview()
	c.text = text
	c.attachment = nil
	c.fileName = ""
	c.classification = ""
}

// SelectFile validates and stores an attachment.
//
// Choosing a file always clears the classification and error first. An
// accepted file supersedes the text; plain-text files also get a preview
// ticket. A rejected file clears any stored attachment and sets a validation
// error. Either way the caller should reset its file input control so the
// same file can be chosen again.
func (c *SubmissionController) SelectFile(attachment *domain.Attachment) (*domain.PreviewTicket, error) {
	c.cancelPreview()
	c.classification = ""
	c.errorMessage = ""

	if attachment == nil || !domain.IsAcceptedMediaType(attachment.MediaType) {
		c.attachment = nil
		c.fileName = ""
		c.errorMessage = domain.UnsupportedMediaTypeMessage
		mediaType := ""
		if attachment != nil {
			mediaType = attachment.MediaType
		}
		logger.Debug("rejected attachment with media type %q", mediaType)
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMediaType, mediaType)
	}

	c.attachment = attachment
	c.fileName = attachment.Name
	c.text = ""

	if !attachment.IsPlainText() {
		return nil, nil
	}

	c.previewPending = true
	return &domain.PreviewTicket{Seq: c.previewSeq, Attachment: attachment}, nil
}

// ApplyPreview writes decoded text if the ticket is still current.
// The attachment remains the content that gets submitted.
func (c *SubmissionController) ApplyPreview(ticket domain.PreviewTicket, text string) bool {
	if !c.previewPending || ticket.Seq != c.previewSeq || ticket.Attachment != c.attachment {
		return false
	}
	c.previewPending = false
	c.text = text
	return true
}

// CancelPreview drops any pending preview decode.
func (c *SubmissionController) CancelPreview() {
	c.cancelPreview()
}

func (c *SubmissionController) cancelPreview() {
	c.previewSeq++
	c.previewPending = false
}

// Begin starts a submission. Overlapping submissions are rejected without
// touching state; empty content sets a validation error and issues nothing.
func (c *SubmissionController) Begin() (*domain.Submission, error) {
	if c.inFlight != "" {
		return nil, domain.ErrSubmissionInProgress
	}

	content := c.Content()
	if content.IsEmpty() {
		c.errorMessage = domain.EmptyContentMessage
		return nil, domain.ErrEmptyContent
	}

	c.inFlight = c.newID()
	c.errorMessage = ""
	c.classification = ""

	return &domain.Submission{ID: c.inFlight, Content: content}, nil
}

// Execute performs exactly one classify call. A panic inside the classifier
// is converted into an error so that Complete still runs.
func (c *SubmissionController) Execute(
	ctx context.Context,
	submission domain.Submission,
) (result domain.SubmissionResult) {
	result.SubmissionID = submission.ID

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("classifier panicked: %v", r)
			result.Classification = ""
			result.Err = fmt.Errorf("classify: %v", r)
		}
	}()

	if c.classifier == nil {
		result.Err = domain.ErrClassifierUnavailable
		return result
	}

	label, err := c.classifier.Classify(ctx, submission.Content)
	if err != nil {
		result.Err = err
		return result
	}
	result.Classification = label
	return result
}

// Complete applies a result if it belongs to the in-flight submission.
// Busy is cleared whatever the outcome.
func (c *SubmissionController) Complete(result domain.SubmissionResult) bool {
	if c.inFlight == "" || result.SubmissionID != c.inFlight {
		logger.Debug("dropping stale result for submission %s", result.SubmissionID)
		return false
	}
	c.inFlight = ""

	if result.Err != nil {
		c.errorMessage = domain.FailureMessage(result.Err)
		return true
	}
	c.classification = result.Classification
	return true
}

// Submit runs a whole submission synchronously.
func (c *SubmissionController) Submit(ctx context.Context) (domain.Classification, error) {
	submission, err := c.Begin()
	if err != nil {
		return "", err
	}

	result := c.Execute(ctx, *submission)
	c.Complete(result)
	if result.Err != nil {
		return "", result.Err
	}
	return result.Classification, nil
}

// State returns a snapshot of the form.
func (c *SubmissionController) State() domain.FormState {
	return domain.FormState{
		Text:           c.text,
		FileName:       c.fileName,
		Attached:       c.attachment != nil,
		Classification: c.classification,
		ErrorMessage:   c.errorMessage,
		Busy:           c.inFlight != "",
	}
}

// Content returns the attachment when one is stored, the text otherwise.
func (c *SubmissionController) Content() domain.Content {
	if c.attachment != nil {
		return c.attachment
	}
	return domain.TextContent(c.text)
}

// Reset clears the form. Pending previews and in-flight results are dropped.
func (c *SubmissionController) Reset() {
	c.cancelPreview()
	c.text = ""
	c.attachment = nil
	c.fileName = ""
	c.classification = ""
	c.errorMessage = ""
	c.inFlight = ""
}
