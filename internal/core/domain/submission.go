package domain

// FormState is a snapshot of the submission form.
type FormState struct {
	// Text is the text field value. While an attachment is stored it only
	// holds a cosmetic preview of the file.
	Text string

	// FileName is the display name of the stored attachment.
	FileName string

	// Attached reports whether an attachment is the current content.
	Attached bool

	// Classification is the label of the last successful submission.
	Classification Classification

	// ErrorMessage is the last validation, request or transport error.
	ErrorMessage string

	// Busy is true only while a classify request is in flight.
	Busy bool
}

// HasResult reports whether a classification is displayed.
func (s FormState) HasResult() bool {
	return !s.Classification.IsZero()
}

// HasError reports whether an error message is displayed.
func (s FormState) HasError() bool {
	return s.ErrorMessage != ""
}

// Submission is a single user-initiated classify request.
type Submission struct {
	// ID identifies the submission so late results can be matched or dropped.
	ID string

	// Content is what gets transmitted.
	Content Content
}

// SubmissionResult is the outcome of executing a Submission.
type SubmissionResult struct {
	// SubmissionID is the ID of the submission this result belongs to.
	SubmissionID string

	// Classification is set on success.
	Classification Classification

	// Err is set on failure.
	Err error
}

// PreviewTicket identifies a pending plain-text decode of an attachment.
// A ticket is invalidated by any later edit, file selection or reset.
type PreviewTicket struct {
	// Seq is the preview generation the ticket was issued for.
	Seq uint64

	// Attachment is the file to decode.
	Attachment *Attachment
}
