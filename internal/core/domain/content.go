package domain

import (
	"mime"
	"strings"
)

// Media types accepted as attachments.
const (
	MediaTypePlainText = "text/plain"
	MediaTypePDF       = "application/pdf"
)

// AcceptedMediaTypes returns the media types an attachment may declare.
func AcceptedMediaTypes() []string {
	return []string{MediaTypePlainText, MediaTypePDF}
}

// AcceptedExtensions returns the file extension hints shown by file pickers.
// They are advisory only; the media type decides.
func AcceptedExtensions() []string {
	return []string{".txt", ".pdf"}
}

// BaseMediaType strips parameters such as charset from a media type.
func BaseMediaType(mediaType string) string {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base, _, _ = strings.Cut(mediaType, ";")
	}
	return strings.ToLower(strings.TrimSpace(base))
}

// IsAcceptedMediaType reports whether mediaType is plain text or PDF.
func IsAcceptedMediaType(mediaType string) bool {
	base := BaseMediaType(mediaType)
	for _, accepted := range AcceptedMediaTypes() {
		if base == accepted {
			return true
		}
	}
	return false
}

// Content is the effective payload of a submission.
// It is either TextContent or *Attachment, never both.
type Content interface {
	// IsEmpty reports whether there is nothing worth submitting.
	IsEmpty() bool

	isContent()
}

// TextContent is typed email text.
type TextContent string

// IsEmpty reports whether the text is blank or whitespace-only.
func (t TextContent) IsEmpty() bool {
	return strings.TrimSpace(string(t)) == ""
}

func (TextContent) isContent() {}

// Attachment is a file chosen by the user. The attachment itself, not any
// text decoded from it, is what gets transmitted.
type Attachment struct {
	// Name is the original file name, without directories.
	Name string

	// MediaType is the declared media type, e.g. "application/pdf".
	MediaType string

	// Data holds the file bytes.
	Data []byte
}

// IsEmpty reports whether the attachment is missing. A present attachment is
// content even when its file is zero bytes long.
func (a *Attachment) IsEmpty() bool {
	return a == nil
}

// IsPlainText reports whether the attachment declares a plain-text media type.
func (a *Attachment) IsPlainText() bool {
	return a != nil && BaseMediaType(a.MediaType) == MediaTypePlainText
}

// Size returns the attachment size in bytes.
func (a *Attachment) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

func (*Attachment) isContent() {}
