// Package remote provides the HTTP client for the classification service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// Ensure Classifier implements the interface.
var _ driven.Classifier = (*Classifier)(nil)

// Multipart field names understood by the classification service.
const (
	FieldText = "text"
	FieldFile = "file"
)

// Messages for responses the service did not explain.
const (
	unknownErrorMessage     = "unknown error from the classification service"
	noClassificationMessage = "the classification service returned no classification"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Config holds configuration for the remote classifier.
type Config struct {
	// BaseURL is the service root (default: http://localhost:5000).
	BaseURL string

	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient overrides the client used for requests. Timeout is
	// ignored when set.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from resolved client settings.
func ConfigFromSettings(settings domain.ClientSettings) Config {
	return Config{
		BaseURL: settings.EndpointBaseURL,
		Timeout: settings.Timeout,
	}
}

// Classifier posts email content to POST {BaseURL}/classify.
type Classifier struct {
	client   *http.Client
	endpoint string
}

// classifyResponse is the success body.
type classifyResponse struct {
	Classification string `json:"classification"`
}

// errorResponse is the failure body.
type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

// NewClassifier creates a remote classifier.
func NewClassifier(cfg Config) *Classifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultEndpointBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Classifier{
		client:   client,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + domain.ClassifyPath,
	}
}

// Classify sends content as a single multipart field and returns the label.
func (c *Classifier) Classify(ctx context.Context, content domain.Content) (domain.Classification, error) {
	body, contentType, err := encodeContent(content)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	logger.Debug("POST %s (%d bytes)", c.endpoint, body.Len())
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("classify request failed: %v", err)
		return "", &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Warn("read classify response: %v", err)
		return "", &domain.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	logger.Debug("classify responded %d in %s", resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.RequestError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(raw),
		}
	}

	var out classifyResponse
	if err := json.Unmarshal(raw, &out); err != nil || strings.TrimSpace(out.Classification) == "" {
		return "", &domain.RequestError{StatusCode: resp.StatusCode, Message: noClassificationMessage}
	}

	return domain.Classification(out.Classification), nil
}

// failureMessage extracts the service's explanation from a non-2xx body.
// An empty string means the body is not JSON, so the caller reports the
// bare HTTP status. Any JSON without a string "error" is an unknown error.
func failureMessage(raw []byte) string {
	if !json.Valid(raw) {
		return ""
	}

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Error) == 0 {
		return unknownErrorMessage
	}
	var message string
	if err := json.Unmarshal(body.Error, &message); err != nil || message == "" {
		return unknownErrorMessage
	}
	return message
}

// encodeContent writes content as multipart/form-data with exactly one field.
func encodeContent(content domain.Content) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	switch c := content.(type) {
	case domain.TextContent:
		if err := w.WriteField(FieldText, string(c)); err != nil {
			return nil, "", fmt.Errorf("write text field: %w", err)
		}
	case *domain.Attachment:
		if c == nil {
			return nil, "", domain.ErrEmptyContent
		}
		part, err := w.CreatePart(filePartHeader(c))
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(c.Data); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	case nil:
		return nil, "", domain.ErrEmptyContent
	default:
		return nil, "", fmt.Errorf("%w: unsupported content %T", domain.ErrInvalidInput, content)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// filePartHeader keeps the original filename and media type on the part.
func filePartHeader(a *domain.Attachment) textproto.MIMEHeader {
	mediaType := a.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldFile, escapeQuotes(a.Name)))
	h.Set("Content-Type", mediaType)
	return h
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
