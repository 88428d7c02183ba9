// Package mcp provides an MCP (Model Context Protocol) server adapter for classe.
// It lets AI assistants classify emails through the classification service.
package mcp

import "errors"

// ErrMissingControllerFactory is returned when no submission controller factory is provided.
var ErrMissingControllerFactory = errors.New("mcp: submission controller factory is required")

// ErrMissingAttachmentService is returned when the attachment service is not provided.
var ErrMissingAttachmentService = errors.New("mcp: attachment service is required")

// ErrAmbiguousContent is returned when a tool call carries both text and a file path.
var ErrAmbiguousContent = errors.New("provide either text or file_path, not both")
