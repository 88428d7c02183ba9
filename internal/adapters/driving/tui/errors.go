package tui

import "errors"

// ErrMissingSubmissionController is returned when the submission controller is not provided.
var ErrMissingSubmissionController = errors.New("tui: submission controller is required")

// ErrMissingAttachmentService is returned when the attachment service is not provided.
var ErrMissingAttachmentService = errors.New("tui: attachment service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
