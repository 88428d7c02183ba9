package classify

import "errors"

// ErrNoAttachmentService is returned when a file is picked but no
// attachment service is configured.
var ErrNoAttachmentService = errors.New("attachments are not available")
