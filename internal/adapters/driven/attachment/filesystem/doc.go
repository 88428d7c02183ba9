// Package filesystem loads attachments from local files and decodes plain
// text attachments for preview.
//
// The declared media type of a file is sniffed from its bytes with
// gabriel-vasile/mimetype. The file extension only settles ambiguous text
// and zero-byte files.
package filesystem
