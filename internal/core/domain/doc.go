// Package domain defines the core business entities for classe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Content: the single payload considered for submission (text or attachment)
//   - Attachment: a named blob with a declared media type
//   - Classification: the label returned by the classification service
//   - FormState: a snapshot of the submission form
//   - Submission / SubmissionResult: one classify request and its outcome
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
