package domain

// Classification is the label returned by the classification service.
type Classification string

// Labels the classification service is known to return.
const (
	// LabelImportant marks an email that needs human attention.
	LabelImportant Classification = "Importante"

	// LabelUnproductive marks an email that needs no immediate action.
	LabelUnproductive Classification = "Improdutivo"
)

// IsImportant reports whether the label takes the important presentation path.
// Every other label is treated as low priority.
func (c Classification) IsImportant() bool {
	return c == LabelImportant
}

// IsZero reports whether no classification is present.
func (c Classification) IsZero() bool {
	return c == ""
}

// String returns the label.
func (c Classification) String() string {
	return string(c)
}

// Description returns a human-readable explanation of the label.
func (c Classification) Description() string {
	switch {
	case c.IsZero():
		return ""
	case c.IsImportant():
		return "This email seems to need urgent human attention."
	default:
		return "This email seems to be low priority."
	}
}
