package form

// FieldKey names a field of the record form. The declaration order is the
// focus order.
type FieldKey int

const (
	FieldID FieldKey = iota
	FieldTitle
	FieldDescription
	FieldStatus

	fieldCount
)

// FieldOrder is every FieldKey in focus order.
var FieldOrder = []FieldKey{FieldID, FieldTitle, FieldDescription, FieldStatus}

func (k FieldKey) String() string {
	switch k {
	case FieldID:
		return "ID"
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldStatus:
		return "Status"
	}
	return "?"
}

// Next returns the following field, wrapping to the first.
func (k FieldKey) Next() FieldKey { return (k + 1) % fieldCount }

// Prev returns the preceding field, wrapping to the last.
func (k FieldKey) Prev() FieldKey { return (k - 1 + fieldCount) % fieldCount }
