package trace

import "github.com/google/uuid"

type Field string

const (
	FieldFunction Field = "Function"
	FieldInput    Field = "Input"
	FieldOutput   Field = "Output"
)

// Record is one diagnostic line. All records of a single call share Call.
type Record struct {
	Call     uuid.UUID
	Function string
	Field    Field
	Value    string
}

func (r Record) String() string {
	return string(r.Field) + ": " + r.Value
}
