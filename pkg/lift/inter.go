package lift

// AbsenceReporter is implemented by values that can signal absence.
type AbsenceReporter interface {
	// IsAbsent returns true if no value is carried
	IsAbsent() bool
}

// ErrorReporter is implemented by values that can carry an error payload.
type ErrorReporter interface {
	// IsErr returns true if the value holds the error variant
	IsErr() bool
}

var (
	_ AbsenceReporter = Optional[int]{}
	_ ErrorReporter   = Failable[int, error]{}
)
