package diag

import "fmt"

// Severity classifies a Diagnostic per spec §7's taxonomy.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a severity-tagged, position-tagged compiler message. File is
// the short display name of the source (may be empty when the caller did not
// supply one, e.g. for an in-memory string).
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      Position
	File     string
}

// String renders a diagnostic as "(line:col): message", the format spec §4.1
// requires for lexer errors and which the rest of the core also uses for
// uniformity.
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%d:%d): %s", d.Pos.Line, d.Pos.Col, d.Message)
}
