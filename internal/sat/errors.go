package sat

import "fmt"

// InternalError marks a violated invariant: a bug in this package rather
// than a property of the input formula. The search itself never returns an
// error for any well-formed CNF; InternalError exists purely so invariant
// checks can fail loudly instead of silently producing a wrong answer.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return e.msg }

func internalf(format string, args ...any) {
	panic(&InternalError{msg: fmt.Sprintf(format, args...)})
}
