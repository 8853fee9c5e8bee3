// Package selection chooses the template for a posting and assembles the
// customized document from the candidate profile.
package selection

import "fmt"

// Error reports an input the customizer cannot work with. Input names the
// offending argument ("job profile" or "candidate profile").
type Error struct {
	Input   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Input != "" {
		msg = e.Input + " " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }
