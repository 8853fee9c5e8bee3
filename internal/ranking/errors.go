// Package ranking scores a customized document against a job profile.
package ranking

import "fmt"

// ContractError reports inputs that violate the scorer's contract: missing
// artifacts or artifacts of a foreign shape. It signals a programming error
// upstream, never a weak match.
type ContractError struct {
	Message string
	Cause   error
}

func (e *ContractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring contract violated: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring contract violated: %s", e.Message)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}
