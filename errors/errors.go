package errors

import (
	"fmt"
	"strings"
)

var (
	ErrValidation          = fmt.Errorf("invalid input")
	ErrDuplicateName       = fmt.Errorf("participant name already taken")
	ErrParticipantNotFound = fmt.Errorf("participant not found")
	ErrUnauthorized        = fmt.Errorf("log in again to send messages")
	ErrStore               = fmt.Errorf("store operation failed")
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrEmptyWordList       = fmt.Errorf("no forbidden words have been provided")
)

// FieldErrors carries every violated field of a request, so the caller
// can report them all together. It matches ErrValidation under errors.Is.
type FieldErrors struct {
	Fields []string
}

func (e FieldErrors) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Fields, "; "))
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

