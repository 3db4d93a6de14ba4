package grading

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownSubject       = errors.New("unknown subject")
	ErrNoGrade              = errors.New("mark matches no grade band")
	ErrMarkOutOfRange       = errors.New("marks must be between 0 and 100")
	ErrDuplicateSubject     = errors.New("duplicate subject")
	ErrMissingMandatory     = errors.New("missing mandatory subject")
	ErrInsufficientSubjects = errors.New("insufficient subjects")
)

// MissingMandatoryError names the mandatory subjects absent from a result set.
type MissingMandatoryError struct {
	Codes []string
	Names []string
}

func (e *MissingMandatoryError) Error() string {
	return "missing marks for mandatory subjects: " + strings.Join(e.Names, ", ")
}

func (e *MissingMandatoryError) Is(target error) bool { return target == ErrMissingMandatory }

// InsufficientSubjectsError reports how many graded subjects were supplied.
type InsufficientSubjectsError struct {
	Have int
	Need int
}

func (e *InsufficientSubjectsError) Error() string {
	return fmt.Sprintf("insufficient subjects: %d graded, %d required", e.Have, e.Need)
}

func (e *InsufficientSubjectsError) Is(target error) bool { return target == ErrInsufficientSubjects }
