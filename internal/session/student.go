package session

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Student identifies whose scoreboard is printed.
type Student struct {
	Name        string `json:"name" yaml:"name" validate:"required,min=3"`
	IndexNumber string `json:"index_number" yaml:"index_number" validate:"required,min=5"`
}

var validate = validator.New()

// Validate trims both fields in place and checks them.
func (s *Student) Validate() ValidationErrors {
	s.Name = strings.TrimSpace(s.Name)
	s.IndexNumber = strings.TrimSpace(s.IndexNumber)

	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{Field: "student", Message: err.Error()}}
	}
	var out ValidationErrors
	for _, fe := range verrs {
		out = append(out, Problem{Field: fieldName(fe.Field()), Message: studentMessage(fe)})
	}
	return out
}

func fieldName(f string) string {
	switch f {
	case "Name":
		return "name"
	case "IndexNumber":
		return "index_number"
	}
	return strings.ToLower(f)
}

func studentMessage(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "Name.required":
		return "Student name is required"
	case "Name.min":
		return "Name must be at least " + fe.Param() + " characters"
	case "IndexNumber.required":
		return "Index number is required"
	case "IndexNumber.min":
		return "Index number must be at least " + fe.Param() + " characters"
	}
	return fe.Error()
}

// Problem is one input error, keyed by the field it belongs to.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every problem found in a sheet.
type ValidationErrors []Problem

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, p := range v {
		msgs = append(msgs, p.Field+": "+p.Message)
	}
	return strings.Join(msgs, "; ")
}
