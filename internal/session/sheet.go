package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
	"github.com/mind-engage/kcse-scoreboard/internal/grading"
)

var (
	ErrMarkRequired = errors.New("marks are required for all subjects")
	ErrMarkNotValid = errors.New("please enter a valid number")
)

// Row is one subject line on a mark sheet. Mark is kept as typed so that
// blank and non-numeric entries can be reported.
type Row struct {
	Code string `json:"code" yaml:"code"`
	Mark string `json:"mark" yaml:"mark"`
}

// Sheet is everything a caller submits for one "calculate".
// Subjects is the number of subjects sat (7 to 9); zero means len(Marks).
type Sheet struct {
	Student  Student `json:"student" yaml:"student"`
	Subjects int     `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	Marks    []Row   `json:"marks" yaml:"marks"`
}

// LoadSheet decodes a YAML (or JSON) mark sheet.
func LoadSheet(r io.Reader) (Sheet, error) {
	var s Sheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Sheet{}, fmt.Errorf("decode sheet: %w", err)
	}
	return s, nil
}

// ParseMark reads a typed mark, checks it lies in [0,100] and rounds it
// half up to a whole mark so it always lands in a band.
func ParseMark(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMarkRequired
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrMarkNotValid
	}
	if err := grading.ValidateMark(v); err != nil {
		return 0, err
	}
	return math.Floor(v + 0.5), nil
}

// Prepare validates the sheet against cat and returns the session's
// selection and the marks to grade. Every problem found is reported
// together as ValidationErrors.
func (s *Sheet) Prepare(cat *catalog.Catalog) (*Selection, []grading.Mark, error) {
	problems := s.Student.Validate()

	count := s.Subjects
	if count == 0 {
		count = len(s.Marks)
	}
	sel, err := NewSelection(cat, count)
	if err != nil {
		return nil, nil, append(problems, Problem{Field: "subjects", Message: err.Error()})
	}

	raw := map[string]string{}
	slots := sel.OptionalSlots()
	next := 0
	for i, row := range s.Marks {
		code := strings.TrimSpace(row.Code)
		field := fmt.Sprintf("marks[%d]", i)
		if _, dup := raw[code]; dup {
			problems = append(problems, Problem{Field: field, Message: fmt.Sprintf("%s: subject %s listed twice", grading.ErrDuplicateSubject, code)})
			continue
		}
		sub, ok := cat.Lookup(code)
		switch {
		case !ok:
			problems = append(problems, Problem{Field: field, Message: fmt.Sprintf("%s: %q", grading.ErrUnknownSubject, code)})
			continue
		case sub.Mandatory:
		case next >= len(slots):
			problems = append(problems, Problem{Field: field, Message: fmt.Sprintf("too many optional subjects for %d subjects", count)})
			continue
		default:
			if err := sel.Choose(slots[next], code); err != nil {
				problems = append(problems, Problem{Field: field, Message: err.Error()})
				continue
			}
			next++
		}
		raw[code] = row.Mark
	}

	var missing []string
	var marks []grading.Mark
	for i, e := range sel.Entries() {
		if e.Code == "" {
			problems = append(problems, Problem{Field: fmt.Sprintf("subjects[%d]", i), Message: "select optional subject"})
			continue
		}
		text, listed := raw[e.Code]
		if e.Mandatory && (!listed || strings.TrimSpace(text) == "") {
			missing = append(missing, e.Name)
			continue
		}
		v, err := ParseMark(text)
		if err != nil {
			problems = append(problems, Problem{Field: e.Code, Message: markMessage(err)})
			continue
		}
		marks = append(marks, grading.Mark{Code: e.Code, Mark: v})
	}
	if len(missing) > 0 {
		problems = append(problems, Problem{
			Field:   "subjects",
			Message: "Missing marks for mandatory subjects: " + strings.Join(missing, ", "),
		})
	}

	if len(problems) > 0 {
		return sel, nil, problems
	}
	return sel, marks, nil
}

func markMessage(err error) string {
	switch {
	case errors.Is(err, ErrMarkRequired):
		return "Marks are required for all subjects"
	case errors.Is(err, ErrMarkNotValid):
		return "Please enter a valid number"
	case errors.Is(err, grading.ErrMarkOutOfRange):
		return "Marks must be between 0 and 100"
	}
	return err.Error()
}
