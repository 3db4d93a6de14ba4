package catalog

import (
	"fmt"
	"strings"
)

// Band maps an inclusive mark range to a grade.
type Band struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Grade  Grade   `json:"grade" yaml:"grade"`
	Points int     `json:"points" yaml:"points"`
}

// Contains reports whether mark falls inside the band. NaN is never inside.
func (b Band) Contains(mark float64) bool {
	return b.Min <= mark && mark <= b.Max
}

// Subject is one examinable subject and its grading scale.
type Subject struct {
	Code      string `json:"code" yaml:"code"`
	Name      string `json:"name" yaml:"name"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
	Bands     []Band `json:"bands" yaml:"bands"`
}

// Band returns the first band containing mark.
func (s Subject) Band(mark float64) (Band, bool) {
	for _, b := range s.Bands {
		if b.Contains(mark) {
			return b, true
		}
	}
	return Band{}, false
}

// Catalog is an immutable set of subjects. The zero value is empty; use New
// or Default.
type Catalog struct {
	order  []string
	byCode map[string]Subject
}

// New validates subjects and builds a catalog preserving their order.
func New(subjects ...Subject) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(subjects)),
		byCode: make(map[string]Subject, len(subjects)),
	}
	for _, s := range subjects {
		s.Code = strings.TrimSpace(s.Code)
		if err := Validate(s); err != nil {
			return nil, err
		}
		if _, dup := c.byCode[s.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate subject code %s", ErrInvalidCatalog, s.Code)
		}
		s.Bands = append([]Band(nil), s.Bands...)
		c.byCode[s.Code] = s
		c.order = append(c.order, s.Code)
	}
	return c, nil
}

// MustNew is New for package-level tables known to be valid.
func MustNew(subjects ...Subject) *Catalog {
	c, err := New(subjects...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the subject for code.
func (c *Catalog) Lookup(code string) (Subject, bool) {
	if c == nil {
		return Subject{}, false
	}
	s, ok := c.byCode[strings.TrimSpace(code)]
	if !ok {
		return Subject{}, false
	}
	s.Bands = append([]Band(nil), s.Bands...)
	return s, true
}

// Len returns the number of subjects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Codes returns all subject codes in catalog order.
func (c *Catalog) Codes() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Subjects returns copies of all subjects in catalog order.
func (c *Catalog) Subjects() []Subject {
	return c.filter(func(Subject) bool { return true })
}

// Mandatory returns the subjects every student must sit.
func (c *Catalog) Mandatory() []Subject {
	return c.filter(func(s Subject) bool { return s.Mandatory })
}

// Options returns the optional subjects a student may choose from.
func (c *Catalog) Options() []Subject {
	return c.filter(func(s Subject) bool { return !s.Mandatory })
}

func (c *Catalog) filter(keep func(Subject) bool) []Subject {
	if c == nil {
		return nil
	}
	out := make([]Subject, 0, len(c.order))
	for _, code := range c.order {
		s := c.byCode[code]
		if keep(s) {
			s.Bands = append([]Band(nil), s.Bands...)
			out = append(out, s)
		}
	}
	return out
}
