package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
	"github.com/mind-engage/kcse-scoreboard/internal/grading"
)

const (
	MinSubjects = 7
	MaxSubjects = 9
)

var (
	ErrSubjectCount = fmt.Errorf("please select between %d and %d subjects", MinSubjects, MaxSubjects)
	ErrSlot         = errors.New("not an optional subject slot")
	ErrNotOptional  = errors.New("subject is not an optional subject")
)

// Entry is one row of a grading session. An optional row with an empty Code
// has not been chosen yet.
type Entry struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Mandatory bool   `json:"mandatory"`
}

// Selection holds the subjects being graded for one student: the mandatory
// subjects first, then the optional slots. It is not safe for concurrent use.
type Selection struct {
	cat     *catalog.Catalog
	entries []Entry
}

// NewSelection lays out count rows (7 to 9) with the catalog's mandatory
// subjects pre-filled.
func NewSelection(cat *catalog.Catalog, count int) (*Selection, error) {
	if count < MinSubjects || count > MaxSubjects {
		return nil, fmt.Errorf("%w (got %d)", ErrSubjectCount, count)
	}
	mand := cat.Mandatory()
	if len(mand) >= count {
		return nil, fmt.Errorf("%w: %d mandatory subjects leave no optional slot", ErrSubjectCount, len(mand))
	}
	s := &Selection{cat: cat, entries: make([]Entry, 0, count)}
	for _, m := range mand {
		s.entries = append(s.entries, Entry{Code: m.Code, Name: m.Name, Mandatory: true})
	}
	for len(s.entries) < count {
		s.entries = append(s.entries, Entry{})
	}
	return s, nil
}

func (s *Selection) Len() int { return len(s.entries) }

// Entries returns a copy of the rows.
func (s *Selection) Entries() []Entry { return append([]Entry(nil), s.entries...) }

// OptionalSlots returns the row indexes open to optional subjects.
func (s *Selection) OptionalSlots() []int {
	var out []int
	for i, e := range s.entries {
		if !e.Mandatory {
			out = append(out, i)
		}
	}
	return out
}

// Choose puts an optional subject in slot. An empty code clears the slot.
// A subject already chosen in another slot is rejected.
func (s *Selection) Choose(slot int, code string) error {
	if slot < 0 || slot >= len(s.entries) || s.entries[slot].Mandatory {
		return fmt.Errorf("%w: %d", ErrSlot, slot)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		s.entries[slot] = Entry{}
		return nil
	}
	sub, ok := s.cat.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %s", grading.ErrUnknownSubject, code)
	}
	if sub.Mandatory {
		return fmt.Errorf("%w: %s", ErrNotOptional, sub.Name)
	}
	for i, e := range s.entries {
		if i != slot && e.Code == code {
			return fmt.Errorf("%w: %s already selected", grading.ErrDuplicateSubject, sub.Name)
		}
	}
	s.entries[slot] = Entry{Code: sub.Code, Name: sub.Name}
	return nil
}

// Available lists the optional subjects slot may take: everything not
// chosen in another slot, in catalog order.
func (s *Selection) Available(slot int) []catalog.Subject {
	taken := map[string]bool{}
	for i, e := range s.entries {
		if i != slot && e.Code != "" {
			taken[e.Code] = true
		}
	}
	var out []catalog.Subject
	for _, o := range s.cat.Options() {
		if !taken[o.Code] {
			out = append(out, o)
		}
	}
	return out
}

// Complete reports whether every optional slot has a subject.
func (s *Selection) Complete() bool {
	for _, e := range s.entries {
		if e.Code == "" {
			return false
		}
	}
	return true
}
