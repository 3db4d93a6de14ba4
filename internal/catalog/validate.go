package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCatalog is returned when a subject or its bands break the
// catalog invariants.
var ErrInvalidCatalog = errors.New("invalid catalog")

const (
	MinMark = 0
	MaxMark = 100
)

// Validate checks that s has an identity and that its bands cover every
// whole mark in [0,100] exactly once with points rising alongside marks.
func Validate(s Subject) error {
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("%w: subject code is required", ErrInvalidCatalog)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: subject %s: name is required", ErrInvalidCatalog, s.Code)
	}
	if len(s.Bands) == 0 {
		return fmt.Errorf("%w: subject %s: no grade bands", ErrInvalidCatalog, s.Code)
	}
	for _, b := range s.Bands {
		if !b.Grade.Valid() {
			return fmt.Errorf("%w: subject %s: unknown grade %q", ErrInvalidCatalog, s.Code, b.Grade)
		}
		if b.Points != b.Grade.Points() {
			return fmt.Errorf("%w: subject %s: grade %s carries %d points, want %d",
				ErrInvalidCatalog, s.Code, b.Grade, b.Points, b.Grade.Points())
		}
		if b.Min > b.Max {
			return fmt.Errorf("%w: subject %s: band %s has min %v > max %v",
				ErrInvalidCatalog, s.Code, b.Grade, b.Min, b.Max)
		}
	}

	for m := MinMark; m <= MaxMark; m++ {
		hits := 0
		for _, b := range s.Bands {
			if b.Contains(float64(m)) {
				hits++
			}
		}
		switch {
		case hits == 0:
			return fmt.Errorf("%w: subject %s: mark %d not covered", ErrInvalidCatalog, s.Code, m)
		case hits > 1:
			return fmt.Errorf("%w: subject %s: mark %d covered by %d bands", ErrInvalidCatalog, s.Code, m, hits)
		}
	}

	asc := append([]Band(nil), s.Bands...)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Min < asc[j].Min })
	for i := 1; i < len(asc); i++ {
		if asc[i].Points < asc[i-1].Points {
			return fmt.Errorf("%w: subject %s: band %s (%v-%v) scores below lower band %s",
				ErrInvalidCatalog, s.Code, asc[i].Grade, asc[i].Min, asc[i].Max, asc[i-1].Grade)
		}
	}
	return nil
}
