package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/kcse-scoreboard/internal/grading"
	"github.com/mind-engage/kcse-scoreboard/internal/session"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat accepts text, html or json (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, html or json)", s)
}

// Scoreboard is a printable result for one student.
type Scoreboard struct {
	Ref     string          `json:"reference"`
	Student session.Student `json:"student"`
	Date    time.Time       `json:"date"`
	Outcome grading.Outcome `json:"outcome"`
}

// New stamps a scoreboard with a fresh reference number.
func New(st session.Student, out grading.Outcome, date time.Time) Scoreboard {
	return Scoreboard{Ref: uuid.NewString(), Student: st, Date: date, Outcome: out}
}

// DateLine formats the grading date the way it is printed.
func (s Scoreboard) DateLine() string { return s.Date.Format("January 2, 2006") }

// Render writes the scoreboard in the given format. A scoreboard that does
// not hold exactly seven subjects is refused.
func Render(w io.Writer, f Format, s Scoreboard) error {
	if n := len(s.Outcome.BestSeven); n != grading.BestOf {
		return fmt.Errorf("refusing to render scoreboard with %d subjects", n)
	}
	switch f {
	case FormatText, "":
		_, err := io.WriteString(w, renderText(s))
		return err
	case FormatHTML:
		return renderHTML(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("unknown report format %q", f)
}
