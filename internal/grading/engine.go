package grading

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
)

// BestOf is the number of subjects that count towards the mean grade.
const BestOf = 7

// Mark is one raw subject mark supplied by the caller.
type Mark struct {
	Code string  `json:"code" yaml:"code"`
	Mark float64 `json:"mark" yaml:"mark"`
}

// Scored is a subject mark resolved to its grade and points.
type Scored struct {
	Code      string        `json:"code"`
	Name      string        `json:"name"`
	Mark      float64       `json:"mark"`
	Grade     catalog.Grade `json:"grade"`
	Points    int           `json:"points"`
	Mandatory bool          `json:"mandatory"`
}

// Outcome is the scoreboard for one student.
type Outcome struct {
	BestSeven   []Scored      `json:"best_seven"` // ordered by subject name
	TotalPoints int           `json:"total_points"`
	MeanPoints  float64       `json:"mean_points"`
	MeanGrade   catalog.Grade `json:"mean_grade"`
}

// Engine options

type Option func(*config)

type config struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func WithCatalog(c *catalog.Catalog) Option { return func(cfg *config) { cfg.catalog = c } }
func WithLogger(l *zap.Logger) Option       { return func(cfg *config) { cfg.log = l } }

// Engine grades marks against a catalog. It holds no per-student state and is
// safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
	log *zap.Logger
}

// NewEngine defaults to the built-in KCSE catalog and a no-op logger.
func NewEngine(opts ...Option) *Engine {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = catalog.Default()
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return &Engine{cat: cfg.catalog, log: cfg.log}
}

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// GradeFor returns the first band of the subject containing mark.
func (e *Engine) GradeFor(code string, mark float64) (catalog.Band, error) {
	s, ok := e.cat.Lookup(code)
	if !ok {
		return catalog.Band{}, fmt.Errorf("%w: %s", ErrUnknownSubject, code)
	}
	b, ok := s.Band(mark)
	if !ok {
		return catalog.Band{}, fmt.Errorf("%w: %s mark %v", ErrNoGrade, s.Name, mark)
	}
	return b, nil
}

// Score resolves one mark.
func (e *Engine) Score(m Mark) (Scored, error) {
	s, ok := e.cat.Lookup(m.Code)
	if !ok {
		return Scored{}, fmt.Errorf("%w: %s", ErrUnknownSubject, m.Code)
	}
	b, ok := s.Band(m.Mark)
	if !ok {
		return Scored{}, fmt.Errorf("%w: %s mark %v", ErrNoGrade, s.Name, m.Mark)
	}
	return Scored{
		Code:      s.Code,
		Name:      s.Name,
		Mark:      m.Mark,
		Grade:     b.Grade,
		Points:    b.Points,
		Mandatory: s.Mandatory,
	}, nil
}

// Compute grades every mark and builds the outcome. Duplicate or unknown
// codes are rejected; marks that fall in no band do not count as graded.
func (e *Engine) Compute(marks []Mark) (Outcome, error) {
	seen := make(map[string]bool, len(marks))
	scored := make([]Scored, 0, len(marks))
	for _, m := range marks {
		code := strings.TrimSpace(m.Code)
		if seen[code] {
			return Outcome{}, fmt.Errorf("%w: %s", ErrDuplicateSubject, code)
		}
		seen[code] = true

		r, err := e.Score(Mark{Code: code, Mark: m.Mark})
		switch {
		case err == nil:
			scored = append(scored, r)
		case errors.Is(err, ErrNoGrade):
			e.log.Debug("mark not graded", zap.String("code", code), zap.Float64("mark", m.Mark))
		default:
			return Outcome{}, err
		}
	}
	return e.ComputeScored(scored)
}

// ComputeScored selects the best seven from already graded results: every
// mandatory result plus the highest-pointed optional ones, ties kept in input
// order. The mean always divides by seven.
func (e *Engine) ComputeScored(scored []Scored) (Outcome, error) {
	present := make(map[string]bool, len(scored))
	for _, r := range scored {
		if present[r.Code] {
			return Outcome{}, fmt.Errorf("%w: %s", ErrDuplicateSubject, r.Code)
		}
		present[r.Code] = true
	}

	var missing MissingMandatoryError
	for _, s := range e.cat.Mandatory() {
		if !present[s.Code] {
			missing.Codes = append(missing.Codes, s.Code)
			missing.Names = append(missing.Names, s.Name)
		}
	}
	if len(missing.Codes) > 0 {
		return Outcome{}, &missing
	}
	if len(scored) < BestOf {
		return Outcome{}, &InsufficientSubjectsError{Have: len(scored), Need: BestOf}
	}

	var mandatory, optional []Scored
	for _, r := range scored {
		if r.Mandatory {
			mandatory = append(mandatory, r)
		} else {
			optional = append(optional, r)
		}
	}
	sort.SliceStable(optional, func(i, j int) bool { return optional[i].Points > optional[j].Points })

	slots := BestOf - len(mandatory)
	if slots < 0 {
		slots = 0
	}
	if slots > len(optional) {
		slots = len(optional)
	}

	best := make([]Scored, 0, len(mandatory)+slots)
	best = append(best, mandatory...)
	best = append(best, optional[:slots]...)
	sort.SliceStable(best, func(i, j int) bool { return best[i].Name < best[j].Name })

	total := 0
	for _, r := range best {
		total += r.Points
	}
	mean := float64(total) / BestOf
	out := Outcome{
		BestSeven:   best,
		TotalPoints: total,
		MeanPoints:  mean,
		MeanGrade:   PointsToGrade(mean),
	}
	e.log.Debug("outcome computed",
		zap.Int("graded", len(scored)),
		zap.Int("total_points", total),
		zap.String("mean_grade", string(out.MeanGrade)))
	return out, nil
}

// PointsToGrade rounds mean points half away from zero and maps them to a
// grade (12 A ... 2 D-, anything lower E).
func PointsToGrade(mean float64) catalog.Grade {
	if math.IsNaN(mean) {
		return catalog.GradeE
	}
	return catalog.GradeForPoints(int(math.Round(mean)))
}

// ValidateMark reports marks outside [0,100] or not a finite number.
func ValidateMark(mark float64) error {
	if math.IsNaN(mark) || math.IsInf(mark, 0) || mark < catalog.MinMark || mark > catalog.MaxMark {
		return fmt.Errorf("%w: %v", ErrMarkOutOfRange, mark)
	}
	return nil
}
