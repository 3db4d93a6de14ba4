package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBandsPartitionMarks(t *testing.T) {
	for _, s := range Default().Subjects() {
		for m := MinMark; m <= MaxMark; m++ {
			hits := 0
			for _, b := range s.Bands {
				if b.Contains(float64(m)) {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("%s (%s): mark %d matched %d bands", s.Name, s.Code, m, hits)
			}
		}
	}
}

func TestDefaultPointsMonotonic(t *testing.T) {
	for _, s := range Default().Subjects() {
		prev := 0
		for m := MinMark; m <= MaxMark; m++ {
			b, ok := s.Band(float64(m))
			require.True(t, ok, "%s mark %d", s.Code, m)
			if b.Points < prev {
				t.Fatalf("%s: points drop from %d to %d at mark %d", s.Code, prev, b.Points, m)
			}
			prev = b.Points
		}
		assert.Equal(t, MaxPoints, prev, "%s: 100 should be an A", s.Code)
	}
}

func TestDefaultContents(t *testing.T) {
	c := Default()
	assert.Equal(t, 14, c.Len())

	var mand []string
	for _, s := range c.Mandatory() {
		mand = append(mand, s.Code)
	}
	assert.Equal(t, []string{CodeEnglish, CodeKiswahili, CodeMathematics}, mand)
	assert.Len(t, c.Options(), 11)

	aFloor := map[string]float64{}
	for _, s := range c.Subjects() {
		aFloor[s.Code] = s.Bands[0].Min
	}
	assert.Equal(t, 60.0, aFloor["232"], "physics")
	assert.Equal(t, 90.0, aFloor["313"], "CRE")
	assert.Equal(t, 70.0, aFloor[CodeMathematics])
}

func TestBandLookup(t *testing.T) {
	tests := []struct {
		code  string
		mark  float64
		grade Grade
		ok    bool
	}{
		{CodeMathematics, 70, GradeA, true},
		{CodeMathematics, 69, GradeAMinus, true},
		{CodeEnglish, 74, GradeBPlus, true},
		{CodeEnglish, 0, GradeE, true},
		{CodeEnglish, 100, GradeA, true},
		{"312", 25, GradeDPlus, true},
		{"312", 24, GradeD, true},
		{CodeEnglish, -1, "", false},
		{CodeEnglish, 101, "", false},
		{CodeEnglish, 79.5, "", false},
		{CodeEnglish, math.NaN(), "", false},
	}
	for _, tt := range tests {
		s, ok := Default().Lookup(tt.code)
		require.True(t, ok)
		b, ok := s.Band(tt.mark)
		if ok != tt.ok || b.Grade != tt.grade {
			t.Errorf("%s mark %v: got (%q,%v) want (%q,%v)", tt.code, tt.mark, b.Grade, ok, tt.grade, tt.ok)
		}
	}
}

func TestLookupUnknownAndImmutable(t *testing.T) {
	c := Default()
	_, ok := c.Lookup("999")
	assert.False(t, ok)

	s, ok := c.Lookup(" 101 ")
	require.True(t, ok)
	s.Bands[0].Grade = GradeE
	again, _ := c.Lookup(CodeEnglish)
	assert.Equal(t, GradeA, again.Bands[0].Grade)

	var nilCat *Catalog
	_, ok = nilCat.Lookup(CodeEnglish)
	assert.False(t, ok)
	assert.Empty(t, nilCat.Codes())
}

func TestNewRejectsBrokenScales(t *testing.T) {
	good := Scale(80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30)

	overlap := Scale(66, 61, 56, 51, 46, 41, 36, 31, 25, 21, 16)
	overlap[9].Max = 25

	gap := Scale(80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30)
	gap[0].Min = 81

	inverted := append([]Band(nil), good...)
	inverted[0], inverted[1] = Band{Min: 80, Max: 100, Grade: GradeAMinus, Points: 11},
		Band{Min: 75, Max: 79, Grade: GradeA, Points: 12}

	wrongPoints := append([]Band(nil), good...)
	wrongPoints[0].Points = 7

	tests := map[string]Subject{
		"no code":      {Name: "X", Bands: good},
		"no name":      {Code: "1", Bands: good},
		"no bands":     {Code: "1", Name: "X"},
		"overlap":      {Code: "1", Name: "X", Bands: overlap},
		"gap":          {Code: "1", Name: "X", Bands: gap},
		"inverted":     {Code: "1", Name: "X", Bands: inverted},
		"wrong points": {Code: "1", Name: "X", Bands: wrongPoints},
		"bad grade":    {Code: "1", Name: "X", Bands: []Band{{Min: 0, Max: 100, Grade: "F", Points: 1}}},
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(s)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("want ErrInvalidCatalog, got %v", err)
			}
		})
	}

	_, err := New(Subject{Code: "1", Name: "X", Bands: good}, Subject{Code: "1", Name: "Y", Bands: good})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestGradeForPoints(t *testing.T) {
	want := map[int]Grade{13: GradeA, 12: GradeA, 11: GradeAMinus, 10: GradeBPlus, 9: GradeB,
		8: GradeBMinus, 7: GradeCPlus, 6: GradeC, 5: GradeCMinus, 4: GradeDPlus, 3: GradeD,
		2: GradeDMinus, 1: GradeE, 0: GradeE}
	for p, g := range want {
		assert.Equal(t, g, GradeForPoints(p), "points %d", p)
	}
	for _, g := range Grades {
		assert.Equal(t, g, GradeForPoints(g.Points()))
	}
}

func TestSchemeRegistry(t *testing.T) {
	c, ok := Scheme("KCSE")
	require.True(t, ok)
	assert.Same(t, Default(), c)
	_, ok = Scheme("uace")
	assert.False(t, ok)
}
