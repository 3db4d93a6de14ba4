package catalog

// Grade is a KCSE letter grade.
type Grade string

const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeE      Grade = "E"
)

// Grades lists every grade from highest to lowest.
var Grades = []Grade{
	GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus, GradeCPlus,
	GradeC, GradeCMinus, GradeDPlus, GradeD, GradeDMinus, GradeE,
}

const (
	MinPoints = 1
	MaxPoints = 12
)

// Points returns the point value of g, or 0 for an unknown grade.
func (g Grade) Points() int {
	for i, x := range Grades {
		if x == g {
			return MaxPoints - i
		}
	}
	return 0
}

func (g Grade) Valid() bool { return g.Points() > 0 }

func (g Grade) String() string { return string(g) }

// GradeForPoints maps whole points to a grade. Anything above 12 is an A,
// anything below 2 an E.
func GradeForPoints(p int) Grade {
	switch {
	case p >= MaxPoints:
		return GradeA
	case p < MinPoints+1:
		return GradeE
	}
	return Grades[MaxPoints-p]
}
