package catalog

// KCSE subject codes.
const (
	CodeEnglish     = "101"
	CodeKiswahili   = "102"
	CodeMathematics = "121"
)

// KCSE is the scheme key of the built-in table.
const KCSE = "kcse"

func init() {
	RegisterScheme(KCSE, kcse)
}

var kcse = MustNew(
	mandatory(CodeEnglish, "ENGLISH", 80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30),
	mandatory(CodeKiswahili, "KISWAHILI", 78, 73, 68, 63, 58, 53, 48, 43, 38, 33, 28),
	mandatory(CodeMathematics, "MATHEMATICS", 70, 65, 60, 55, 49, 43, 37, 31, 25, 19, 12),
	optional("231", "BIOLOGY", 80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30),
	optional("232", "PHYSICS", 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10),
	optional("233", "CHEMISTRY", 65, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15),
	optional("311", "HISTORY", 80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30),
	// D is 21-24 so that 25 belongs to D+ alone.
	optional("312", "GEOGRAPHY", 66, 61, 56, 51, 46, 41, 36, 31, 25, 21, 16),
	optional("313", "CRE", 90, 85, 80, 75, 70, 65, 60, 55, 50, 45, 40),
	optional("314", "IRE", 90, 85, 80, 75, 70, 65, 60, 55, 50, 45, 40),
	optional("443", "AGRICULTURE", 88, 83, 78, 73, 68, 63, 58, 53, 48, 43, 38),
	optional("565", "BUSINESS STUDIES", 80, 75, 70, 65, 60, 55, 50, 45, 40, 35, 30),
	optional("503", "ARABIC", 88, 83, 78, 73, 68, 63, 58, 53, 48, 43, 38),
	optional("451", "COMPUTER STUDIES", 88, 83, 78, 73, 68, 63, 58, 53, 48, 43, 38),
)

// Default returns the built-in KCSE catalog.
func Default() *Catalog { return kcse }

func mandatory(code, name string, floors ...float64) Subject {
	return Subject{Code: code, Name: name, Mandatory: true, Bands: Scale(floors...)}
}

func optional(code, name string, floors ...float64) Subject {
	return Subject{Code: code, Name: name, Bands: Scale(floors...)}
}

// Scale builds a descending A..E band table from the lower bound of each
// grade A through D-. Each band ends one mark below the next higher floor;
// A runs to 100 and E starts at 0. Extra floors are ignored.
func Scale(floors ...float64) []Band {
	bands := make([]Band, 0, len(Grades))
	upper := float64(MaxMark)
	for i, g := range Grades {
		lower := float64(MinMark)
		if i < len(Grades)-1 && i < len(floors) {
			lower = floors[i]
		}
		bands = append(bands, Band{Min: lower, Max: upper, Grade: g, Points: g.Points()})
		if lower == MinMark {
			break
		}
		upper = lower - 1
	}
	return bands
}
