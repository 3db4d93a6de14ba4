package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/mind-engage/kcse-scoreboard/internal/catalog"
)

// gradeClass turns "B+" into "grade-B-plus" and "A-" into "grade-A-minus".
func gradeClass(g catalog.Grade) string {
	s := string(g)
	switch {
	case strings.HasSuffix(s, "+"):
		s = strings.TrimSuffix(s, "+") + "-plus"
	case strings.HasSuffix(s, "-"):
		s = strings.TrimSuffix(s, "-") + "-minus"
	}
	return "grade-" + s
}

var page = template.Must(template.New("scoreboard").
	Funcs(template.FuncMap{"gradeClass": gradeClass}).
	Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>KCSE Scoreboard - {{.Student.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.results-table { border-collapse: collapse; width: 100%; }
.results-table th, .results-table td { border: 1px solid #999; padding: .4em .8em; text-align: left; }
.mean-grade-value { font-size: 2em; font-weight: bold; }
@media print { .no-print { display: none; } }
</style>
</head>
<body>
<div class="scoreboard">
  <div class="scoreboard-header">
    <h3>KCSE SCOREBOARD</h3>
    <p class="scoreboard-subtitle">Kenya Certificate of Secondary Education - Official Grading</p>
  </div>
  <div class="student-info">
    <div class="student-info-item"><div class="student-info-label">Student Name</div><div class="student-info-value">{{.Student.Name}}</div></div>
    <div class="student-info-item"><div class="student-info-label">Index Number</div><div class="student-info-value">{{.Student.IndexNumber}}</div></div>
    <div class="student-info-item"><div class="student-info-label">Grading Date</div><div class="student-info-value">{{.DateLine}}</div></div>
    <div class="student-info-item"><div class="student-info-label">Subjects Graded</div><div class="student-info-value">{{len .Outcome.BestSeven}} (Best 7)</div></div>
  </div>
  <table class="results-table">
    <thead><tr><th>Subject</th><th>Grade</th></tr></thead>
    <tbody>
{{- range .Outcome.BestSeven}}
      <tr><td class="subject-name">{{.Name}}</td><td><span class="grade-badge {{gradeClass .Grade}}">{{.Grade}}</span></td></tr>
{{- end}}
    </tbody>
  </table>
  <div class="mean-grade-container">
    <div class="mean-grade-label">MEAN GRADE</div>
    <div class="mean-grade-value">{{.Outcome.MeanGrade}}</div>
  </div>
  <div class="grading-note">
    <p><strong>Note:</strong> This scoreboard is based on the best 7 subjects as per KCSE regulations. Mandatory subjects (English, Kiswahili, Mathematics) are included in the calculation.</p>
  </div>
  <p class="reference">Ref {{.Ref}}</p>
</div>
<button class="no-print" onclick="window.print()">Print Scoreboard</button>
</body>
</html>
`))

func renderHTML(w io.Writer, s Scoreboard) error {
	return page.Execute(w, s)
}
