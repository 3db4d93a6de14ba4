package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	meanStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.DoubleBorder())
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const nameWidth = 22

func renderText(s Scoreboard) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("KCSE SCOREBOARD") + "\n")
	b.WriteString(faintStyle.Render("Kenya Certificate of Secondary Education - Official Grading") + "\n\n")

	info := [][2]string{
		{"Student Name", s.Student.Name},
		{"Index Number", s.Student.IndexNumber},
		{"Grading Date", s.DateLine()},
		{"Subjects Graded", fmt.Sprintf("%d (Best 7)", len(s.Outcome.BestSeven))},
	}
	for _, kv := range info {
		fmt.Fprintf(&b, "%-*s %s\n", nameWidth-6, kv[0]+":", kv[1])
	}
	b.WriteString("\n")

	rows := []string{titleStyle.Render(fmt.Sprintf("%-*s %s", nameWidth, "SUBJECT", "GRADE"))}
	for _, r := range s.Outcome.BestSeven {
		rows = append(rows, fmt.Sprintf("%-*s %s", nameWidth, r.Name, r.Grade))
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")) + "\n")
	b.WriteString(meanStyle.Render("MEAN GRADE  "+string(s.Outcome.MeanGrade)) + "\n")
	b.WriteString(faintStyle.Render("Ref "+s.Ref) + "\n")
	return b.String()
}
