package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const sheet = `
student:
  name: Amina Wanjiru
  index_number: "20412001001"
marks:
  - {code: "101", mark: "80"}
  - {code: "102", mark: "78"}
  - {code: "121", mark: "70"}
  - {code: "231", mark: "65"}
  - {code: "311", mark: "50"}
  - {code: "565", mark: "40"}
  - {code: "232", mark: "55"}
`

func writeSheet(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSubjectsCmd(t *testing.T) {
	out, _, err := run(t, "subjects")
	require.NoError(t, err)
	assert.Contains(t, out, "MATHEMATICS")
	assert.Equal(t, 15, strings.Count(out, "\n"))

	out, _, err = run(t, "subjects", "--optional")
	require.NoError(t, err)
	assert.NotContains(t, out, "ENGLISH")
	assert.Contains(t, out, "COMPUTER STUDIES")
}

func TestScaleCmd(t *testing.T) {
	out, _, err := run(t, "scale", "312")
	require.NoError(t, err)
	assert.Contains(t, out, "GEOGRAPHY")
	assert.Contains(t, out, "21-24")

	_, _, err = run(t, "scale", "999")
	assert.Error(t, err)
}

func TestGradeCmd(t *testing.T) {
	out, _, err := run(t, "grade", "121", "70")
	require.NoError(t, err)
	assert.Equal(t, "MATHEMATICS 70: A (12 points)\n", out)

	out, _, err = run(t, "grade", "101", "74")
	require.NoError(t, err)
	assert.Contains(t, out, "B+ (10 points)")

	_, _, err = run(t, "grade", "101", "140")
	assert.Error(t, err)
}

func TestComputeCmd(t *testing.T) {
	path := writeSheet(t, sheet)
	out, _, err := run(t, "compute", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Amina Wanjiru")
	assert.Contains(t, out, "MEAN GRADE  B")

	htmlPath := filepath.Join(t.TempDir(), "board.html")
	_, _, err = run(t, "compute", "-f", path, "--format", "html", "-o", htmlPath)
	require.NoError(t, err)
	body, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<div class="mean-grade-value">B</div>`)
}

func TestComputeCmdReportsProblems(t *testing.T) {
	path := writeSheet(t, strings.Replace(sheet, `mark: "70"`, `mark: "seventy"`, 1))
	out, errOut, err := run(t, "compute", "-f", path)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "121: Please enter a valid number")
}

func TestCatalogSeedAndSQLSource(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "scales.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", dsn)

	out, _, err := run(t, "catalog", "seed")
	require.NoError(t, err)
	assert.Equal(t, "seeded 14 subjects for kcse\n", out)

	out, _, err = run(t, "catalog", "check")
	require.NoError(t, err)
	assert.Equal(t, "kcse: 14 subjects ok\n", out)

	out, _, err = run(t, "--catalog", "sql", "grade", "232", "60")
	require.NoError(t, err)
	assert.Equal(t, "PHYSICS 60: A (12 points)\n", out)
}
