package report

import (
	"fmt"
	"io"
	"strconv"

	"beup-results/internal/results"
	"beup-results/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const DefaultTitle = "Students in Information Technology Course (Sorted by CGPA)"

// missing is printed in place of absent values.
const missing = "-"

func orMissing(s *string) string {
	if s == nil {
		return missing
	}
	return *s
}

func formatGrade(grade *float64) string {
	if grade == nil {
		return missing
	}
	return strconv.FormatFloat(*grade, 'f', 2, 64)
}

// Render writes the ranking as a table, rows are numbered from 1 in the
// order they are given. the title goes on its own line above the table, it is
// usually wider than the columns and go-pretty would wrap it.
func Render(w io.Writer, title string, ranking []store.Ranked) {
	if title != "" {
		fmt.Fprintln(w, title)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Options.SeparateRows = true
	t.AppendHeader(table.Row{"Index", "Registration No", "Name", "CGPA"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, Align: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignCenter},
	})

	for i, r := range ranking {
		t.AppendRow(table.Row{
			i + 1,
			r.RegistrationNo,
			orMissing(r.StudentName),
			formatGrade(r.Sgpa),
		})
	}

	t.Render()
}

// RenderResult writes every field of a single stored result.
func RenderResult(w io.Writer, result store.Result) {
	details := table.NewWriter()
	details.SetOutputMirror(w)
	details.SetTitle(result.RegistrationNo)
	details.AppendRows([]table.Row{
		{"Student Name", orMissing(result.StudentName)},
		{"Father Name", orMissing(result.FatherName)},
		{"Mother Name", orMissing(result.MotherName)},
		{"College Name", orMissing(result.CollegeName)},
		{"Course Name", orMissing(result.CourseName)},
		{"Semester", orMissing(result.Semester)},
		{"Examination", orMissing(result.ExamMonthYear)},
		{"SGPA", formatGrade(result.Sgpa)},
		{"Publish Date", orMissing(result.PublishDate)},
		{"Remarks", orMissing(result.Remarks)},
	})
	details.SetStyle(table.StyleRounded)
	details.Render()

	renderRows(w, "Theory", result.TheoryMarks)
	renderRows(w, "Practical", result.PracticalMarks)
	if len(result.SemWiseResults) > 0 {
		renderRows(w, "Semester Wise Results", []results.Row{result.SemWiseResults})
	}

	if len(result.Notes) > 0 {
		notes := table.NewWriter()
		notes.SetOutputMirror(w)
		notes.SetTitle("Notes")
		for _, n := range result.Notes {
			notes.AppendRow(table.Row{n})
		}
		notes.SetStyle(table.StyleRounded)
		notes.Render()
	}
}

// renderRows renders a list of rows, the columns are the union of every
// label in the order they are first seen.
func renderRows(w io.Writer, title string, rows []results.Row) {
	if len(rows) == 0 {
		return
	}

	var columns []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, label := range row.Labels() {
			if seen[label] {
				continue
			}
			seen[label] = true
			columns = append(columns, label)
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, row := range rows {
		out := make(table.Row, len(columns))
		for i, c := range columns {
			value, ok := row.Get(c)
			if !ok {
				value = missing
			}
			out[i] = value
		}
		t.AppendRow(out)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
}
