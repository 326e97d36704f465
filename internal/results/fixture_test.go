package results

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	_ "embed"
)

//go:embed testdata/result.html
var resultPage string

//go:embed testdata/not_found.html
var notFoundPage string

func ptr(s string) *string {
	return &s
}

func parseDocument(t testing.TB, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

var (
	marksHeader   = []string{"Subject Code", "Subject Name", "ESE", "IA", "Total", "Grade", "Credit"}
	semWiseHeader = []string{"I", "II", "III", "Cur. CGPA"}
)

// row pairs labels and values, both must have the same length.
func row(labels []string, values ...string) Row {
	out, matched := ZipRow(labels, values)
	if !matched {
		panic("row: labels and values differ in length")
	}
	return out
}

// expectedRecord is what testdata/result.html should parse into.
func expectedRecord() Record {
	return Record{
		RegistrationNo: "23106107001",
		StudentName:    ptr("ANANYA KUMARI"),
		FatherName:     ptr("RAJESH KUMAR"),
		MotherName:     ptr("SUNITA DEVI"),
		CollegeName:    ptr("GOVERNMENT ENGINEERING COLLEGE, PATNA"),
		CourseName:     ptr("INFORMATION TECHNOLOGY"),
		Semester:       ptr("I"),
		ExamMonthYear:  ptr("June 2023"),
		Sgpa:           ptr("8.52"),
		PublishDate:    ptr("14-11-2023"),
		Remarks:        ptr("PASS"),
		TheoryMarks: []Row{
			row(marksHeader, "100101", "Mathematics-I", "52", "26", "78", "A", "4"),
			row(marksHeader, "100102", "Physics", "48", "24", "72", "B", "3"),
		},
		PracticalMarks: []Row{
			row(marksHeader, "100103P", "Physics Lab", "28", "18", "46", "A+", "1"),
		},
		SemWiseResults: row(semWiseHeader, "8.52", "NA", "NA", "8.52"),
		Notes: []string{
			"The result is provisional.",
			"Errors, if any, should be reported within 15 days.",
		},
	}
}
