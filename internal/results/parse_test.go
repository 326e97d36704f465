package results

import (
	"strings"
	"testing"

	"beup-results/internal/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFullPage(t *testing.T) {
	parser := NewParser(DefaultAnchors(), &telemetry.Recorder{})

	record, err := parser.Parse(parseDocument(t, resultPage))
	require.NoError(t, err)

	if diff := cmp.Diff(expectedRecord(), record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingValidationAnchor(t *testing.T) {
	parser := NewParser(DefaultAnchors(), &telemetry.Recorder{})

	_, err := parser.Parse(parseDocument(t, notFoundPage))
	require.ErrorIs(t, err, ErrNoResult)

	// an otherwise complete page is rejected as well
	page := strings.Replace(resultPage, "ContentPlaceHolder1_DataList1_RegistrationNoLabel_0", "RenamedLabel", 1)
	_, err = parser.Parse(parseDocument(t, page))
	require.ErrorIs(t, err, ErrNoResult)

	page = strings.Replace(resultPage, ">23106107001<", "><", 1)
	_, err = parser.Parse(parseDocument(t, page))
	require.ErrorIs(t, err, ErrNoResult)
}

func TestParseMissingScalarAnchors(t *testing.T) {
	parser := NewParser(DefaultAnchors(), &telemetry.Recorder{})

	cases := []struct {
		anchor string
		clear  func(r *Record)
	}{
		{
			anchor: "ContentPlaceHolder1_DataList1_FatherNameLabel_0",
			clear:  func(r *Record) { r.FatherName = nil },
		},
		{
			anchor: "ContentPlaceHolder1_DataList1_StudentNameLabel_0",
			clear:  func(r *Record) { r.StudentName = nil },
		},
		{
			anchor: "ContentPlaceHolder1_DataList5_GROSSTHEORYTOTALLabel_0",
			clear:  func(r *Record) { r.Sgpa = nil },
		},
		{
			anchor: "ContentPlaceHolder1_DataList3_remarkLabel_0",
			clear:  func(r *Record) { r.Remarks = nil },
		},
	}

	for _, test := range cases {
		page := strings.Replace(resultPage, `"`+test.anchor+`"`, `"removed"`, 1)
		record, err := parser.Parse(parseDocument(t, page))
		require.NoError(t, err, test.anchor)

		expected := expectedRecord()
		test.clear(&expected)
		if diff := cmp.Diff(expected, record); diff != "" {
			t.Fatalf("%s: record mismatch (-want +got):\n%s", test.anchor, diff)
		}
	}
}

func TestParseMissingRegions(t *testing.T) {
	parser := NewParser(DefaultAnchors(), &telemetry.Recorder{})

	page := resultPage
	for _, id := range []string{
		"ContentPlaceHolder1_DataList2",
		"ContentPlaceHolder1_GridView1",
		"ContentPlaceHolder1_GridView2",
		"ContentPlaceHolder1_GridView3",
		"ContentPlaceHolder1_DataList3",
		"ContentPlaceHolder1_BulletedList1",
	} {
		page = strings.Replace(page, `id="`+id+`"`, `id="gone"`, 1)
	}

	record, err := parser.Parse(parseDocument(t, page))
	require.NoError(t, err)

	require.Equal(t, "23106107001", record.RegistrationNo)
	require.Equal(t, "ANANYA KUMARI", *record.StudentName)
	require.Nil(t, record.Semester)
	require.Nil(t, record.ExamMonthYear)
	require.Nil(t, record.PublishDate)
	require.Nil(t, record.Remarks)
	require.NotNil(t, record.TheoryMarks)
	require.Empty(t, record.TheoryMarks)
	require.NotNil(t, record.PracticalMarks)
	require.Empty(t, record.PracticalMarks)
	require.NotNil(t, record.SemWiseResults)
	require.Empty(t, record.SemWiseResults)
	require.NotNil(t, record.Notes)
	require.Empty(t, record.Notes)
}

func TestParseHeaderOnlyTable(t *testing.T) {
	parser := NewParser(DefaultAnchors(), &telemetry.Recorder{})

	page := strings.Replace(
		resultPage,
		`<tr><td>100103P</td><td>Physics Lab</td><td>28</td><td>18</td><td>46</td><td>A+</td><td>1</td></tr>`,
		"",
		1,
	)
	record, err := parser.Parse(parseDocument(t, page))
	require.NoError(t, err)
	require.NotNil(t, record.PracticalMarks)
	require.Empty(t, record.PracticalMarks)
}

func TestParseReportsTableMismatch(t *testing.T) {
	recorder := &telemetry.Recorder{}
	parser := NewParser(DefaultAnchors(), recorder)

	page := strings.Replace(
		resultPage,
		`<td>100102</td><td>Physics</td><td>48</td>`,
		`<td>100102</td><td>Physics</td>`,
		1,
	)
	record, err := parser.Parse(parseDocument(t, page))
	require.NoError(t, err)

	require.Len(t, record.TheoryMarks, 2)
	require.Equal(t, row(marksHeader[:6], "100102", "Physics", "24", "72", "B", "3"), record.TheoryMarks[1])

	warnings := recorder.Reports("warning", report_parse_table_mismatch)
	require.Len(t, warnings, 1)
	require.Equal(t, []any{"23106107001", "theory_marks", 1}, warnings[0].Params)
}

func TestParseCustomAnchors(t *testing.T) {
	anchors := DefaultAnchors()
	anchors.StudentName = "NewStudentLabel"
	parser := NewParser(anchors, &telemetry.Recorder{})

	page := strings.Replace(resultPage, "ContentPlaceHolder1_DataList1_StudentNameLabel_0", "NewStudentLabel", 1)
	record, err := parser.Parse(parseDocument(t, page))
	require.NoError(t, err)
	require.Equal(t, "ANANYA KUMARI", *record.StudentName)
}
