package batch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"beup-results/internal/chrono"
	"beup-results/internal/results"
	"beup-results/internal/store"
	"beup-results/internal/telemetry"
	"beup-results/lib/configutil/dbconfig"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func marksRow(values ...string) results.Row {
	row, _ := results.ZipRow(
		[]string{"Subject Code", "Subject Name", "ESE", "IA", "Total", "Grade", "Credit"},
		values,
	)
	return row
}

func TestScrapeEndToEnd(t *testing.T) {
	page, err := os.ReadFile("../results/testdata/result.html")
	require.NoError(t, err)
	notFound, err := os.ReadFile("../results/testdata/not_found.html")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("RegNo") {
		case "23106107001":
			w.Write(page)
		case "23106107003":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write(notFound)
		}
	}))
	defer server.Close()

	recorder := &telemetry.Recorder{}
	extractor, err := results.NewExtractor(results.ExtractorOptions{
		UrlTemplate: server.URL + "/Results.aspx?RegNo={reg_no}",
		Timeout:     time.Second,
	}, recorder)
	require.NoError(t, err)

	db, err := dbconfig.Struct{File: ":memory:"}.OpenDB()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	s := store.NewStore(db)
	require.NoError(t, s.Reset(ctx))

	regNos, err := Range{Prefix: "23106107", Width: 3, From: 1, To: 3}.RegistrationNumbers()
	require.NoError(t, err)

	runner := NewRunner(extractor, s, &chrono.FakeTime{}, recorder, time.Second)
	summary := runner.Run(ctx, regNos)
	require.Equal(t, Summary{Processed: 3, Saved: 1, Absent: 1, Failed: 1}, summary)

	got, err := s.Get(ctx, "23106107001")
	require.NoError(t, err)

	expected := store.Result{
		RegistrationNo: "23106107001",
		StudentName:    ptr("ANANYA KUMARI"),
		FatherName:     ptr("RAJESH KUMAR"),
		MotherName:     ptr("SUNITA DEVI"),
		CollegeName:    ptr("GOVERNMENT ENGINEERING COLLEGE, PATNA"),
		CourseName:     ptr("INFORMATION TECHNOLOGY"),
		Semester:       ptr("I"),
		ExamMonthYear:  ptr("June 2023"),
		Sgpa:           ptr(8.52),
		PublishDate:    ptr("14-11-2023"),
		Remarks:        ptr("PASS"),
		TheoryMarks: []results.Row{
			marksRow("100101", "Mathematics-I", "52", "26", "78", "A", "4"),
			marksRow("100102", "Physics", "48", "24", "72", "B", "3"),
		},
		PracticalMarks: []results.Row{
			marksRow("100103P", "Physics Lab", "28", "18", "46", "A+", "1"),
		},
		SemWiseResults: results.Row{
			{Label: "I", Value: "8.52"},
			{Label: "II", Value: "NA"},
			{Label: "III", Value: "NA"},
			{Label: "Cur. CGPA", Value: "8.52"},
		},
		Notes: []string{
			"The result is provisional.",
			"Errors, if any, should be reported within 15 days.",
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("stored result mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Get(ctx, "23106107002")
	require.ErrorIs(t, err, store.ErrNotFound)

	// running again over the same store replaces rows instead of conflicting
	summary = runner.Run(ctx, regNos[:1])
	require.Equal(t, Summary{Processed: 1, Saved: 1}, summary)
	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
