package results

// Record is everything extracted from a single result page.
//
// scalar fields are nil when their anchor is missing from the page, nested
// collections are empty (never nil) when their region is missing.
type Record struct {
	RegistrationNo string

	StudentName *string
	FatherName  *string
	MotherName  *string
	CollegeName *string
	CourseName  *string

	Semester      *string
	ExamMonthYear *string
	// Sgpa is kept as the raw page text, it is converted to a number when stored.
	Sgpa        *string
	PublishDate *string
	Remarks     *string

	TheoryMarks    []Row
	PracticalMarks []Row
	SemWiseResults Row
	Notes          []string
}

func newRecord(regNo string) Record {
	return Record{
		RegistrationNo: regNo,
		TheoryMarks:    []Row{},
		PracticalMarks: []Row{},
		SemWiseResults: Row{},
		Notes:          []string{},
	}
}
