package results

import "fmt"

// Anchors holds the element ids that the portal's result template uses for
// each field. they can be overridden from config when the markup changes.
type Anchors struct {
	RegistrationNo string `json:"registration_no"`
	StudentName    string `json:"student_name"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	CollegeName    string `json:"college_name"`
	CourseName     string `json:"course_name"`
	Sgpa           string `json:"sgpa"`

	ExamDetails    string `json:"exam_details"`
	TheoryMarks    string `json:"theory_marks"`
	PracticalMarks string `json:"practical_marks"`
	SemWiseResults string `json:"sem_wise_results"`
	RemarksBlock   string `json:"remarks_block"`
	Remark         string `json:"remark"`
	Notes          string `json:"notes"`
}

func DefaultAnchors() Anchors {
	return Anchors{
		RegistrationNo: "ContentPlaceHolder1_DataList1_RegistrationNoLabel_0",
		StudentName:    "ContentPlaceHolder1_DataList1_StudentNameLabel_0",
		FatherName:     "ContentPlaceHolder1_DataList1_FatherNameLabel_0",
		MotherName:     "ContentPlaceHolder1_DataList1_MotherNameLabel_0",
		CollegeName:    "ContentPlaceHolder1_DataList1_CollegeNameLabel_0",
		CourseName:     "ContentPlaceHolder1_DataList1_CourseLabel_0",
		Sgpa:           "ContentPlaceHolder1_DataList5_GROSSTHEORYTOTALLabel_0",

		ExamDetails:    "ContentPlaceHolder1_DataList2",
		TheoryMarks:    "ContentPlaceHolder1_GridView1",
		PracticalMarks: "ContentPlaceHolder1_GridView2",
		SemWiseResults: "ContentPlaceHolder1_GridView3",
		RemarksBlock:   "ContentPlaceHolder1_DataList3",
		Remark:         "ContentPlaceHolder1_DataList3_remarkLabel_0",
		Notes:          "ContentPlaceHolder1_BulletedList1",
	}
}

// byId builds a selector matching a `tag` element with the exact id.
func byId(tag, id string) string {
	return fmt.Sprintf(`%s[id=%q]`, tag, id)
}

type scalarField struct {
	name   string
	anchor func(a Anchors) string
	dest   func(r *Record) **string
}

// scalarFields binds every single-span field of a record to its anchor.
var scalarFields = []scalarField{
	{
		name:   "student_name",
		anchor: func(a Anchors) string { return a.StudentName },
		dest:   func(r *Record) **string { return &r.StudentName },
	},
	{
		name:   "father_name",
		anchor: func(a Anchors) string { return a.FatherName },
		dest:   func(r *Record) **string { return &r.FatherName },
	},
	{
		name:   "mother_name",
		anchor: func(a Anchors) string { return a.MotherName },
		dest:   func(r *Record) **string { return &r.MotherName },
	},
	{
		name:   "college_name",
		anchor: func(a Anchors) string { return a.CollegeName },
		dest:   func(r *Record) **string { return &r.CollegeName },
	},
	{
		name:   "course_name",
		anchor: func(a Anchors) string { return a.CourseName },
		dest:   func(r *Record) **string { return &r.CourseName },
	},
	{
		name:   "sgpa",
		anchor: func(a Anchors) string { return a.Sgpa },
		dest:   func(r *Record) **string { return &r.Sgpa },
	},
}

type labelField struct {
	labels []string
	dest   func(r *Record) **string
}

// examDetailFields are packed into "Label: value" cells of the exam details table.
var examDetailFields = []labelField{
	{
		labels: []string{"Semester"},
		dest:   func(r *Record) **string { return &r.Semester },
	},
	{
		labels: []string{"Examination(Month/Year)"},
		dest:   func(r *Record) **string { return &r.ExamMonthYear },
	},
}

var remarksBlockFields = []labelField{
	{
		labels: []string{"Publish Date"},
		dest:   func(r *Record) **string { return &r.PublishDate },
	},
}
