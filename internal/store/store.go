package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"beup-results/internal/results"
)

var ErrNotFound = errors.New("result not found")

// Store persists result records into a single flat table keyed by
// registration number.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Init creates the results table if it does not exist.
func (s Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// Reset drops the results table and creates it again.
func (s Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, dropSchema)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, Schema)
	if err != nil {
		return err
	}
	return tx.Commit()
}

const upsertResult = `insert into results (
    registration_no, student_name, father_name, mother_name,
    college_name, course_name, semester, exam_month_year, sgpa,
    publish_date, theory_marks, practical_marks, sem_wise_results,
    remarks, notes
) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
on conflict (registration_no) do update set
    student_name = excluded.student_name,
    father_name = excluded.father_name,
    mother_name = excluded.mother_name,
    college_name = excluded.college_name,
    course_name = excluded.course_name,
    semester = excluded.semester,
    exam_month_year = excluded.exam_month_year,
    sgpa = excluded.sgpa,
    publish_date = excluded.publish_date,
    theory_marks = excluded.theory_marks,
    practical_marks = excluded.practical_marks,
    sem_wise_results = excluded.sem_wise_results,
    remarks = excluded.remarks,
    notes = excluded.notes`

// Persist inserts the record or replaces the row that has the same
// registration number.
func (s Store) Persist(ctx context.Context, record results.Record) error {
	if record.RegistrationNo == "" {
		return fmt.Errorf("record does not have a registration number")
	}

	theoryMarks, err := encodeRows(record.TheoryMarks)
	if err != nil {
		return fmt.Errorf("encode theory marks: %w", err)
	}
	practicalMarks, err := encodeRows(record.PracticalMarks)
	if err != nil {
		return fmt.Errorf("encode practical marks: %w", err)
	}
	semWise, err := encodeMapping(record.SemWiseResults)
	if err != nil {
		return fmt.Errorf("encode semester wise results: %w", err)
	}
	notes, err := encodeNotes(record.Notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx, upsertResult,
		record.RegistrationNo,
		record.StudentName,
		record.FatherName,
		record.MotherName,
		record.CollegeName,
		record.CourseName,
		record.Semester,
		record.ExamMonthYear,
		ParseGrade(record.Sgpa),
		record.PublishDate,
		theoryMarks,
		practicalMarks,
		semWise,
		record.Remarks,
		notes,
	)
	if err != nil {
		return fmt.Errorf("persist %s: %w", record.RegistrationNo, err)
	}
	return nil
}

// Result is a row of the results table with its json columns decoded.
type Result struct {
	RegistrationNo string
	StudentName    *string
	FatherName     *string
	MotherName     *string
	CollegeName    *string
	CourseName     *string
	Semester       *string
	ExamMonthYear  *string
	Sgpa           *float64
	PublishDate    *string
	Remarks        *string

	TheoryMarks    []results.Row
	PracticalMarks []results.Row
	SemWiseResults results.Row
	Notes          []string
}

const selectResults = `select
    registration_no, student_name, father_name, mother_name,
    college_name, course_name, semester, exam_month_year, sgpa,
    publish_date, theory_marks, practical_marks, sem_wise_results,
    remarks, notes
from results`

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var out Result
	var theoryMarks, practicalMarks, semWise, notes *string
	err := row.Scan(
		&out.RegistrationNo,
		&out.StudentName,
		&out.FatherName,
		&out.MotherName,
		&out.CollegeName,
		&out.CourseName,
		&out.Semester,
		&out.ExamMonthYear,
		&out.Sgpa,
		&out.PublishDate,
		&theoryMarks,
		&practicalMarks,
		&semWise,
		&out.Remarks,
		&notes,
	)
	if err != nil {
		return Result{}, err
	}

	out.TheoryMarks = []results.Row{}
	out.PracticalMarks = []results.Row{}
	out.SemWiseResults = results.Row{}
	out.Notes = []string{}

	if err := decodeBlob(theoryMarks, &out.TheoryMarks); err != nil {
		return Result{}, fmt.Errorf("decode theory marks of %s: %w", out.RegistrationNo, err)
	}
	if err := decodeBlob(practicalMarks, &out.PracticalMarks); err != nil {
		return Result{}, fmt.Errorf("decode practical marks of %s: %w", out.RegistrationNo, err)
	}
	if err := decodeBlob(semWise, &out.SemWiseResults); err != nil {
		return Result{}, fmt.Errorf("decode semester wise results of %s: %w", out.RegistrationNo, err)
	}
	if err := decodeBlob(notes, &out.Notes); err != nil {
		return Result{}, fmt.Errorf("decode notes of %s: %w", out.RegistrationNo, err)
	}
	return out, nil
}

// Get reads back a single row by registration number.
func (s Store) Get(ctx context.Context, regNo string) (Result, error) {
	row := s.db.QueryRowContext(ctx, selectResults+" where registration_no = ?", regNo)
	out, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return out, err
}

// All reads every row ordered by registration number.
func (s Store) All(ctx context.Context) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, selectResults+" order by registration_no")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

// Ranked is a row of the grade ranking.
type Ranked struct {
	RegistrationNo string
	StudentName    *string
	Sgpa           *float64
}

// rows without a grade sort after every graded row, ties are broken by
// registration number so the order is stable.
const selectRanking = `select registration_no, student_name, sgpa
from results
order by sgpa desc nulls last, registration_no`

// Ranking returns every row ordered by grade, highest first.
func (s Store) Ranking(ctx context.Context) ([]Ranked, error) {
	rows, err := s.db.QueryContext(ctx, selectRanking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ranked
	for rows.Next() {
		var r Ranked
		err := rows.Scan(&r.RegistrationNo, &r.StudentName, &r.Sgpa)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
