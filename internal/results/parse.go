package results

import (
	"errors"

	"beup-results/internal/telemetry"
	"beup-results/lib/htmlutil"
	"beup-results/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	report_parse_table_mismatch = "parse.table-mismatch"
)

// ErrNoResult is returned when a page does not contain the registration
// number anchor, the portal serves these with a 200 for unknown numbers.
var ErrNoResult = errors.New("page does not contain a result")

// Parser turns a result page into a Record.
type Parser struct {
	anchors Anchors
	tel     telemetry.API
}

func NewParser(anchors Anchors, tel telemetry.API) Parser {
	return Parser{anchors: anchors, tel: tel}
}

func (p Parser) Parse(doc *goquery.Document) (Record, error) {
	regNoSpan := doc.Find(byId("span", p.anchors.RegistrationNo)).First()
	if regNoSpan.Length() == 0 {
		return Record{}, ErrNoResult
	}
	regNo := htmlutil.NodeText(regNoSpan.Nodes[0])
	if regNo == "" {
		return Record{}, ErrNoResult
	}

	record := newRecord(regNo)

	for _, field := range scalarFields {
		sel := doc.Find(byId("span", field.anchor(p.anchors))).First()
		if sel.Length() == 0 {
			p.tel.ReportDebug("field anchor not found", regNo, field.name)
			continue
		}
		text := htmlutil.NodeText(sel.Nodes[0])
		*field.dest(&record) = &text
	}

	examTable := doc.Find(byId("table", p.anchors.ExamDetails)).First()
	if examTable.Length() > 0 {
		parseLabelCells(examTable.Find("td"), examDetailFields, &record)
	}

	record.TheoryMarks = p.parseMarks(regNo, "theory_marks", doc.Find(byId("table", p.anchors.TheoryMarks)).First())
	record.PracticalMarks = p.parseMarks(regNo, "practical_marks", doc.Find(byId("table", p.anchors.PracticalMarks)).First())
	record.SemWiseResults = p.parseSemWise(regNo, doc.Find(byId("table", p.anchors.SemWiseResults)).First())

	remarksTable := doc.Find(byId("table", p.anchors.RemarksBlock)).First()
	if remarksTable.Length() > 0 {
		remark := remarksTable.Find(byId("span", p.anchors.Remark)).First()
		if remark.Length() > 0 {
			text := htmlutil.NodeText(remark.Nodes[0])
			record.Remarks = &text
		}
		parseLabelCells(remarksTable.Find("td"), remarksBlockFields, &record)
	}

	notes := doc.Find(byId("ul", p.anchors.Notes)).First()
	if notes.Length() > 0 {
		record.Notes = htmlutil.Texts(notes.Find("li"))
	}

	return record, nil
}

// parseLabelCells assigns the value of every "Label: value" cell to the
// first field whose label it contains. later cells overwrite earlier ones.
func parseLabelCells(cells *goquery.Selection, fields []labelField, record *Record) {
	for _, text := range htmlutil.Texts(cells) {
		for _, field := range fields {
			if !textutil.MatchName(text, field.labels) {
				continue
			}
			value := textutil.SplitLabel(text)
			*field.dest(record) = &value
			break
		}
	}
}

func (p Parser) parseMarks(regNo, name string, table *goquery.Selection) []Row {
	if table.Length() == 0 {
		p.tel.ReportDebug("table anchor not found", regNo, name)
		return []Row{}
	}
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return []Row{}
	}

	labels := htmlutil.Texts(rows.First().Find("th, td"))
	var values [][]string
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		values = append(values, htmlutil.Texts(cells))
	})

	out, mismatched := ZipTable(labels, values)
	if mismatched > 0 {
		p.tel.ReportWarning(report_parse_table_mismatch, regNo, name, mismatched)
	}
	return out
}

func (p Parser) parseSemWise(regNo string, table *goquery.Selection) Row {
	if table.Length() == 0 {
		p.tel.ReportDebug("table anchor not found", regNo, "sem_wise_results")
		return Row{}
	}
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return Row{}
	}

	labels := htmlutil.Texts(rows.Eq(0).Find("th"))
	values := htmlutil.Texts(rows.Eq(1).Find("td"))
	out, matched := ZipRow(labels, values)
	if !matched {
		p.tel.ReportWarning(report_parse_table_mismatch, regNo, "sem_wise_results", 1)
	}
	return out
}
