package telemetry

import "sync"

// Report is a single call made against a Recorder.
type Report struct {
	Kind   string
	Id     string
	Params []any
	Count  int64
}

// Recorder is an API that keeps every report in memory so tests can assert
// on what a component reported.
type Recorder struct {
	mutex   sync.Mutex
	reports []Report
}

func (r *Recorder) record(report Report) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report)
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.record(Report{Kind: "broken", Id: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.record(Report{Kind: "warning", Id: id, Params: params})
}

func (r *Recorder) ReportDebug(message string, params ...any) {
	r.record(Report{Kind: "debug", Id: message, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.record(Report{Kind: "count", Id: id, Count: count})
}

// Reports returns the reports of a given kind with the given id, pass an
// empty id to match every id.
func (r *Recorder) Reports(kind, id string) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Kind != kind {
			continue
		}
		if id != "" && report.Id != id {
			continue
		}
		out = append(out, report)
	}
	return out
}
