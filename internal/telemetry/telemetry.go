package telemetry

import (
	"fmt"
)

// API is what scraping components report through instead of logging
// directly, so tests can assert on exactly what a run reported.
type API interface {
	// ReportBroken reports a failure that needs attention, such as a page
	// that could not be fetched or a record that could not be saved.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something unexpected that did not stop the
	// record from being handled, such as a table row that does not match
	// its header.
	ReportWarning(id string, params ...any)

	// ReportDebug reports details that only matter when diagnosing a run.
	ReportDebug(message string, params ...any)

	// ReportCount reports a running total at the end of a run.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every report id with a namespace, scopes nest as
// "outer:inner:id".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s:%s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s:%s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(message string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, message), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s:%s", s.namespace, id), count)
}
