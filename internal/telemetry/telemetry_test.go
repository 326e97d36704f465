package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	recorder := &Recorder{}
	scoped := NewScopedAPI("results", NewScopedAPI("extract", recorder))

	scoped.ReportBroken("fetch", "err")
	scoped.ReportWarning("table-mismatch", 3, 4)
	scoped.ReportCount("saved", 2)

	broken := recorder.Reports("broken", "")
	require.Len(t, broken, 1)
	require.Equal(t, "extract:results:fetch", broken[0].Id)
	require.Equal(t, []any{"err"}, broken[0].Params)

	require.Len(t, recorder.Reports("warning", "extract:results:table-mismatch"), 1)

	counts := recorder.Reports("count", "extract:results:saved")
	require.Len(t, counts, 1)
	require.Equal(t, int64(2), counts[0].Count)
}

func TestScopedDebugPrefixesMessage(t *testing.T) {
	recorder := &Recorder{}
	NewScopedAPI("results", recorder).ReportDebug("field anchor not found", "23106107001")

	debug := recorder.Reports("debug", "")
	require.Len(t, debug, 1)
	require.Equal(t, "results: field anchor not found", debug[0].Id)
	require.Equal(t, []any{"23106107001"}, debug[0].Params)
}
