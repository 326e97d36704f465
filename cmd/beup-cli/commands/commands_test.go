package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	_ "embed"
)

//go:embed testdata/result.html
var resultPage string

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	require.NoError(t, err, out.String())
	return out.String()
}

func TestScrapeThenReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		regNo := r.URL.Query().Get("RegNo")
		switch regNo {
		case "23106107001":
			w.Write([]byte(resultPage))
		case "23106107002":
			page := strings.ReplaceAll(resultPage, "23106107001", regNo)
			page = strings.Replace(page, "ANANYA KUMARI", "ROHIT RAJ", 1)
			page = strings.Replace(page, ">8.52<", ">9.10<", 1)
			w.Write([]byte(page))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.json5")
	dbFile := filepath.Join(dir, "results.db")
	err := os.WriteFile(configFile, []byte(fmt.Sprintf(`{
		url_template: "%s/Results.aspx?RegNo={reg_no}",
		delay_ms: 1,
		range: {prefix: "23106107", width: 3, from: 1, to: 3},
	}`, server.URL)), 0600)
	require.NoError(t, err)

	out := execute(t, "scrape", "--config", configFile, "--db", dbFile)
	require.Contains(t, out, "All records processed")

	out = execute(t, "report", "--config", configFile, "--db", dbFile)
	require.Less(t, strings.Index(out, "ROHIT RAJ"), strings.Index(out, "ANANYA KUMARI"))
	require.Contains(t, out, "9.10")
	require.Contains(t, out, "8.52")

	out = execute(t, "show", "23106107001", "--config", configFile, "--db", dbFile)
	require.Contains(t, out, "Mathematics-I")
	require.Contains(t, out, "June 2023")

	out = execute(t, "find", "rohit", "--config", configFile, "--db", dbFile)
	require.Contains(t, out, "23106107002")
	require.NotContains(t, out, "23106107001")
}
