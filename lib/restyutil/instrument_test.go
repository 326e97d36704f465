package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput map[string]string

func (m memoryOutput) Write(id string, contents string) {
	m[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	out := memoryOutput{}
	client := resty.New()
	client.SetHeader("User-Agent", "test-agent")
	InstrumentClient(client, out)

	_, err := client.R().Get(server.URL + "/page?RegNo=1")
	require.NoError(t, err)

	require.Len(t, out, 1)
	message := out["0001.txt"]
	require.Contains(t, message, "GET "+server.URL+"/page?RegNo=1")
	require.Contains(t, message, "User-Agent: test-agent")
	require.Contains(t, message, "200")
	require.Contains(t, message, "<html>ok</html>")
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	out.Write("0001.txt", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "0001.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}
