package report

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumstack/plum/pkg/transport"
	"github.com/plumstack/plum/pkg/types"
)

type recordedCall struct {
	method string
	path   string
	query  string
	body   []byte
}

func newRecorder() (*httptest.Server, func() []recordedCall) {
	var mu sync.Mutex
	var calls []recordedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, recordedCall{r.Method, r.URL.Path, r.URL.RawQuery, body})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	return srv, func() []recordedCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedCall(nil), calls...)
	}
}

func TestReportInstance(t *testing.T) {
	srv, calls := newRecorder()
	defer srv.Close()

	r := NewReporter(srv.URL, "nodeA", "127.0.0.1", transport.NewClient())
	r.ReportInstance(types.PhaseFailed, "i1", 3, false)

	got := calls()
	require.Len(t, got, 1)
	assert.Equal(t, "/v1/instances/status", got[0].path)

	var status types.InstanceStatus
	require.NoError(t, json.Unmarshal(got[0].body, &status))
	assert.Equal(t, "i1", status.InstanceID)
	assert.Equal(t, types.PhaseFailed, status.Phase)
	assert.Equal(t, 3, status.ExitCode)
	assert.False(t, status.Healthy)
	assert.NotZero(t, status.TsUnix)
}

func TestNodeHeartbeat(t *testing.T) {
	srv, calls := newRecorder()
	defer srv.Close()

	r := NewReporter(srv.URL, "nodeB", "10.0.0.5", transport.NewClient())
	r.NodeHeartbeat()

	got := calls()
	require.Len(t, got, 1)
	assert.Equal(t, "/v1/nodes/heartbeat", got[0].path)

	var hb types.NodeHeartbeat
	require.NoError(t, json.Unmarshal(got[0].body, &hb))
	assert.Equal(t, types.NodeHeartbeat{NodeID: "nodeB", IP: "10.0.0.5"}, hb)
}

func TestRegisterServices(t *testing.T) {
	srv, calls := newRecorder()
	defer srv.Close()

	r := NewReporter(srv.URL, "nodeA", "127.0.0.1", transport.NewClient())
	r.RegisterServices("i1", []types.ServiceEndpoint{{ServiceName: "web", Protocol: "http", Port: 8080}})

	got := calls()
	require.Len(t, got, 1)
	assert.Equal(t, "/v1/services/register", got[0].path)

	var reg types.ServiceRegistration
	require.NoError(t, json.Unmarshal(got[0].body, &reg))
	assert.Equal(t, "i1", reg.InstanceID)
	assert.Equal(t, "nodeA", reg.NodeID)
	require.Len(t, reg.Endpoints, 1)
	assert.Equal(t, 8080, reg.Endpoints[0].Port)
}

func TestRegisterServicesSkipsEmpty(t *testing.T) {
	srv, calls := newRecorder()
	defer srv.Close()

	r := NewReporter(srv.URL, "nodeA", "127.0.0.1", transport.NewClient())
	r.RegisterServices("i1", nil)

	assert.Empty(t, calls())
}

func TestDeleteServices(t *testing.T) {
	srv, calls := newRecorder()
	defer srv.Close()

	r := NewReporter(srv.URL, "nodeA", "127.0.0.1", transport.NewClient())
	r.DeleteServices("i1")

	got := calls()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodDelete, got[0].method)
	assert.Equal(t, "/v1/services", got[0].path)
	assert.Equal(t, "instanceId=i1", got[0].query)
}

func TestReporterSurvivesDeadController(t *testing.T) {
	r := NewReporter("http://127.0.0.1:1", "nodeA", "127.0.0.1", transport.NewClient())

	// Must not panic or block; failures are logged and dropped.
	r.NodeHeartbeat()
	r.ReportInstance(types.PhaseRunning, "i1", 0, true)
	r.HeartbeatService("i1")
	r.DeleteServices("i1")
}

func TestParseMetaINI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.ini")
	content := `# demo application metadata
name=demo

service=web:http:8080
service=rpc:grpc:9090
service=bad-port:http:notanumber
service=:http:80
service=too:few
; trailing comment
service=spaced:tcp: 7070
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	eps, err := ParseMetaINI(path)
	require.NoError(t, err)

	assert.Equal(t, []types.ServiceEndpoint{
		{ServiceName: "web", Protocol: "http", Port: 8080},
		{ServiceName: "rpc", Protocol: "grpc", Port: 9090},
		{ServiceName: "spaced", Protocol: "tcp", Port: 7070},
	}, eps)
}

func TestParseMetaINIMissingFile(t *testing.T) {
	_, err := ParseMetaINI(filepath.Join(t.TempDir(), "absent.ini"))
	assert.Error(t, err)
}
