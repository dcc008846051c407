package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nodegraph/editor"
)

var _ editor.Observer = (*Recorder)(nil)

func newTestRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)
	return r, reg
}

func TestObserveAction(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.ObserveAction("place", "fill", true)
	r.ObserveAction("place", "fill", true)
	r.ObserveAction("undo", "select", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.actions.WithLabelValues("place", "fill", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("undo", "select", "noop")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.actions.WithLabelValues("undo", "select", "applied")))
}

func TestObserveGraph(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.ObserveGraph(4, 6)
	assert.Equal(t, 4.0, testutil.ToFloat64(r.nodes))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.edges))

	r.ObserveGraph(3, 2)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.nodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.edges))
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.ErrorContains(t, err, "register metrics")
}

func TestRecorderFollowsSession(t *testing.T) {
	r, _ := newTestRecorder(t)
	s := editor.NewSession(nil, editor.WithObserver(r))

	a, _ := s.PlaceNode(0, 0)
	b, _ := s.PlaceNode(100, 0)
	s.SetMode(editor.ModeSelect)
	s.ClickAt(a.X, a.Y)
	s.ClickAt(b.X, b.Y)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.actions.WithLabelValues("place", "fill", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("connect", "select", "applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.nodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.edges))
}

func TestHandler(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.ObserveAction("redo", "fill", true)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `nodegraph_editor_actions_total{action="redo",mode="fill",result="applied"} 1`)
}

func TestServeStopsOnCancel(t *testing.T) {
	_, reg := newTestRecorder(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- serve(ctx, ln, reg, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	_, reg := newTestRecorder(t)
	err := ListenAndServe(context.Background(), "not-an-address", reg, zap.NewNop())
	assert.ErrorContains(t, err, "metrics listen")
}
