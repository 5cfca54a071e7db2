package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"
)

func TestRequestLogCarriesSessionIdentity(t *testing.T) {
	logs := &bytes.Buffer{}
	a := newTestAppWithLogger(slog.New(slog.NewTextHandler(logs, nil)))
	cookies := a.register(t, "alice")

	logs.Reset()
	if w := a.do(http.MethodGet, "/users/alice", nil, cookies); w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body %s", w.Code, w.Body.String())
	}

	line := requestLogLine(t, logs.String(), "/users/alice")
	if !strings.Contains(line, "authenticated=true") {
		t.Fatalf("authenticated request logged without identity flag: %q", line)
	}
	if !strings.Contains(line, "identity=alice") {
		t.Fatalf("request log does not name the session identity: %q", line)
	}
	if !strings.Contains(line, "status=200") {
		t.Fatalf("request log carries wrong status: %q", line)
	}
}

func TestRequestLogMarksAnonymousRequests(t *testing.T) {
	logs := &bytes.Buffer{}
	a := newTestAppWithLogger(slog.New(slog.NewTextHandler(logs, nil)))

	a.do(http.MethodGet, "/", nil, nil)

	line := requestLogLine(t, logs.String(), "path=/")
	if !strings.Contains(line, "authenticated=false") {
		t.Fatalf("anonymous request not marked as such: %q", line)
	}
	if strings.Contains(line, "identity=") {
		t.Fatalf("anonymous request log names an identity: %q", line)
	}
}

// requestLogLine находит строку журнала запросов, содержащую marker.
func requestLogLine(t *testing.T, logs, marker string) string {
	t.Helper()

	for _, line := range strings.Split(logs, "\n") {
		if strings.Contains(line, "http request") && strings.Contains(line, marker) {
			return line
		}
	}
	t.Fatalf("no request log line matching %q in: %q", marker, logs)
	return ""
}
