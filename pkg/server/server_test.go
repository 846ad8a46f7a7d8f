package server

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ikreport/pkg/cache"
	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/kin/kintest"
	"github.com/matzehuels/ikreport/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(&bytes.Buffer{})
	return New(pipeline.NewRunner(c, nil, logger), logger, Config{})
}

func bundleBody(t *testing.T, b kin.Bundle) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(&b, &buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func do(s *Server, method, target string, body *bytes.Buffer, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body healthBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodGet, "/healthz", nil, nil)
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("generated request ID %q is not a UUID", rec.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	rec = do(s, http.MethodGet, "/healthz", nil, http.Header{RequestIDHeader: {id}})
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request ID = %q, want %q", got, id)
	}

	rec = do(s, http.MethodGet, "/healthz", nil, http.Header{RequestIDHeader: {"not-a-uuid"}})
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("invalid client request ID was kept")
	}
}

func TestReportFilenameQuoting(t *testing.T) {
	s := newTestServer(t)
	b := kintest.TwoLink()
	b.Robot.Name = `Arm "v2"; x=1`

	rec := do(s, http.MethodPost, "/v1/reports/solution", bundleBody(t, b), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("Content-Disposition %q: %v", rec.Header().Get("Content-Disposition"), err)
	}
	if want := `ik_solution_Arm "v2"; x=1.tex`; disposition != "attachment" || params["filename"] != want {
		t.Errorf("disposition %q filename %q, want attachment %q", disposition, params["filename"], want)
	}
}

func TestReport(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "/v1/reports/solution", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != TeXContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "ik_solution_Two_Link.tex") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Header().Get("X-Cache") != "MISS" {
		t.Errorf("X-Cache = %q on first request", rec.Header().Get("X-Cache"))
	}
	body := rec.Body.String()
	if !strings.Contains(body, `\section*{Inverse Kinematic Solution for Two\_Link}`) || !strings.Contains(body, `\section{Solution Sets}`) {
		t.Errorf("unexpected report:\n%s", body)
	}

	rec = do(s, http.MethodPost, "/v1/reports/solution", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q on repeated request", rec.Header().Get("X-Cache"))
	}
}

func TestReportOptions(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/v1/reports/fk?columns=false&title=Arm", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if strings.Contains(body, `\mathrm{Column`) {
		t.Error("columns=false ignored")
	}
	if !strings.Contains(body, `\section*{Arm}`) {
		t.Error("title ignored")
	}
	if strings.Contains(body, `\section{Solutions}`) {
		t.Error("fk report contains solutions")
	}
}

func TestReportErrors(t *testing.T) {
	bad := kintest.TwoLink()
	bad.Robot.Mech.T06 = bad.Robot.Mech.T06[:2]

	tests := []struct {
		name   string
		target string
		body   *bytes.Buffer
		status int
		code   string
	}{
		{"unknown kind", "/v1/reports/ik", bundleBody(t, kintest.TwoLink()), http.StatusBadRequest, "INVALID_REPORT_KIND"},
		{"bad bool", "/v1/reports/fk?align=maybe", bundleBody(t, kintest.TwoLink()), http.StatusBadRequest, "INVALID_INPUT"},
		{"bad json", "/v1/reports/fk", bytes.NewBufferString("{"), http.StatusBadRequest, "INVALID_INPUT"},
		{"bad matrix", "/v1/reports/fk", bundleBody(t, bad), http.StatusBadRequest, "INVALID_MATRIX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := do(s, http.MethodPost, tt.target, tt.body, nil)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			body := decodeError(t, rec)
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.RequestID == "" || body.RequestID != rec.Header().Get(RequestIDHeader) {
				t.Errorf("request_id = %q", body.RequestID)
			}
		})
	}
}

func TestBodyLimit(t *testing.T) {
	c := cache.NewNullCache()
	logger := log.New(&bytes.Buffer{})
	s := New(pipeline.NewRunner(c, nil, logger), logger, Config{MaxBodyBytes: 16})

	rec := do(s, http.MethodPost, "/v1/reports/fk", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestGraph(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, http.MethodPost, "/v1/graphs/dot?detailed=true", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"th_1s1" -> "th_2s2";`) || !strings.Contains(rec.Body.String(), "level: 1") {
		t.Errorf("DOT = %s", rec.Body)
	}

	rec = do(s, http.MethodPost, "/v1/graphs/svg", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<svg") {
		t.Errorf("svg: status %d", rec.Code)
	}

	rec = do(s, http.MethodPost, "/v1/graphs/gif", bundleBody(t, kintest.TwoLink()), nil)
	if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != "INVALID_FORMAT" {
		t.Errorf("gif: status %d", rec.Code)
	}

	cyclic := kintest.TwoLink()
	cyclic.Robot.NotationGraph = append(cyclic.Robot.NotationGraph, kin.Edge{Parent: "th_2s1", Child: "th_1s1"})
	rec = do(s, http.MethodPost, "/v1/graphs/dot", bundleBody(t, cyclic), nil)
	if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != "INVALID_GRAPH" {
		t.Errorf("cyclic: status %d", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/v2/nothing", nil, nil)
	if rec.Code != http.StatusNotFound || decodeError(t, rec).Code != "NOT_FOUND" {
		t.Errorf("status = %d", rec.Code)
	}
}
