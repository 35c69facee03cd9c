package httpapi

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/metrics"
)

type stubAuditor struct {
	got reconcile.AuditInput
	err error
}

func (s *stubAuditor) Audit(_ context.Context, in reconcile.AuditInput) (*reconcile.Report, error) {
	s.got = in
	if s.err != nil {
		return nil, s.err
	}
	return reconcile.Reconcile(reconcile.Input{
		PeriodLabel: "02/2026",
		Contract:    in.Contract,
		Roster: []*roster.Employee{
			{ID: "100", Name: "Ana", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		},
	})
}

type stubTerminations struct {
	got termination.Filter
}

func (s *stubTerminations) List(_ context.Context, f termination.Filter) ([]*termination.Record, error) {
	s.got = f
	return []*termination.Record{{ID: 1, EmployeeID: "100", Name: "Ana", Requester: "maria"}}, nil
}

func newTestRouter(auditor *stubAuditor, sessions session.Store) (http.Handler, *stubTerminations) {
	terms := &stubTerminations{}
	return NewRouter(Deps{
		Auditor:      auditor,
		Terminations: terms,
		Sessions:     sessions,
		Metrics:      metrics.New(),
	}), terms
}

func TestRouter_AuditCSV(t *testing.T) {
	auditor := &stubAuditor{}
	router, _ := newTestRouter(auditor, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exports/audit.csv?period_id=4&contract=Hospital", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeCSV, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "auditoria_02-2026.csv")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, reconcile.AuditInput{PeriodID: 4, Contract: "Hospital"}, auditor.got)

	reader := csv.NewReader(bytes.NewReader(rr.Body.Bytes()))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "PENDENTE", records[1][2])
}

func TestRouter_AuditUsesSessionSelection(t *testing.T) {
	auditor := &stubAuditor{}
	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 9, Contract: "Escola"}))
	router, _ := newTestRouter(auditor, sessions)

	req := httptest.NewRequest(http.MethodGet, "/exports/audit.xlsx", nil)
	req.Header.Set(ActorHeader, "Maria")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeXLSX, rr.Header().Get("Content-Type"))
	assert.Equal(t, reconcile.AuditInput{PeriodID: 9, Contract: "Escola"}, auditor.got)

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	// Escola の在籍者はいないため見出し行のみ
	rows, err := f.GetRows("Auditoria")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	summary, err := f.GetRows("Resumo")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, []string{"MES_REFERENCIA", "CONTRATO", "ESPERADOS", "ARQUIVADOS", "FALTANTES"}, summary[0])
	assert.Equal(t, []string{"02/2026", "Escola", "0", "0", "0"}, summary[1])
}

func TestRouter_AuditErrors(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{name: "missing period", url: "/exports/audit.csv", status: http.StatusBadRequest},
		{name: "malformed period", url: "/exports/audit.csv?period_id=abc", status: http.StatusBadRequest},
		{name: "missing contract", url: "/exports/audit.csv?period_id=1", status: http.StatusBadRequest},
		{name: "unknown format", url: "/exports/audit.pdf?period_id=1", status: http.StatusNotFound},
		{name: "period not found", url: "/exports/audit.csv?period_id=1", err: archive.ErrPeriodNotFound, status: http.StatusNotFound},
		{name: "backend failure", url: "/exports/audit.csv?period_id=1", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newTestRouter(&stubAuditor{err: tc.err}, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestRouter_Terminations(t *testing.T) {
	router, terms := newTestRouter(&stubAuditor{}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exports/terminations.csv?requester=maria&pending=true", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, termination.Filter{Requester: "maria", OnlyPending: true}, terms.got)
	assert.Contains(t, rr.Body.String(), "ID;FLUIG")
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(&stubAuditor{}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `sistemadp_http_requests_total{code="200",route="/healthz"} 1`)
}

func TestRouter_RateLimit(t *testing.T) {
	router := NewRouter(Deps{Auditor: &stubAuditor{}, Terminations: &stubTerminations{}, RateLimit: 1})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/exports/terminations.csv", nil)
		req.Header.Set(ActorHeader, "maria")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

type stubRoster struct {
	got []*roster.Employee
}

func (s *stubRoster) Upsert(_ context.Context, employees []*roster.Employee, _ time.Time) (int, error) {
	s.got = employees
	return len(employees), nil
}

func uploadRequest(t *testing.T, filename string, rows [][]any) *http.Request {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	require.NoError(t, f.Write(part))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/imports/roster", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(ActorHeader, "maria")
	return req
}

func TestRouter_RosterImport(t *testing.T) {
	rosterStub := &stubRoster{}
	router := NewRouter(Deps{Auditor: &stubAuditor{}, Roster: rosterStub})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, uploadRequest(t, "funcionarios.xlsx", [][]any{
		{"Matrícula", "Nome", "Contrato"},
		{"100", "Ana", "Hospital"},
		{"101", "Bruno", "Escola"},
	}))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2\n", rr.Body.String())
	require.Len(t, rosterStub.got, 2)
	assert.Equal(t, "Bruno", rosterStub.got[1].Name)
}

func TestRouter_RosterImportRejectsMissingColumn(t *testing.T) {
	router := NewRouter(Deps{Auditor: &stubAuditor{}, Roster: &stubRoster{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, uploadRequest(t, "funcionarios.xlsx", [][]any{{"Nome"}, {"Ana"}}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/imports/roster", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_OptionalRoutesAreNotMounted(t *testing.T) {
	router := NewRouter(Deps{Auditor: &stubAuditor{}})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/exports/terminations.csv", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/imports/roster", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
