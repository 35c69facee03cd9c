package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/sistemadp/internal/adapters/export"
	"github.com/ogurasousui/sistemadp/internal/adapters/rosterfile"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	maxUploadBytes = 16 << 20
)

// handleAudit は period_id と contract の突き合わせ結果を返します。
// period_id を省略した場合は操作者の保存済み選択を使います。
func (h *handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	in, err := h.auditInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	report, err := h.auditor.Audit(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	filename := "auditoria_" + strings.ReplaceAll(report.Period, "/", "-")
	h.writeTable(w, r, format, filename, export.AuditTable(report), export.AuditSummary(report))
}

func (h *handler) auditInput(r *http.Request) (reconcile.AuditInput, error) {
	q := r.URL.Query()
	in := reconcile.AuditInput{Contract: q.Get("contract")}

	if raw := strings.TrimSpace(q.Get("period_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, reconcile.ErrInvalidPeriodID
		}
		in.PeriodID = id
		return in, nil
	}

	actor := strings.TrimSpace(r.Header.Get(ActorHeader))
	if h.sessions == nil || actor == "" {
		return in, reconcile.ErrInvalidPeriodID
	}
	sel, err := h.sessions.Load(r.Context(), actor)
	if err != nil {
		return in, err
	}
	in.PeriodID = sel.PeriodID
	if in.Contract == "" {
		in.Contract = sel.Contract
	}
	return in, nil
}

// handleTerminations は退職手続き一覧を返します。requester と pending=true で絞り込めます。
func (h *handler) handleTerminations(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	pending, _ := strconv.ParseBool(q.Get("pending"))
	records, err := h.terminations.List(r.Context(), termination.Filter{
		Requester:   q.Get("requester"),
		OnlyPending: pending,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeTable(w, r, format, "desligamentos", export.TerminationTable(records))
}

// handleRosterImport は multipart の file フィールドで受け取った xls / xlsx を従業員マスタへ取り込みます。
func (h *handler) handleRosterImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	employees, err := rosterfile.Parse(file, header.Filename)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	n, err := h.roster.Upsert(r.Context(), employees, time.Now().UTC())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "roster imported",
		slog.String("actor", strings.TrimSpace(r.Header.Get(ActorHeader))),
		slog.String("file", header.Filename),
		slog.Int("count", n),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "%d\n", n)
}

func parseFormat(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	switch format {
	case formatCSV, formatXLSX:
		return format, true
	default:
		http.Error(w, "unsupported format", http.StatusNotFound)
		return "", false
	}
}

// writeTable は table を出力します。extra は xlsx の追加シートとしてのみ書き出し、CSV では省きます。
func (h *handler) writeTable(w http.ResponseWriter, r *http.Request, format, filename string, table export.Table, extra ...export.Table) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", filename, format))

	var err error
	switch format {
	case formatXLSX:
		w.Header().Set("Content-Type", contentTypeXLSX)
		err = export.WriteWorkbook(w, table, extra...)
	default:
		w.Header().Set("Content-Type", contentTypeCSV)
		err = export.WriteDelimited(w, table)
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "export failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrInvalidPeriodID),
		errors.Is(err, reconcile.ErrInvalidPeriodLabel),
		errors.Is(err, reconcile.ErrContractRequired),
		errors.Is(err, session.ErrInvalidActor),
		errors.Is(err, rosterfile.ErrEmptyWorksheet),
		errors.Is(err, rosterfile.ErrMissingColumn):
		status = http.StatusBadRequest
	case errors.Is(err, archive.ErrPeriodNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
