// Package httpapi は監査結果と退職手続き一覧のダウンロード、ヘルスチェック、指標を HTTP で公開します。
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// ActorHeader は操作者を示すリクエストヘッダです。
const ActorHeader = "X-Actor"

// Auditor は突き合わせを実行します。
type Auditor interface {
	Audit(ctx context.Context, in reconcile.AuditInput) (*reconcile.Report, error)
}

// TerminationLister は退職手続きの記録を返します。
type TerminationLister interface {
	List(ctx context.Context, filter termination.Filter) ([]*termination.Record, error)
}

// RosterImporter は取り込んだ従業員一覧を従業員マスタへ書き戻します。
type RosterImporter interface {
	Upsert(ctx context.Context, employees []*roster.Employee, at time.Time) (int, error)
}

// Deps はルーターの依存関係です。Terminations・Roster・Sessions・Metrics は nil でも構いません。
// nil のものに対応するルートは登録しません。
type Deps struct {
	Auditor      Auditor
	Terminations TerminationLister
	Roster       RosterImporter
	Sessions     session.Store
	Metrics      MetricsProvider
	Logger       *slog.Logger
	RateLimit    int
	Production   bool
}

// MetricsProvider は指標のミドルウェアと公開ハンドラを提供します。
type MetricsProvider interface {
	Handler() http.Handler
	Middleware(next http.Handler) http.Handler
}

type handler struct {
	auditor      Auditor
	terminations TerminationLister
	roster       RosterImporter
	sessions     session.Store
	logger       *slog.Logger
}

// NewRouter はルーターを生成します。
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	h := &handler{
		auditor:      d.Auditor,
		terminations: d.Terminations,
		roster:       d.Roster,
		sessions:     d.Sessions,
		logger:       logger,
	}

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           d.Production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !d.Production,
	})

	limit := d.RateLimit
	if limit <= 0 {
		limit = 30
	}
	limiter := httprate.Limit(limit, time.Minute,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(secureMiddleware.Handler)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/exports/audit.{format}", h.handleAudit)
		if h.terminations != nil {
			gr.Get("/exports/terminations.{format}", h.handleTerminations)
		}
		if h.roster != nil {
			gr.Post("/imports/roster", h.handleRosterImport)
		}
	})
	return r
}

func rateLimitKey(r *http.Request) (string, error) {
	if actor := strings.TrimSpace(r.Header.Get(ActorHeader)); actor != "" {
		return "actor:" + strings.ToLower(actor), nil
	}
	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + key, nil
}
