package handler

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/ogurasousui/sistemadp/internal/core/session"
)

const actorMetadataKey = "x-actor"

// ActorFromContext は受信メタデータ x-actor から操作者を取り出します。
func ActorFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(actorMetadataKey) {
		if actor := strings.TrimSpace(v); actor != "" {
			return actor
		}
	}
	return ""
}

// selections は操作者ごとの直近の選択を読み書きします。Store が nil の場合は何も保持しません。
// 選択は入力の既定値を補うだけなので、ストアの障害は警告に留めます。
type selections struct {
	store  session.Store
	logger *slog.Logger
}

func (s selections) load(ctx context.Context, actor string) session.Selection {
	if s.store == nil || actor == "" {
		return session.Selection{}
	}
	sel, err := s.store.Load(ctx, actor)
	if err != nil {
		s.logger.WarnContext(ctx, "selection load failed", slog.String("actor", actor), slog.Any("error", err))
		return session.Selection{}
	}
	return sel
}

func (s selections) remember(ctx context.Context, actor string, current, next session.Selection) {
	if s.store == nil || actor == "" {
		return
	}
	merged := current.Merge(next)
	if merged == current {
		return
	}
	if err := s.store.Save(ctx, actor, merged); err != nil {
		s.logger.WarnContext(ctx, "selection save failed", slog.String("actor", actor), slog.Any("error", err))
	}
}
