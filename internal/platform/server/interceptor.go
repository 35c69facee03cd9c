package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/sistemadp/internal/adapters/grpc/handler"
)

// RequestIDMetadataKey はリクエスト ID を運ぶメタデータのキーです。
const RequestIDMetadataKey = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext はインターセプタが付与したリクエスト ID を返します。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// UnaryLoggingInterceptor は呼び出しごとにリクエスト ID を付与し、所要時間とステータスを記録します。
// クライアントが x-request-id を送った場合はそれを引き継ぎます。
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, requestID))

		started := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", info.FullMethod),
			slog.String("actor", handler.ActorFromContext(ctx)),
			slog.String("code", code.String()),
			slog.Duration("elapsed", time.Since(started)),
		}
		switch code {
		case codes.OK:
			logger.LogAttrs(ctx, slog.LevelInfo, "rpc finished", attrs...)
		case codes.Internal, codes.Unknown, codes.DataLoss:
			logger.LogAttrs(ctx, slog.LevelError, "rpc failed", append(attrs, slog.Any("error", err))...)
		default:
			logger.LogAttrs(ctx, slog.LevelWarn, "rpc rejected", append(attrs, slog.Any("error", err))...)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(RequestIDMetadataKey) {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}
	return ""
}
