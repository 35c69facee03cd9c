package handler

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
)

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codeFor(err)
	var fe *archive.FieldError
	if errors.As(err, &fe) {
		return withFieldViolation(code, err, fe.Field)
	}
	if field := fieldFor(err); field != "" {
		return withFieldViolation(code, err, field)
	}
	return status.Error(code, err.Error())
}

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, archive.ErrPreviewStale),
		errors.Is(err, archive.ErrContainerPeriodMismatch):
		return codes.FailedPrecondition
	case errors.Is(err, archive.ErrInvalidID),
		errors.Is(err, archive.ErrInvalidActor),
		errors.Is(err, archive.ErrInvalidPeriodLabel),
		errors.Is(err, archive.ErrInvalidContainerNumber),
		errors.Is(err, archive.ErrReasonTooShort),
		errors.Is(err, reconcile.ErrInvalidPeriodID),
		errors.Is(err, reconcile.ErrInvalidPeriodLabel),
		errors.Is(err, reconcile.ErrContractRequired),
		errors.Is(err, termination.ErrInvalidID),
		errors.Is(err, termination.ErrInvalidEmployee),
		errors.Is(err, termination.ErrInvalidAmount),
		errors.Is(err, session.ErrInvalidActor):
		return codes.InvalidArgument
	case errors.Is(err, archive.ErrPeriodAlreadyExists),
		errors.Is(err, archive.ErrContainerAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, archive.ErrPeriodNotFound),
		errors.Is(err, archive.ErrContainerNotFound),
		errors.Is(err, archive.ErrRecordNotFound),
		errors.Is(err, termination.ErrRecordNotFound),
		errors.Is(err, roster.ErrEmployeeNotFound):
		return codes.NotFound
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// fieldFor は FieldError を伴わない検証エラーの入力項目名を返します。
func fieldFor(err error) string {
	switch {
	case errors.Is(err, reconcile.ErrInvalidPeriodID):
		return "period_id"
	case errors.Is(err, reconcile.ErrInvalidPeriodLabel):
		return "label"
	case errors.Is(err, reconcile.ErrContractRequired):
		return "contract"
	case errors.Is(err, termination.ErrInvalidEmployee):
		return "employee_id"
	case errors.Is(err, termination.ErrInvalidAmount):
		return "loan_amount"
	case errors.Is(err, termination.ErrInvalidID):
		return "id"
	case errors.Is(err, archive.ErrPreviewStale):
		return "preview_token"
	case errors.Is(err, session.ErrInvalidActor):
		return actorMetadataKey
	}
	return ""
}

func withFieldViolation(code codes.Code, err error, field string) error {
	st := status.New(code, err.Error())
	detailed, derr := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: field, Description: err.Error()},
		},
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// PartialReason は一部のみ適用された操作を示す ErrorInfo の理由です。
const PartialReason = "PARTIALLY_APPLIED"

func partialError(err error, applied int) error {
	st := status.New(codeFor(err), err.Error())
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   PartialReason,
		Domain:   "sistemadp",
		Metadata: map[string]string{"applied": strconv.Itoa(applied)},
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}
