package archive

import "errors"

var (
	ErrInvalidID               = errors.New("archive: invalid id")
	ErrInvalidActor            = errors.New("archive: actor is required")
	ErrInvalidPeriodLabel      = errors.New("archive: invalid period label")
	ErrInvalidContainerNumber  = errors.New("archive: invalid container number")
	ErrReasonTooShort          = errors.New("archive: reason must have at least 3 characters")
	ErrPreviewStale            = errors.New("archive: impacted records changed since preview")
	ErrContainerPeriodMismatch = errors.New("archive: container does not belong to period")
	ErrPeriodNotFound          = errors.New("archive: period not found")
	ErrContainerNotFound       = errors.New("archive: container not found")
	ErrRecordNotFound          = errors.New("archive: record not found")
	ErrPeriodAlreadyExists     = errors.New("archive: period already exists")
	ErrContainerAlreadyExists  = errors.New("archive: container already exists")
)

// FieldError は入力項目に紐づく検証エラーです。
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
