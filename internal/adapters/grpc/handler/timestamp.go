package handler

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// optionalTime は未設定の Timestamp を nil として扱います。
func optionalTime(ts *timestamppb.Timestamp, field string) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	t := ts.AsTime()
	return &t, nil
}

func optionalDouble(v *float64) *wrapperspb.DoubleValue {
	if v == nil {
		return nil
	}
	return wrapperspb.Double(*v)
}

func doubleValue(v *wrapperspb.DoubleValue) *float64 {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}
