package reporting

import "github.com/pkg/errors"

var (
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrPeriodNotFound = errors.New("period not found")
)
