package errs

import (
	"context"
	"errors"
	"net"

	"gorm.io/gorm"
)

// Datastore failures fall into two buckets: retriable ones (the connection
// dropped, the statement timed out) and fatal ones (the data itself violates
// a constraint). Callers report fatal errors to the client and may retry the
// rest.

func Retriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, gorm.ErrInvalidTransaction)
}

func ConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func NotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
