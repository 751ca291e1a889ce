package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRetriable(t *testing.T) {
	assert.False(t, Retriable(nil))
	assert.True(t, Retriable(context.DeadlineExceeded))
	assert.True(t, Retriable(fmt.Errorf("query: %w", context.Canceled)))
	assert.True(t, Retriable(gorm.ErrInvalidTransaction))
	assert.False(t, Retriable(errors.New("boom")))
	assert.False(t, Retriable(gorm.ErrDuplicatedKey))
}

func TestConstraintViolation(t *testing.T) {
	assert.False(t, ConstraintViolation(nil))
	assert.True(t, ConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, ConstraintViolation(fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated)))
	assert.False(t, ConstraintViolation(gorm.ErrRecordNotFound))
}

func TestNotFound(t *testing.T) {
	assert.True(t, NotFound(gorm.ErrRecordNotFound))
	assert.False(t, NotFound(nil))
	assert.False(t, NotFound(errors.New("boom")))
}
