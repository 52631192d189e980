package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrWordNotFound))
	assert.True(t, IsNotFoundError(ErrProgressNotFound))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrUsernameExists))

	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsNotFoundError(nil))

	// Wrapping with context preserves the sentinel chain.
	wrapped := fmt.Errorf("%w: user 42", ErrUserNotFound)
	assert.True(t, IsNotFoundError(wrapped))
	assert.True(t, errors.Is(wrapped, ErrUserNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("user_progress", "upsert", "committing transaction", cause)

	assert.Contains(t, err.Error(), "upsert")
	assert.Contains(t, err.Error(), "user_progress")
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "user_progress", storeErr.Entity)

	noCause := NewStoreError("quiz", "append", "unexpected state", nil)
	assert.Contains(t, noCause.Error(), "unexpected state")
	assert.Nil(t, errors.Unwrap(noCause))
}
