package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/nihongo-api/internal/store"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, store.ErrNotFound},
		{"unique violation maps to duplicate", pgError("23505", "users_email_key"), store.ErrDuplicate},
		{"foreign key violation maps to invalid entity", pgError("23503", "user_progress_user_id_fkey"), store.ErrInvalidEntity},
		{"check violation maps to invalid entity", pgError("23514", "users_total_points_check"), store.ErrInvalidEntity},
		{"not null violation maps to invalid entity", pgError("23502", ""), store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}

	// Unrecognized errors pass through unchanged.
	plain := fmt.Errorf("some driver failure")
	assert.Equal(t, plain, MapError(plain))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	emailConflict := pgError("23505", "users_email_key")

	assert.True(t, IsUniqueViolation(emailConflict, "users_email_key"))
	assert.True(t, IsUniqueViolation(emailConflict, ""), "empty constraint matches any unique violation")
	assert.False(t, IsUniqueViolation(emailConflict, "users_username_key"))
	assert.False(t, IsUniqueViolation(pgError("23503", "users_email_key"), "users_email_key"))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error"), ""))

	// Wrapped errors are still detected.
	wrapped := fmt.Errorf("creating user: %w", emailConflict)
	assert.True(t, IsUniqueViolation(wrapped, "users_email_key"))
}
