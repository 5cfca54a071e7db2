package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestAsConflictResolvesFieldByConstraint(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  string
	}{
		{name: "email unique index", constraint: "users_email_key", wantField: "email"},
		{name: "username primary key", constraint: "users_pkey", wantField: "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("создание записи: %w", &pgconn.PgError{
				Code:           uniqueViolation,
				ConstraintName: tt.constraint,
			})

			conflict := asConflict(err)
			if conflict == nil {
				t.Fatal("asConflict returned nil for unique violation")
			}
			if conflict.Field != tt.wantField {
				t.Fatalf("conflict field = %q, want %q", conflict.Field, tt.wantField)
			}
		})
	}
}

func TestAsConflictIgnoresOtherErrors(t *testing.T) {
	if conflict := asConflict(errors.New("connection reset")); conflict != nil {
		t.Fatalf("plain error mapped to conflict: %+v", conflict)
	}

	// Нарушение внешнего ключа не является конфликтом уникальности.
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "feedbacks_owner_username_fkey"}
	if conflict := asConflict(fkErr); conflict != nil {
		t.Fatalf("foreign key violation mapped to conflict: %+v", conflict)
	}
}
