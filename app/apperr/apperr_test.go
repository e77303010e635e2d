package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("Name cannot be empty"), KindValidation},
		{"unauthenticated", Unauthenticated("incorrect credentials"), KindUnauthenticated},
		{"forbidden", Forbidden("not yours"), KindForbidden},
		{"not found", NotFound("Post not found"), KindNotFound},
		{"conflict", Conflict("email is already registered"), KindConflict},
		{"unexpected", Unexpected(errors.New("disk on fire")), KindUnexpected},
		{"plain error", errors.New("anything"), KindUnexpected},
		{"wrapped", fmt.Errorf("context: %w", NotFound("gone")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestValidationFields(t *testing.T) {
	err := Validation("Name cannot be empty", "Email cannot be empty")

	assert.Equal(t, []string{"Name cannot be empty", "Email cannot be empty"}, FieldsOf(err))
	assert.Equal(t, "Name cannot be empty; Email cannot be empty", err.Error())

	assert.Nil(t, FieldsOf(errors.New("plain")))
}

func TestUnexpectedMasksCause(t *testing.T) {
	err := Unexpected(errors.New("pq: connection reset by peer"))
	assert.NotContains(t, err.Error(), "connection reset")
}
