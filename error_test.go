package entaudit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/entaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()

		err := entaudit.Errorf(entaudit.EINVALID, "item label required")

		assert.Equal(t, entaudit.EINVALID, entaudit.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("running batch: %w", entaudit.Errorf(entaudit.EUNAVAILABLE, "entity service unreachable"))

		assert.Equal(t, entaudit.EUNAVAILABLE, entaudit.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, entaudit.EINTERNAL, entaudit.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, entaudit.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()

		err := entaudit.Errorf(entaudit.ENOTFOUND, "batch %q not found", "abc")

		assert.Equal(t, `batch "abc" not found`, entaudit.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", entaudit.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, entaudit.ErrorMessage(nil))
	})
}
