package guard_test

import (
	"errors"
	"testing"

	"tableside/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_UsageExample demonstrates the intended embedding pattern.
func TestConstructorGuard_UsageExample(t *testing.T) {
	type note struct {
		text  string
		guard guard.ConstructorGuard
	}

	errNoteNotConstructed := errors.New("note must be created via newNote")

	newNote := func(text string) note {
		return note{text: text, guard: guard.NewConstructorGuard()}
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		n := newNote("no onions")

		require.NoError(t, n.guard.Validate(errNoteNotConstructed))
		assert.Equal(t, "no onions", n.text)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var n note

		err := n.guard.Validate(errNoteNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNoteNotConstructed, err)
	})
}
