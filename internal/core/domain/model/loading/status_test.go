package loading_test

import (
	"testing"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Waiting", loading.Waiting.String())
	assert.Equal(t, "Approved", loading.Approved.String())
	assert.Equal(t, "InProgress", loading.InProgress.String())
	assert.Equal(t, "Completed", loading.Completed.String())
	assert.Equal(t, "Cancelled", loading.Cancelled.String())
	assert.Equal(t, "Unknown", loading.Unknown.String())
	assert.Equal(t, "Unknown", loading.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := loading.StatusFromString("InProgress")

		require.NoError(t, err)
		assert.Equal(t, loading.InProgress, s)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := loading.StatusFromString("loading")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []loading.Status{
		loading.Waiting, loading.Approved, loading.InProgress, loading.Completed, loading.Cancelled,
	} {
		require.NoError(t, s.Validate())
	}
	require.Error(t, loading.Unknown.Validate())
	require.Error(t, loading.Status(99).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, loading.Completed.IsTerminal())
	assert.True(t, loading.Cancelled.IsTerminal())
	assert.False(t, loading.Waiting.IsTerminal())
	assert.False(t, loading.Approved.IsTerminal())
	assert.False(t, loading.InProgress.IsTerminal())
}

// TestStatus_TransitionClosure checks the full transition table: only the listed
// edges succeed, every other request fails with an invalid-transition error.
func TestStatus_TransitionClosure(t *testing.T) {
	type op struct {
		name string
		run  func(loading.Status) (loading.Status, error)
	}
	ops := []op{
		{"approve", loading.Status.Approve},
		{"revert", loading.Status.Revert},
		{"start", loading.Status.Start},
		{"pause", loading.Status.Pause},
		{"complete", loading.Status.Complete},
		{"cancel", loading.Status.Cancel},
	}

	legal := map[loading.Status]map[string]loading.Status{
		loading.Waiting: {
			"approve": loading.Approved,
			"cancel":  loading.Cancelled,
		},
		loading.Approved: {
			"revert": loading.Waiting,
			"start":  loading.InProgress,
			"cancel": loading.Cancelled,
		},
		loading.InProgress: {
			"pause":    loading.Approved,
			"complete": loading.Completed,
			"cancel":   loading.Cancelled,
		},
		loading.Completed: {},
		loading.Cancelled: {},
		loading.Unknown:   {},
	}

	for from, edges := range legal {
		for _, o := range ops {
			t.Run(from.String()+"_"+o.name, func(t *testing.T) {
				next, err := o.run(from)

				if want, ok := edges[o.name]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
				} else {
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			})
		}
	}
}
