package core

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(name string, variant Variant, exitCode int, err error) InvocationResult {
	return InvocationResult{
		Invocation: Invocation{Job: NewJob(0, name), Variant: variant},
		ExitCode:   exitCode,
		Err:        err,
	}
}

func TestInvocationResult(t *testing.T) {
	ok := result("Alice", VariantMain, 0, nil)
	assert.False(t, ok.Failed())
	assert.NoError(t, ok.Error())

	exit := result("Alice", VariantSchrift, 1, nil)
	assert.True(t, exit.Failed())
	assert.EqualError(t, exit.Error(), "Alice (schrift): exit status 1")

	cause := errors.New("executable file not found")
	missing := result("Bob", VariantMain, -1, cause)
	assert.True(t, missing.Failed())
	assert.ErrorIs(t, missing.Error(), cause)

	skipped := InvocationResult{Invocation: Invocation{Job: NewJob(0, "Eve")}, Skipped: true}
	assert.True(t, skipped.Failed())
	assert.EqualError(t, skipped.Error(), "Eve (main): skipped")
}

func TestSummarize(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		summary := Summarize(1, []InvocationResult{
			result("Alice", VariantMain, 0, nil),
			result("Alice", VariantSchrift, 0, nil),
		})

		assert.True(t, summary.OK())
		assert.Equal(t, 2, summary.Invocations)
		assert.NoError(t, summary.Err())
	})

	t.Run("failures are counted and combined", func(t *testing.T) {
		summary := Summarize(2, []InvocationResult{
			result("Alice", VariantMain, 0, nil),
			result("Alice", VariantSchrift, 2, nil),
			result("Bob", VariantMain, -1, errors.New("boom")),
			result("Bob", VariantSchrift, 0, nil),
		})

		assert.False(t, summary.OK())
		assert.Equal(t, 2, summary.Failures)

		var merr *multierror.Error
		require.ErrorAs(t, summary.Err(), &merr)
		assert.Len(t, merr.Errors, 2)
	})
}
