package core

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

type InvocationResult struct {
	Invocation Invocation
	ExitCode   int
	Err        error
	Stderr     string
	Duration   time.Duration
	Skipped    bool
}

func (r InvocationResult) Failed() bool {
	return r.Skipped || r.Err != nil || r.ExitCode != 0
}

func (r InvocationResult) Error() error {
	if !r.Failed() {
		return nil
	}
	label := fmt.Sprintf("%s (%s)", r.Invocation.Job.Name, r.Invocation.Variant)
	switch {
	case r.Skipped:
		return fmt.Errorf("%s: skipped", label)
	case r.Err != nil:
		return fmt.Errorf("%s: %w", label, r.Err)
	default:
		return fmt.Errorf("%s: exit status %d", label, r.ExitCode)
	}
}

type Summary struct {
	Jobs        int
	Invocations int
	Failures    int
	Results     []InvocationResult
}

func Summarize(jobs int, results []InvocationResult) Summary {
	summary := Summary{
		Jobs:        jobs,
		Invocations: len(results),
		Results:     results,
	}
	for _, r := range results {
		if r.Failed() {
			summary.Failures++
		}
	}
	return summary
}

func (s Summary) OK() bool {
	return s.Failures == 0
}

// Err combines every failed invocation, or returns nil when all succeeded.
func (s Summary) Err() error {
	var result *multierror.Error
	for _, r := range s.Results {
		if err := r.Error(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
