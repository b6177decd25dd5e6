package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/3-lines-studio/bottletags/internal/core"
)

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type BatchFailure struct {
	Name    string
	Message string
	Details []string
}

type BatchReport struct {
	colors    cliOutputWithColors
	out       io.Writer
	failures  []BatchFailure
	startTime time.Time
	outputDir string
	summary   core.Summary
}

func NewBatchReport(colors cliOutputWithColors, out io.Writer, outputDir string) *BatchReport {
	return &BatchReport{
		colors:    colors,
		out:       out,
		failures:  make([]BatchFailure, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BatchReport) Record(summary core.Summary) {
	r.summary = summary
	for _, result := range summary.Results {
		if !result.Failed() {
			continue
		}
		r.failures = append(r.failures, failureFor(result))
	}
}

func failureFor(result core.InvocationResult) BatchFailure {
	inv := result.Invocation
	failure := BatchFailure{
		Name: fmt.Sprintf("%s (%s)", inv.Job.Name, inv.Variant),
	}

	switch {
	case result.Skipped:
		failure.Message = "Skipped"
	case result.Err != nil:
		failure.Message = result.Err.Error()
	default:
		failure.Message = fmt.Sprintf("Renderer exited with status %d", result.ExitCode)
	}

	failure.Details = append(failure.Details, "Output: "+inv.OutputPath)
	for _, line := range strings.Split(strings.TrimSpace(result.Stderr), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			failure.Details = append(failure.Details, line)
		}
	}
	return failure
}

func (r *BatchReport) Render() {
	duration := time.Since(r.startTime)

	fmt.Fprintf(r.out, "  %d names found\n", r.summary.Jobs)

	if len(r.failures) == 0 {
		fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%d files rendered in %s\n", r.summary.Invocations, formatDuration(duration))
	} else {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Red("✗ ")+"Failures (%d):\n", len(r.failures))
		r.renderFailures()
		fmt.Fprintln(r.out)
		msg := fmt.Sprintf("%d of %d renders failed after %s", len(r.failures), r.summary.Invocations, formatDuration(duration))
		fmt.Fprintf(r.out, "  %s\n", r.colors.Red(msg))
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *BatchReport) renderFailures() {
	for _, failure := range r.failures {
		fmt.Fprintf(r.out, "  %s %s\n", r.colors.Red("✗"), failure.Name)
		fmt.Fprintf(r.out, "    %s\n", failure.Message)

		for _, detail := range deduplicateStrings(failure.Details) {
			fmt.Fprintf(r.out, "      • %s\n", detail)
		}
	}
}

func (r *BatchReport) HasFailures() bool {
	return len(r.failures) > 0
}

func (r *BatchReport) FailureCount() int {
	return len(r.failures)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first occurrences in order and annotates repeats.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := counts[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}

	return result
}
