package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/3-lines-studio/bottletags/internal/core"
)

const (
	stderrTailSize = 2048
	waitDelay      = 500 * time.Millisecond
)

type Renderer struct {
	binary  string
	env     []string
	timeout time.Duration
	logger  *zap.Logger
}

type Option func(*Renderer)

func WithEnv(env ...string) Option {
	return func(r *Renderer) { r.env = append(r.env, env...) }
}

// WithTimeout bounds every invocation. Zero waits indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Renderer) { r.timeout = timeout }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

func NewRenderer(binary string, opts ...Option) *Renderer {
	r := &Renderer{
		binary: binary,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks the binary up in PATH.
func (r *Renderer) Resolve() (string, error) {
	path, err := exec.LookPath(r.binary)
	if err != nil {
		return "", fmt.Errorf("failed to find renderer %q: %w", r.binary, err)
	}
	return path, nil
}

func (r *Renderer) Render(ctx context.Context, inv core.Invocation) core.InvocationResult {
	result := core.InvocationResult{Invocation: inv}

	if err := ctx.Err(); err != nil {
		result.Skipped = true
		result.Err = err
		return result
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, inv.Args...)
	cmd.Env = append(os.Environ(), r.env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stderr = tail(stderr.String(), stderrTailSize)

	logger := r.logger.With(
		zap.String("name", inv.Job.Name),
		zap.Int("index", inv.Job.Index),
		zap.Stringer("variant", inv.Variant),
		zap.String("output", inv.OutputPath),
		zap.Duration("duration", result.Duration),
	)
	if stdout.Len() > 0 {
		logger.Debug("renderer stdout", zap.String("stdout", stdout.String()))
	}
	if stderr.Len() > 0 {
		logger.Debug("renderer stderr", zap.String("stderr", stderr.String()))
	}

	if err == nil {
		logger.Debug("renderer finished", zap.Int("exit_code", 0))
		return result
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.ExitCode = -1
		result.Err = fmt.Errorf("renderer timed out after %s: %w", r.timeout, ctx.Err())
	case errors.Is(ctx.Err(), context.Canceled):
		result.ExitCode = -1
		result.Err = fmt.Errorf("renderer interrupted: %w", ctx.Err())
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.ExitCode = -1
		result.Err = fmt.Errorf("failed to start renderer: %w", err)
	}

	logger.Debug("renderer failed", zap.Int("exit_code", result.ExitCode), zap.Error(err))
	return result
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
