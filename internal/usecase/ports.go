package usecase

import (
	"context"

	"github.com/3-lines-studio/bottletags/internal/adapters/fs"
	"github.com/3-lines-studio/bottletags/internal/core"
)

type Renderer interface {
	Render(ctx context.Context, inv core.Invocation) core.InvocationResult
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintFile(path string)
}

type FileSystem = fs.FileSystem
