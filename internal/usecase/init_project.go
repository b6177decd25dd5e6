package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/bottletags/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Template   string
	NamesFile  string
	Model      string
	// Force overwrites files that already exist.
	Force bool
}

type InitOutput struct {
	Created []string
	Skipped []string
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes a starter config and name list into ProjectDir.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Bottle Tags Init")

	templateName := input.Template
	if templateName == "" {
		templateName = "starter"
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		return InitOutput{Error: fmt.Errorf("invalid template '%s': %w", templateName, err)}
	}

	if err := s.fs.MkdirAll(input.ProjectDir, 0755); err != nil {
		return InitOutput{Error: fmt.Errorf("failed to create project directory: %w", err)}
	}

	data := templates.TemplateData{
		Project: templates.DeriveProjectName(input.ProjectDir),
		Names:   input.NamesFile,
		Model:   input.Model,
	}

	var output InitOutput
	err = iofs.WalkDir(templateFS, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := iofs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}

		name, isTemplate := templates.ProcessFilename(path)
		if name == "names.txt" && input.NamesFile != "" {
			name = input.NamesFile
		}
		target := filepath.Join(input.ProjectDir, name)

		if s.fs.FileExists(target) && !input.Force {
			output.Skipped = append(output.Skipped, target)
			s.cli.PrintWarning("%s already exists, skipping", target)
			return nil
		}

		processed, err := templates.ProcessContent(path, content, isTemplate, data)
		if err != nil {
			return fmt.Errorf("failed to process template %s: %w", path, err)
		}

		if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}
		if err := s.fs.WriteFile(target, processed, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		output.Created = append(output.Created, target)
		s.cli.PrintFile(target)
		return nil
	})
	if err != nil {
		output.Error = err
		return output
	}

	s.cli.PrintSuccess("Project initialized (%d files)", len(output.Created))
	return output
}
