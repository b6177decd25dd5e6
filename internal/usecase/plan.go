package usecase

import (
	"github.com/3-lines-studio/bottletags/internal/core"
)

type PlanInput struct {
	NamesFile string
	Settings  core.RenderSettings
}

type PlanOutput struct {
	Jobs        []core.Job
	Invocations []core.Invocation
	Error       error
}

type PlanService struct {
	fs FileSystem
}

func NewPlanService(fs FileSystem) *PlanService {
	return &PlanService{
		fs: fs,
	}
}

// Plan resolves every invocation a batch would run without running any.
func (s *PlanService) Plan(input PlanInput) PlanOutput {
	names, err := loadNames(s.fs, input.NamesFile)
	if err != nil {
		return PlanOutput{Error: err}
	}

	jobs := core.NewJobs(names)
	return PlanOutput{
		Jobs:        jobs,
		Invocations: core.BuildInvocations(input.Settings, jobs),
	}
}
