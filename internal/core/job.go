package core

type Job struct {
	Index       int
	Name        string
	NeedsOffset bool
}

func NewJob(index int, name string) Job {
	return Job{
		Index:       index,
		Name:        name,
		NeedsOffset: NeedsOffset(name),
	}
}

// NewJobs assigns indexes by position in the already filtered name list.
func NewJobs(names []string) []Job {
	jobs := make([]Job, 0, len(names))
	for i, name := range names {
		jobs = append(jobs, NewJob(i, name))
	}
	return jobs
}
