package core

import "testing"

func TestNewJobs(t *testing.T) {
	jobs := NewJobs([]string{"Alice", "Guy", "Bob"})

	want := []Job{
		{Index: 0, Name: "Alice", NeedsOffset: true},
		{Index: 1, Name: "Guy", NeedsOffset: false},
		{Index: 2, Name: "Bob", NeedsOffset: true},
	}

	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("jobs[%d] = %+v, want %+v", i, jobs[i], want[i])
		}
	}
}

func TestNewJobsEmpty(t *testing.T) {
	if jobs := NewJobs(nil); len(jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(jobs))
	}
}
