package job

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
)

type fakeSource struct {
	jobs  []domain.Job
	err   error
	calls int
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) FetchJobs(context.Context) ([]domain.Job, error) {
	s.calls++
	return s.jobs, s.err
}

type recordingPresenter struct {
	renders  [][]domain.Job
	metas    []domain.PageMeta
	fetchErr error
}

func (p *recordingPresenter) Render(jobs []domain.Job) {
	p.renders = append(p.renders, jobs)
}

func (p *recordingPresenter) RenderPaginationControls(meta domain.PageMeta) {
	p.metas = append(p.metas, meta)
}

func (p *recordingPresenter) RenderFetchError(err error) {
	p.fetchErr = err
}

func (p *recordingPresenter) lastRender() []domain.Job {
	if len(p.renders) == 0 {
		return nil
	}
	return p.renders[len(p.renders)-1]
}

func (p *recordingPresenter) lastMeta() domain.PageMeta {
	if len(p.metas) == 0 {
		return domain.PageMeta{}
	}
	return p.metas[len(p.metas)-1]
}

// sampleJobs returns n jobs; jobs 2, 5 and 9 (0-based) use Rust, the rest Go
func sampleJobs(n int) []domain.Job {
	jobs := make([]domain.Job, 0, n)
	for i := 0; i < n; i++ {
		tech := "Go"
		if i == 2 || i == 5 || i == 9 {
			tech = "Rust"
		}
		loc := "Madrid, España (Remoto)"
		if i%2 == 1 {
			loc = "Barcelona"
		}
		jobs = append(jobs, domain.Job{
			ID:           i + 1,
			Title:        fmt.Sprintf("Engineer %d", i+1),
			Company:      fmt.Sprintf("Company %d", i+1),
			Location:     loc,
			Description:  "Build things",
			Technologies: []string{tech, "Docker"},
			Contract:     "Tiempo completo",
			Experience:   "Senior",
		})
	}
	return jobs
}

func ids(jobs []domain.Job) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
