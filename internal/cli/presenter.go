package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// termPresenter keeps the last render and prints it once the command is done
type termPresenter struct {
	jobs     []domain.Job
	meta     domain.PageMeta
	fetchErr error
}

func (p *termPresenter) Render(jobs []domain.Job) {
	p.jobs = jobs
}

func (p *termPresenter) RenderPaginationControls(meta domain.PageMeta) {
	p.meta = meta
}

func (p *termPresenter) RenderFetchError(err error) {
	p.fetchErr = err
}

func (p *termPresenter) print(w io.Writer, applied func(domain.JobID) bool) {
	if p.fetchErr != nil {
		fmt.Fprintf(w, "Jobs could not be loaded: %v\n", p.fetchErr)
	}

	if len(p.jobs) == 0 {
		fmt.Fprintln(w, "No jobs found")
		return
	}

	for _, j := range p.jobs {
		fmt.Fprintf(w, "#%d  %s\n", j.ID, j.Title)
		fmt.Fprintf(w, "     %s | %s\n", j.Company, j.Location)
		if len(j.Technologies) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(j.Technologies, ", "))
		}
		if j.Contract != "" || j.Experience != "" {
			fmt.Fprintf(w, "     %s | %s\n", j.Contract, j.Experience)
		}
		if applied != nil && applied(j.ID) {
			fmt.Fprintln(w, "     applied")
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, paginationControls(p.meta))
}

// paginationControls draws "« 1 [2] 3 »" with the arrows only when usable
func paginationControls(meta domain.PageMeta) string {
	var parts []string
	if meta.HasPrev {
		parts = append(parts, "«")
	}
	for n := 1; n <= meta.TotalPages; n++ {
		if n == meta.CurrentPage {
			parts = append(parts, fmt.Sprintf("[%d]", n))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	if meta.HasNext {
		parts = append(parts, "»")
	}
	return strings.Join(parts, " ")
}
