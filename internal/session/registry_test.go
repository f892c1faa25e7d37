package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
)

type staticSource struct {
	jobs []domain.Job
	err  error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) FetchJobs(context.Context) ([]domain.Job, error) {
	return s.jobs, s.err
}

func testJobs(n int) []domain.Job {
	jobs := make([]domain.Job, 0, n)
	for i := 1; i <= n; i++ {
		tech := "Go"
		if i%4 == 0 {
			tech = "Rust"
		}
		jobs = append(jobs, domain.Job{ID: i, Title: fmt.Sprintf("Job %d", i), Technologies: []string{tech}})
	}
	return jobs
}

func newRegistry(source job.Source) *Registry {
	return NewRegistry(func(p job.Presenter) (*job.Browser, error) {
		return job.NewBrowser(job.WithSource(source), job.WithPresenter(p), job.WithPageSize(5))
	}, nil)
}

func TestRegistryOpenRendersFirstPage(t *testing.T) {
	reg := newRegistry(staticSource{jobs: testJobs(12)})

	s, err := reg.Open(context.Background())
	require.NoError(t, err)

	page, err := s.Do(nil)
	require.NoError(t, err)
	assert.Equal(t, s.ID.String(), page.SessionID)
	assert.Len(t, page.Jobs, 5)
	assert.Equal(t, 12, page.TotalItems)
	assert.Equal(t, domain.PageMeta{CurrentPage: 1, TotalPages: 3, HasNext: true}, page.Meta)
	assert.Empty(t, page.FetchError)
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	reg := newRegistry(staticSource{jobs: testJobs(12)})

	a, err := reg.Open(context.Background())
	require.NoError(t, err)
	b, err := reg.Open(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	pageA, err := a.Do(func(br *job.Browser) error {
		return br.ApplyFacet(domain.CategoryTechnologies, []string{"Rust"})
	})
	require.NoError(t, err)
	assert.Equal(t, 3, pageA.TotalItems)

	pageB, err := b.Do(nil)
	require.NoError(t, err)
	assert.Equal(t, 12, pageB.TotalItems)
	assert.Empty(t, pageB.Filters.Technologies)
}

func TestRegistryFetchFailureKeepsSession(t *testing.T) {
	reg := newRegistry(staticSource{err: errors.New("feed unreachable")})

	s, err := reg.Open(context.Background())
	require.NoError(t, err)

	page, err := s.Do(nil)
	require.NoError(t, err)
	assert.Empty(t, page.Jobs)
	assert.Contains(t, page.FetchError, "feed unreachable")
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryGetAndClose(t *testing.T) {
	reg := newRegistry(staticSource{jobs: testJobs(1)})
	s, err := reg.Open(context.Background())
	require.NoError(t, err)

	got, err := reg.Get(s.ID.String())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = reg.Get("not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, reg.Close(s.ID.String()))
	_, err = reg.Get(s.ID.String())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, reg.Close(s.ID.String()), ErrSessionNotFound)
}

func TestSessionAppliedFlag(t *testing.T) {
	reg := newRegistry(staticSource{jobs: testJobs(3)})
	s, err := reg.Open(context.Background())
	require.NoError(t, err)

	page, err := s.Do(func(b *job.Browser) error { return b.Apply(2) })
	require.NoError(t, err)
	require.Len(t, page.Jobs, 3)
	assert.False(t, page.Jobs[0].Applied)
	assert.True(t, page.Jobs[1].Applied)

	_, err = s.Do(func(b *job.Browser) error { return b.Apply(2) })
	assert.ErrorIs(t, err, job.ErrAlreadyApplied)
}

func TestSessionDoSerializesCallers(t *testing.T) {
	reg := newRegistry(staticSource{jobs: testJobs(40)})
	s, err := reg.Open(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = s.Do(func(b *job.Browser) error {
				b.PageClick(n)
				return nil
			})
		}(i)
	}
	wg.Wait()

	page, err := s.Do(nil)
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 5)
}

func TestRegistryRequiresFactory(t *testing.T) {
	_, err := NewRegistry(nil, nil).Open(context.Background())
	assert.Error(t, err)
}
