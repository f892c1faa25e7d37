package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/repository"

	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

// Ensure JobRepository implements repository.JobRepository and can serve as a job source
var (
	_ repository.JobRepository = (*JobRepository)(nil)
	_ jobdomain.Source         = (*JobRepository)(nil)
)

// JobRepository stores the job list as a graph:
// (:Job)-[:POSTED_BY]->(:Company) and (:Job)-[:USES {position}]->(:Technology)
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

// Name identifies the repository as a job source
func (r *JobRepository) Name() string {
	return "neo4j"
}

const upsertJobsQuery = `
	UNWIND $jobs AS job
	MERGE (j:Job {id: job.id})
	SET j.title = job.title,
	    j.location = job.location,
	    j.description = job.description,
	    j.contract = job.contract,
	    j.experience = job.experience,
	    j.position = job.position
	WITH j, job
	OPTIONAL MATCH (j)-[old:USES|POSTED_BY]->()
	DELETE old
	WITH DISTINCT j, job
	FOREACH (_ IN CASE WHEN job.company <> '' THEN [1] ELSE [] END |
		MERGE (c:Company {name: job.company})
		MERGE (j)-[:POSTED_BY]->(c)
	)
	FOREACH (i IN range(0, size(job.technologies) - 1) |
		MERGE (t:Technology {name: job.technologies[i]})
		MERGE (j)-[u:USES]->(t)
		SET u.position = i
	)
`

const pruneJobsQuery = `
	MATCH (j:Job)
	WHERE NOT j.id IN $ids
	DETACH DELETE j
`

const pruneOrphansQuery = `
	MATCH (n)
	WHERE (n:Company OR n:Technology) AND NOT EXISTS { (n)<--() }
	DELETE n
`

const fetchJobsQuery = `
	MATCH (j:Job)
	OPTIONAL MATCH (j)-[:POSTED_BY]->(c:Company)
	OPTIONAL MATCH (j)-[u:USES]->(t:Technology)
	WITH j, c, t, u
	ORDER BY u.position
	WITH j, c, collect(t.name) AS technologies
	RETURN j, c.name AS company, technologies
	ORDER BY j.position, j.id
`

// ReplaceJobs makes jobs the whole graph content: jobs missing from the slice are
// removed along with companies and technologies nothing points to any more
func (r *JobRepository) ReplaceJobs(ctx context.Context, jobs []domain.Job) error {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, st := range replaceStatements(jobs) {
			result, err := tx.Run(ctx, st.query, st.params)
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("neo4j: replace jobs: %w", err)
	}

	return nil
}

type statement struct {
	query  string
	params map[string]any
}

func replaceStatements(jobs []domain.Job) []statement {
	ids := make([]any, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, int64(job.ID))
	}

	statements := []statement{{query: pruneJobsQuery, params: map[string]any{"ids": ids}}}
	if len(jobs) > 0 {
		statements = append(statements, statement{query: upsertJobsQuery, params: map[string]any{"jobs": jobParams(jobs)}})
	}
	return append(statements, statement{query: pruneOrphansQuery})
}

// FetchJobs loads every job in listing order
func (r *JobRepository) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, fetchJobsQuery, nil)
		if err != nil {
			return nil, err
		}

		jobs := make([]domain.Job, 0)
		for result.Next(ctx) {
			job, err := decodeJobRecord(result.Record())
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}

		if err := result.Err(); err != nil {
			return nil, err
		}
		return jobs, nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: fetch jobs: %w", err)
	}

	return out.([]domain.Job), nil
}

func jobParams(jobs []domain.Job) []map[string]any {
	params := make([]map[string]any, 0, len(jobs))
	for i, job := range jobs {
		techs := make([]any, 0, len(job.Technologies))
		for _, t := range job.Technologies {
			techs = append(techs, t)
		}

		params = append(params, map[string]any{
			"id":           int64(job.ID),
			"title":        job.Title,
			"company":      job.Company,
			"location":     job.Location,
			"description":  job.Description,
			"technologies": techs,
			"contract":     job.Contract,
			"experience":   job.Experience,
			"position":     int64(i),
		})
	}
	return params
}

func decodeJobRecord(record *neo4j.Record) (domain.Job, error) {
	jobVal, ok := record.Get("j")
	if !ok {
		return domain.Job{}, fmt.Errorf("record has no job column")
	}
	jobNode, ok := jobVal.(neo4j.Node)
	if !ok {
		return domain.Job{}, fmt.Errorf("job column is %T, not a node", jobVal)
	}

	props := jobNode.Props
	id, ok := props["id"].(int64)
	if !ok {
		return domain.Job{}, fmt.Errorf("job node %s has no integer id", jobNode.ElementId)
	}

	job := domain.Job{
		ID:          domain.JobID(id),
		Title:       stringProp(props, "title"),
		Location:    stringProp(props, "location"),
		Description: stringProp(props, "description"),
		Contract:    stringProp(props, "contract"),
		Experience:  stringProp(props, "experience"),
	}

	if company, ok := record.Get("company"); ok {
		job.Company, _ = company.(string)
	}

	if techsVal, ok := record.Get("technologies"); ok {
		if list, ok := techsVal.([]any); ok {
			for _, t := range list {
				if name, ok := t.(string); ok {
					job.Technologies = append(job.Technologies, name)
				}
			}
		}
	}

	return job, nil
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}
