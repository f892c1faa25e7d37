package neo4j

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func TestDecodeJobRecord(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"j", "company", "technologies"},
		Values: []any{
			neo4j.Node{
				ElementId: "4:abc:1",
				Labels:    []string{"Job"},
				Props: map[string]any{
					"id":          int64(42),
					"title":       "Backend Developer",
					"location":    "Madrid, España",
					"description": "Go services",
					"contract":    "Freelance",
					"experience":  "Senior",
				},
			},
			"Acme",
			[]any{"Go", "Docker"},
		},
	}

	job, err := decodeJobRecord(record)
	require.NoError(t, err)

	assert.Equal(t, domain.Job{
		ID:           42,
		Title:        "Backend Developer",
		Company:      "Acme",
		Location:     "Madrid, España",
		Description:  "Go services",
		Technologies: []string{"Go", "Docker"},
		Contract:     "Freelance",
		Experience:   "Senior",
	}, job)
}

func TestDecodeJobRecordWithoutCompany(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"j", "company", "technologies"},
		Values: []any{
			neo4j.Node{Props: map[string]any{"id": int64(1), "title": "QA"}},
			nil,
			[]any{},
		},
	}

	job, err := decodeJobRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "", job.Company)
	assert.Empty(t, job.Technologies)
}

func TestDecodeJobRecordRejectsMissingID(t *testing.T) {
	record := &neo4j.Record{
		Keys:   []string{"j"},
		Values: []any{neo4j.Node{Props: map[string]any{"title": "QA"}}},
	}

	_, err := decodeJobRecord(record)
	assert.Error(t, err)
}

func TestJobParamsKeepOrder(t *testing.T) {
	params := jobParams([]domain.Job{
		{ID: 9, Title: "A", Technologies: []string{"Go"}},
		{ID: 3, Title: "B"},
	})

	require.Len(t, params, 2)
	assert.Equal(t, int64(9), params[0]["id"])
	assert.Equal(t, int64(0), params[0]["position"])
	assert.Equal(t, []any{"Go"}, params[0]["technologies"])
	assert.Equal(t, int64(1), params[1]["position"])
	assert.Equal(t, []any{}, params[1]["technologies"])
}

func TestReplaceStatementsPruneAroundUpsert(t *testing.T) {
	statements := replaceStatements([]domain.Job{{ID: 4}, {ID: 2}})

	require.Len(t, statements, 3)
	assert.Equal(t, pruneJobsQuery, statements[0].query)
	assert.Equal(t, []any{int64(4), int64(2)}, statements[0].params["ids"])
	assert.Equal(t, upsertJobsQuery, statements[1].query)
	assert.Len(t, statements[1].params["jobs"], 2)
	assert.Equal(t, pruneOrphansQuery, statements[2].query)
}

func TestReplaceStatementsEmptyFeedClearsGraph(t *testing.T) {
	statements := replaceStatements(nil)

	require.Len(t, statements, 2)
	assert.Equal(t, pruneJobsQuery, statements[0].query)
	assert.Equal(t, []any{}, statements[0].params["ids"])
	assert.Equal(t, pruneOrphansQuery, statements[1].query)
}
