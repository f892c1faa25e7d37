package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"technologies", " Locations ", "CONTRACTS", "experiences"} {
		c, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.True(t, c.Valid())
	}

	_, err := ParseCategory("salary")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestTechnologiesString(t *testing.T) {
	assert.Equal(t, "Go,Docker", Job{Technologies: []string{"Go", "Docker"}}.TechnologiesString())
	assert.Equal(t, "", Job{}.TechnologiesString())
}
