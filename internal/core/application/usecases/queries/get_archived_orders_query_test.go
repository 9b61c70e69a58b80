package queries_test

import (
	"testing"

	"tableside/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetArchivedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetArchivedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetArchivedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetArchivedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetArchivedOrdersQueryIsNotConstructed)
}
