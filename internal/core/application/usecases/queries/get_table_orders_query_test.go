package queries_test

import (
	"testing"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTableOrdersQuery_Valid(t *testing.T) {
	tableID, err := kernel.NewTableID(7)
	require.NoError(t, err)

	query, err := queries.NewGetTableOrdersQuery(tableID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 7, query.TableID().Int())
}

func TestNewGetTableOrdersQuery_ZeroTableID_ReturnsError(t *testing.T) {
	var tableID kernel.TableID

	_, err := queries.NewGetTableOrdersQuery(tableID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetTableOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTableOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTableOrdersQueryIsNotConstructed)
}
