package queries_test

import (
	"context"
	"testing"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/codesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodeSheetPageHandler(t *testing.T) queries.GetCodeSheetPageQueryHandler {
	t.Helper()
	handler, err := queries.NewGetCodeSheetPageQueryHandler(codesheet.DefaultConfig())
	require.NoError(t, err)
	return handler
}

func TestNewGetCodeSheetPageQueryHandler_UnconstructedConfig_ReturnsError(t *testing.T) {
	_, err := queries.NewGetCodeSheetPageQueryHandler(codesheet.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, codesheet.ErrConfigIsNotConstructed)
}

func TestGetCodeSheetPageQueryHandler_FirstPage(t *testing.T) {
	handler := newCodeSheetPageHandler(t)

	result, err := handler.Handle(context.Background(), queries.NewGetCodeSheetPageQuery(1))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 40, result.TotalPages)
	require.Len(t, result.TableIDs, 25)
	assert.Equal(t, 1, result.TableIDs[0])
	assert.Equal(t, 25, result.TableIDs[24])
}

func TestGetCodeSheetPageQueryHandler_LastPage(t *testing.T) {
	handler := newCodeSheetPageHandler(t)

	result, err := handler.Handle(context.Background(), queries.NewGetCodeSheetPageQuery(40))
	require.NoError(t, err)

	assert.Equal(t, 40, result.Page)
	require.Len(t, result.TableIDs, 25)
	assert.Equal(t, 976, result.TableIDs[0])
	assert.Equal(t, 1000, result.TableIDs[24])
}

func TestGetCodeSheetPageQueryHandler_ClampsOutOfRangePages(t *testing.T) {
	handler := newCodeSheetPageHandler(t)

	tests := []struct {
		requested int
		want      int
	}{
		{0, 1},
		{-7, 1},
		{999, 40},
	}

	for _, tc := range tests {
		result, err := handler.Handle(context.Background(), queries.NewGetCodeSheetPageQuery(tc.requested))
		require.NoError(t, err)
		assert.Equal(t, tc.want, result.Page, "requested page %d", tc.requested)
	}
}

func TestGetCodeSheetPageQueryHandler_InvalidQuery_ReturnsError(t *testing.T) {
	handler := newCodeSheetPageHandler(t)

	_, err := handler.Handle(context.Background(), queries.GetCodeSheetPageQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCodeSheetPageQueryIsNotConstructed)
}
