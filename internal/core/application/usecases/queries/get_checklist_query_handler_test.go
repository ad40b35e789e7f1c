package queries_test

import (
	"context"
	"testing"

	"dockflow/internal/core/application/usecases/queries"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChecklistQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	l := importedLoading(t, "INV-2031", 3)
	snapshot := l.Snapshot()
	reader := &fakeLoadingReader{active: []loading.Snapshot{snapshot}}

	query, err := queries.NewGetChecklistQuery(snapshot.ID)
	require.NoError(t, err)

	handler := queries.NewGetChecklistQueryHandler(reader)
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "INV-2031", response.InvoiceNumber)
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "SKU-100", response.Lines[0].Code)
	assert.Equal(t, 3, response.TotalExpected)
	assert.Equal(t, 0, response.TotalScanned)
	assert.False(t, response.AllCompleted)
}

func TestGetChecklistQueryHandler_Handle_ManualNotApplicable(t *testing.T) {
	ctx := context.Background()
	snapshot := manualSnapshot(t, "R. Alvarez", "KA-1234-BC", "North loop")
	reader := &fakeLoadingReader{active: []loading.Snapshot{snapshot}}

	query, err := queries.NewGetChecklistQuery(snapshot.ID)
	require.NoError(t, err)

	handler := queries.NewGetChecklistQueryHandler(reader)
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotApplicable)
}

func TestGetChecklistQueryHandler_Handle_UnknownLoading(t *testing.T) {
	ctx := context.Background()
	query, err := queries.NewGetChecklistQuery("no-such-id")
	require.NoError(t, err)

	handler := queries.NewGetChecklistQueryHandler(&fakeLoadingReader{})
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
