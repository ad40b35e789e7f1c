package queries_test

import (
	"context"
	"testing"
	"time"

	"dockflow/internal/core/application/usecases/queries"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLoadingsQueryHandler_Handle_All(t *testing.T) {
	ctx := context.Background()
	reader := &fakeLoadingReader{active: []loading.Snapshot{
		manualSnapshot(t, "R. Alvarez", "KA-1234-BC", "North loop"),
		manualSnapshot(t, "J. Chen", "KA-5678-DE", "South loop"),
	}}

	query, err := queries.NewListLoadingsQuery("", "")
	require.NoError(t, err)

	handler := queries.NewListLoadingsQueryHandler(reader)
	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "R. Alvarez", responses[0].Driver)
	assert.Equal(t, "Waiting", responses[0].Status)
	assert.Equal(t, "manual", responses[0].Origin)
}

func TestListLoadingsQueryHandler_Handle_StatusFilter(t *testing.T) {
	ctx := context.Background()
	waiting := manualSnapshot(t, "R. Alvarez", "KA-1234-BC", "North loop")
	completed := completedLoading(t, "INV-2031", time.Now())
	reader := &fakeLoadingReader{active: []loading.Snapshot{waiting, completed}}

	query, err := queries.NewListLoadingsQuery("Completed", "")
	require.NoError(t, err)

	handler := queries.NewListLoadingsQueryHandler(reader)
	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, completed.ID, responses[0].ID)
}

func TestListLoadingsQueryHandler_Handle_TextFilter(t *testing.T) {
	ctx := context.Background()
	reader := &fakeLoadingReader{active: []loading.Snapshot{
		manualSnapshot(t, "R. Alvarez", "KA-1234-BC", "North loop"),
		manualSnapshot(t, "J. Chen", "KA-5678-DE", "South loop"),
		completedLoading(t, "INV-2031", time.Now()),
	}}

	handler := queries.NewListLoadingsQueryHandler(reader)

	// Case-insensitive, matches vehicle plates and invoice numbers alike.
	query, err := queries.NewListLoadingsQuery("", "ka-5678")
	require.NoError(t, err)
	responses, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "J. Chen", responses[0].Driver)

	query, err = queries.NewListLoadingsQuery("", "inv-")
	require.NoError(t, err)
	responses, err = handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "INV-2031", responses[0].InvoiceNumber)
}

func TestNewListLoadingsQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListLoadingsQuery("Shipped", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListLoadingsQueryHandler_Handle_NotConstructed(t *testing.T) {
	handler := queries.NewListLoadingsQueryHandler(&fakeLoadingReader{})
	_, err := handler.Handle(context.Background(), queries.ListLoadingsQuery{})

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrListLoadingsQueryIsNotConstructed)
}
