package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
)

func TestCreatePartDefaultsThreshold(t *testing.T) {
	svc := NewPartService(newTestStore(t))

	part, err := svc.CreatePart(context.Background(), &PartInput{
		Name:     "  Shock absorber  ",
		Code:     "SA-200",
		Quantity: 8,
		Price:    399.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shock absorber", part.Name)
	assert.Equal(t, entity.DefaultThreshold, part.Threshold)
	assert.Equal(t, int64(39999), part.Price)
	assert.NotEqual(t, uuid.Nil, part.ID)
}

func TestUpdatePart(t *testing.T) {
	svc := NewPartService(newTestStore(t))
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, &PartInput{Name: "Old name", Quantity: 5, Price: 10, Threshold: 3})
	require.NoError(t, err)

	updated, err := svc.UpdatePart(ctx, part.ID, &PartInput{Name: "New name", Quantity: 20, Price: 15, Threshold: 7})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, 20, updated.Quantity)
	assert.Equal(t, int64(1500), updated.Price)
	assert.Equal(t, 7, updated.Threshold)
	assert.Equal(t, part.ID, updated.ID)

	_, err = svc.UpdatePart(ctx, uuid.New(), &PartInput{Name: "x"})
	require.Error(t, err)
}

func TestDeletePart(t *testing.T) {
	svc := NewPartService(newTestStore(t))
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, &PartInput{Name: "Mirror", Quantity: 2, Price: 55})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePart(ctx, part.ID))
	assert.Error(t, svc.DeletePart(ctx, part.ID))

	_, err = svc.GetPart(ctx, part.ID)
	require.Error(t, err)
}

func TestListPartsSearch(t *testing.T) {
	svc := NewPartService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.CreatePart(ctx, &PartInput{Name: "Oil filter", Code: "OF-1", Quantity: 10, Price: 30})
	require.NoError(t, err)
	_, err = svc.CreatePart(ctx, &PartInput{Name: "Air filter", Code: "AF-1", Quantity: 10, Price: 25})
	require.NoError(t, err)

	assert.Len(t, svc.ListParts(ctx, ""), 2)
	assert.Len(t, svc.ListParts(ctx, "filter"), 2)

	byName := svc.ListParts(ctx, "oil")
	require.Len(t, byName, 1)
	assert.Equal(t, "Oil filter", byName[0].Name)

	byCode := svc.ListParts(ctx, "af-1")
	require.Len(t, byCode, 1)
	assert.Equal(t, "Air filter", byCode[0].Name)
}

func TestListLowStock(t *testing.T) {
	s := newTestStore(t)
	svc := NewPartService(s)
	ctx := context.Background()

	_, err := svc.CreatePart(ctx, &PartInput{Name: "Plenty", Quantity: 50, Price: 10, Threshold: 5})
	require.NoError(t, err)
	_, err = svc.CreatePart(ctx, &PartInput{Name: "Running out", Quantity: 3, Price: 10, Threshold: 5})
	require.NoError(t, err)
	// Fully depleted rows are not in the low-stock band
	_, err = svc.CreatePart(ctx, &PartInput{Name: "Gone", Quantity: 0, Price: 10, Threshold: 5})
	require.NoError(t, err)

	low := svc.ListLowStock(ctx)
	require.Len(t, low, 1)
	assert.Equal(t, "Running out", low[0].Name)
}

func TestDirectStockEditRaisesNoAlert(t *testing.T) {
	s := newTestStore(t)
	svc := NewPartService(s)
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, &PartInput{Name: "Quiet part", Quantity: 20, Price: 10, Threshold: 5})
	require.NoError(t, err)

	_, err = svc.UpdatePart(ctx, part.ID, &PartInput{Name: "Quiet part", Quantity: 1, Price: 10, Threshold: 5})
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		assert.Empty(t, st.Notifications)
	})
}
