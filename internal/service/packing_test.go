package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkanjana/travel-planner/internal/domain"
	"github.com/pkanjana/travel-planner/internal/service"
)

func packingTrip() domain.Trip {
	return domain.Trip{ID: "trip-1", Name: "Trek", Destination: "Pai",
		StartDate: "2026-06-01", EndDate: "2026-06-04"}
}

func TestPackingService_Add_DefaultsAndStartsUnpacked(t *testing.T) {
	var captured domain.PackingItem
	svc := service.NewPackingService(tripGetter(packingTrip()), &mockPackingItemRepo{
		create: func(_ context.Context, item domain.PackingItem) error {
			captured = item
			return nil
		},
	})

	got, err := svc.Add(context.Background(), "trip-1", domain.PackingItem{
		Item:   "  Headlamp  ",
		Packed: true, // clients cannot create pre-packed items
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Headlamp", captured.Item)
	assert.Equal(t, domain.PackingOther, captured.Category, "category defaults to other")
	assert.Equal(t, 1, captured.Quantity, "quantity defaults to 1")
	assert.False(t, captured.Packed)
}

func TestPackingService_Add_Validation(t *testing.T) {
	svc := service.NewPackingService(tripGetter(packingTrip()), &mockPackingItemRepo{})
	ctx := context.Background()

	_, err := svc.Add(ctx, "trip-1", domain.PackingItem{Item: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Add(ctx, "trip-1", domain.PackingItem{Item: "Boots", Category: "footwear"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Add(ctx, "trip-1", domain.PackingItem{Item: "Boots", Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingService_TogglePacked_Flips(t *testing.T) {
	stored := domain.PackingItem{
		ID: "item-1", TripID: "trip-1",
		Category: domain.PackingClothes, Item: "Fleece", Quantity: 1, Packed: false,
	}
	var captured domain.PackingItem
	svc := service.NewPackingService(tripGetter(packingTrip()), &mockPackingItemRepo{
		getByID: func(_ context.Context, id string) (domain.PackingItem, error) {
			if id != stored.ID {
				return domain.PackingItem{}, domain.ErrNotFound
			}
			return stored, nil
		},
		update: func(_ context.Context, item domain.PackingItem) error {
			captured = item
			return nil
		},
	})

	got, err := svc.TogglePacked(context.Background(), "item-1")

	require.NoError(t, err)
	assert.True(t, got.Packed)
	assert.True(t, captured.Packed)

	_, err = svc.TogglePacked(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPackingService_Progress(t *testing.T) {
	items := []domain.PackingItem{
		{ID: "1", Category: domain.PackingClothes, Item: "Shirt", Packed: true},
		{ID: "2", Category: domain.PackingClothes, Item: "Shorts", Packed: false},
		{ID: "3", Category: domain.PackingElectronics, Item: "Charger", Packed: true},
	}
	svc := service.NewPackingService(tripGetter(packingTrip()), &mockPackingItemRepo{
		listByTripID: func(_ context.Context, _ string) ([]domain.PackingItem, error) {
			return items, nil
		},
	})

	progress, err := svc.Progress(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.Equal(t, 2, progress.Packed)
	assert.Equal(t, 3, progress.Total)
	assert.InDelta(t, 66.67, progress.Percent, 0.01)
	require.Len(t, progress.Categories, len(domain.PackingCategories))
	assert.Equal(t, 1, progress.Categories[0].Packed, "clothes is the first fixed category")
	assert.Equal(t, 2, progress.Categories[0].Total)
}
