package impl

import (
	"context"
	"testing"
	"time"

	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	mockRepo "lodging/internal/mocks/repository"
	"lodging/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLodgingService(t *testing.T) (usecase.LodgingUsecase, *mockRepo.MockLodgingRepository) {
	lodgingRepo := mockRepo.NewMockLodgingRepository(t)

	return NewLodgingService(LodgingServiceParams{LodgingRepo: lodgingRepo, Logger: discardLogger()}), lodgingRepo
}

func hotelInput() *usecase.CreateLodgingInput {
	return &usecase.CreateLodgingInput{
		Name:           "Hotel Andes",
		Address:        "Av. Libertador 100",
		City:           "Santiago",
		Country:        "Chile",
		Price:          120,
		StarRating:     4,
		CustomerRating: 8.5,
		Category:       "hotel",
		AvailableFrom:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:    time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxOccupancy:   2,
		CheckInTime:    "15:00",
		CheckOutTime:   "11:00",
	}
}

func existingHotel() *entity.Lodging {
	in := hotelInput()
	lodging, _ := entity.NewLodging(entity.LodgingParams{
		Name: in.Name, Address: in.Address, City: in.City, Country: in.Country,
		Price: in.Price, StarRating: in.StarRating, CustomerRating: in.CustomerRating,
		Category: entity.CategoryHotel, AvailableFrom: in.AvailableFrom, AvailableTo: in.AvailableTo,
		MaxOccupancy: in.MaxOccupancy, CheckInTime: in.CheckInTime, CheckOutTime: in.CheckOutTime,
	})

	return lodging
}

func TestLodgingService_Create(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Lodging")).Return(nil)

	lodging, err := srv.Create(ctx, hotelInput())

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryHotel, lodging.Category)
	assert.NotEqual(t, uuid.Nil, lodging.ID)
}

func TestLodgingService_Create_InvalidCategory(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	input := hotelInput()
	input.Category = "CASTLE"

	_, err := srv.Create(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "category")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLodgingService_Update_RevalidatesInvariants(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	ctx := context.Background()
	lodging := existingHotel()
	stars := 7

	repo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)

	_, err := srv.Update(ctx, lodging.ID, &usecase.UpdateLodgingInput{StarRating: &stars})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "starRating")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLodgingService_Update(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	ctx := context.Background()
	lodging := existingHotel()
	price := 99.5
	category := "bed and breakfast"

	repo.EXPECT().FindByID(ctx, lodging.ID).Return(lodging, nil)
	repo.EXPECT().Update(ctx, lodging).Return(nil)

	updated, err := srv.Update(ctx, lodging.ID, &usecase.UpdateLodgingInput{Price: &price, Category: &category})

	require.NoError(t, err)
	assert.InDelta(t, 99.5, updated.Price, 0.001)
	assert.Equal(t, entity.CategoryBedAndBreakfast, updated.Category)
	assert.Equal(t, "Hotel Andes", updated.Name)
}

func TestLodgingService_NotFound(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrLodgingNotFound)
	repo.EXPECT().Delete(ctx, id).Return(repository.ErrLodgingNotFound)

	_, err := srv.FindByID(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrLodgingNotFound))

	err = srv.Delete(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrLodgingNotFound))
}

func TestLodgingService_Search(t *testing.T) {
	srv, repo := createTestLodgingService(t)
	ctx := context.Background()
	on := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Search(ctx, repository.LodgingFilter{
		City:        "Santiago",
		Category:    entity.CategoryHostel,
		MinStars:    3,
		AvailableOn: &on,
		SortBy:      repository.LodgingSortPrice,
		Descending:  true,
		Limit:       usecase.MaxSearchLimit,
	}).Return([]*entity.Lodging{existingHotel()}, nil)

	lodgings, err := srv.Search(ctx, &usecase.SearchLodgingsInput{
		City:        " Santiago",
		Category:    "hostel",
		MinStars:    3,
		AvailableOn: &on,
		SortBy:      "price",
		Order:       "desc",
		Limit:       500,
	})

	require.NoError(t, err)
	assert.Len(t, lodgings, 1)
}

func TestLodgingService_Search_InvalidInput(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.SearchLodgingsInput
	}{
		{"unknown category", &usecase.SearchLodgingsInput{Category: "castle"}},
		{"unknown sort", &usecase.SearchLodgingsInput{SortBy: "distance"}},
		{"stars out of range", &usecase.SearchLodgingsInput{MinStars: 9}},
		{"bad order", &usecase.SearchLodgingsInput{Order: "sideways"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, repo := createTestLodgingService(t)

			_, err := srv.Search(context.Background(), tc.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}
