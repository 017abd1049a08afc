package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lodging/internal/delivery/context"
	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/usecase"
	"lodging/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type lodgingService struct {
	lodgingRepo repository.LodgingRepository
	logger      *slog.Logger
}

// LodgingServiceParams holds dependencies for LodgingService, injected by Fx.
type LodgingServiceParams struct {
	fx.In

	LodgingRepo repository.LodgingRepository
	Logger      *slog.Logger
}

// NewLodgingService is the constructor for lodgingService.
func NewLodgingService(params LodgingServiceParams) usecase.LodgingUsecase {
	return &lodgingService{
		lodgingRepo: params.LodgingRepo,
		logger:      params.Logger,
	}
}

func (srv *lodgingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a lodging after the entity invariants accept it.
func (srv *lodgingService) Create(ctx context.Context, input *usecase.CreateLodgingInput) (*entity.Lodging, error) {
	lodging, err := entity.NewLodging(entity.LodgingParams{
		Name:           input.Name,
		Description:    input.Description,
		Address:        input.Address,
		City:           input.City,
		Country:        input.Country,
		Price:          input.Price,
		StarRating:     input.StarRating,
		CustomerRating: input.CustomerRating,
		Category:       toCategory(input.Category),
		AvailableFrom:  input.AvailableFrom,
		AvailableTo:    input.AvailableTo,
		MaxOccupancy:   input.MaxOccupancy,
		CheckInTime:    input.CheckInTime,
		CheckOutTime:   input.CheckOutTime,
	})
	if err != nil {
		return nil, err
	}

	if err := srv.lodgingRepo.Create(ctx, lodging); err != nil {
		return nil, errors.Wrap(err, "failed to create lodging")
	}

	srv.log(ctx).Info("Lodging created", slog.Any("lodgingID", lodging.ID), slog.String("category", lodging.Category.String()))

	return lodging, nil
}

// Update applies a partial update and re-checks every invariant before persisting.
func (srv *lodgingService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateLodgingInput) (*entity.Lodging, error) {
	lodging, err := srv.lodgingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLodgingError(err, "failed to find lodging")
	}

	applyLodgingUpdate(lodging, input)
	if err := lodging.Validate(); err != nil {
		return nil, err
	}

	if err := srv.lodgingRepo.Update(ctx, lodging); err != nil {
		return nil, mapLodgingError(err, "failed to update lodging")
	}

	srv.log(ctx).Info("Lodging updated", slog.Any("lodgingID", id))

	return lodging, nil
}

func applyLodgingUpdate(lodging *entity.Lodging, input *usecase.UpdateLodgingInput) {
	setTrimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setTrimmed(&lodging.Name, input.Name)
	setTrimmed(&lodging.Description, input.Description)
	setTrimmed(&lodging.Address, input.Address)
	setTrimmed(&lodging.City, input.City)
	setTrimmed(&lodging.Country, input.Country)
	setTrimmed(&lodging.CheckInTime, input.CheckInTime)
	setTrimmed(&lodging.CheckOutTime, input.CheckOutTime)

	if input.Price != nil {
		lodging.Price = *input.Price
	}
	if input.StarRating != nil {
		lodging.StarRating = *input.StarRating
	}
	if input.CustomerRating != nil {
		lodging.CustomerRating = *input.CustomerRating
	}
	if input.Category != nil {
		lodging.Category = toCategory(*input.Category)
	}
	if input.AvailableFrom != nil {
		lodging.AvailableFrom = *input.AvailableFrom
	}
	if input.AvailableTo != nil {
		lodging.AvailableTo = *input.AvailableTo
	}
	if input.MaxOccupancy != nil {
		lodging.MaxOccupancy = *input.MaxOccupancy
	}
}

func (srv *lodgingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.lodgingRepo.Delete(ctx, id); err != nil {
		return mapLodgingError(err, "failed to delete lodging")
	}

	srv.log(ctx).Info("Lodging deleted", slog.Any("lodgingID", id))

	return nil
}

func (srv *lodgingService) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error) {
	lodging, err := srv.lodgingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLodgingError(err, "failed to find lodging")
	}

	return lodging, nil
}

// Search lists lodgings matching the filters. The page size is capped at MaxSearchLimit.
func (srv *lodgingService) Search(ctx context.Context, input *usecase.SearchLodgingsInput) ([]*entity.Lodging, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	filter := repository.LodgingFilter{
		City:         strings.TrimSpace(input.City),
		Country:      strings.TrimSpace(input.Country),
		MinStars:     input.MinStars,
		MaxPrice:     input.MaxPrice,
		AvailableOn:  input.AvailableOn,
		MinOccupancy: input.MinOccupancy,
		SortBy:       repository.LodgingSort(input.SortBy),
		Descending:   input.Order == "desc",
		Limit:        input.Limit,
		Offset:       input.Offset,
	}
	if input.Category != "" {
		category, ok := entity.ParseCategory(input.Category)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("category: must be one of HOTEL, HOSTEL, DEPARTMENT, BED_AND_BREAKFAST")
		}
		filter.Category = category
	}
	if filter.Limit <= 0 || filter.Limit > usecase.MaxSearchLimit {
		filter.Limit = usecase.MaxSearchLimit
	}

	lodgings, err := srv.lodgingRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search lodgings")
	}

	return lodgings, nil
}

// toCategory normalises user input. Unknown values are kept verbatim so the
// entity invariant reports them.
func toCategory(raw string) entity.Category {
	if category, ok := entity.ParseCategory(raw); ok {
		return category
	}

	return entity.Category(raw)
}

func mapLodgingError(err error, msg string) error {
	if errors.Is(err, repository.ErrLodgingNotFound) {
		return errors.Wrap(domainerrors.ErrLodgingNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
