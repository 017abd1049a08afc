package postgres

import (
	"context"
	"strings"

	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/repository"
	"lodging/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lodgingSortColumns maps the public sort keys to table columns.
var lodgingSortColumns = map[repository.LodgingSort]string{
	repository.LodgingSortPrice:  "price",
	repository.LodgingSortRating: "customer_rating",
	repository.LodgingSortStars:  "star_rating",
	repository.LodgingSortName:   "name",
}

// lodgingRepository implements the domain.LodgingRepository interface using GORM.
type lodgingRepository struct {
	db *gorm.DB
}

// NewLodgingRepository is the constructor for lodgingRepository.
func NewLodgingRepository(db *gorm.DB) repository.LodgingRepository {
	return &lodgingRepository{db: db}
}

func (repo *lodgingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lodging, error) {
	var lodgingM model.LodgingModel
	if err := repo.db.WithContext(ctx).First(&lodgingM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLodgingNotFound
		}

		return nil, errors.Wrap(err, "failed to find lodging by id")
	}

	return toLodgingDomain(&lodgingM), nil
}

func (repo *lodgingRepository) FindAll(ctx context.Context) ([]*entity.Lodging, error) {
	return repo.Search(ctx, repository.LodgingFilter{})
}

// Search applies every non-zero filter field. Results default to name order.
func (repo *lodgingRepository) Search(ctx context.Context, filter repository.LodgingFilter) ([]*entity.Lodging, error) {
	query := repo.db.WithContext(ctx).Model(&model.LodgingModel{})

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if country := strings.TrimSpace(filter.Country); country != "" {
		query = query.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.MinStars > 0 {
		query = query.Where("star_rating >= ?", filter.MinStars)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.AvailableOn != nil {
		query = query.Where("available_from <= ? AND available_to > ?", *filter.AvailableOn, *filter.AvailableOn)
	}
	if filter.MinOccupancy > 0 {
		query = query.Where("max_occupancy >= ?", filter.MinOccupancy)
	}

	column, ok := lodgingSortColumns[filter.SortBy]
	if !ok {
		column = lodgingSortColumns[repository.LodgingSortName]
	}
	query = query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: filter.Descending}).
		Order("id ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var lodgingMs []*model.LodgingModel
	if err := query.Find(&lodgingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search lodgings")
	}

	lodgings := make([]*entity.Lodging, 0, len(lodgingMs))
	for _, lodgingM := range lodgingMs {
		lodgings = append(lodgings, toLodgingDomain(lodgingM))
	}

	return lodgings, nil
}

func (repo *lodgingRepository) Create(ctx context.Context, lodging *entity.Lodging) error {
	lodgingM := fromLodgingDomain(lodging)

	if err := repo.db.WithContext(ctx).Create(lodgingM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("lodging violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lodging")
	}

	lodging.ID = lodgingM.ID
	lodging.CreatedAt = lodgingM.CreatedAt
	lodging.UpdatedAt = lodgingM.UpdatedAt

	return nil
}

func (repo *lodgingRepository) Update(ctx context.Context, lodging *entity.Lodging) error {
	lodgingM := fromLodgingDomain(lodging)

	result := repo.db.WithContext(ctx).
		Model(&model.LodgingModel{ID: lodging.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(lodgingM)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("lodging violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update lodging")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLodgingNotFound
	}

	lodging.UpdatedAt = lodgingM.UpdatedAt

	return nil
}

func (repo *lodgingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LodgingModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete lodging")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLodgingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLodgingDomain(data *model.LodgingModel) *entity.Lodging {
	if data == nil {
		return nil
	}

	return &entity.Lodging{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		City:           data.City,
		Country:        data.Country,
		Price:          data.Price,
		StarRating:     data.StarRating,
		CustomerRating: data.CustomerRating,
		Category:       entity.Category(data.Category),
		AvailableFrom:  data.AvailableFrom,
		AvailableTo:    data.AvailableTo,
		MaxOccupancy:   data.MaxOccupancy,
		CheckInTime:    data.CheckInTime,
		CheckOutTime:   data.CheckOutTime,
		Timestamps: entity.Timestamps{
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
	}
}

func fromLodgingDomain(data *entity.Lodging) *model.LodgingModel {
	if data == nil {
		return nil
	}

	return &model.LodgingModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		City:           data.City,
		Country:        data.Country,
		Price:          data.Price,
		StarRating:     data.StarRating,
		CustomerRating: data.CustomerRating,
		Category:       data.Category.String(),
		AvailableFrom:  data.AvailableFrom,
		AvailableTo:    data.AvailableTo,
		MaxOccupancy:   data.MaxOccupancy,
		CheckInTime:    data.CheckInTime,
		CheckOutTime:   data.CheckOutTime,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
