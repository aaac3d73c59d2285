package repositories

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	OwnerTourPackage   = "tour_package_id"
	OwnerDestination   = "destination_travel_id"
	OwnerVisaChecklist = "visa_checklist_id"
)

// OptionChanges is a set operation on the price options owned by one item.
// Update entries must be loaded rows so their timestamps survive.
type OptionChanges[O any] struct {
	Create []O
	Update []O
	Delete []string
}

func (c OptionChanges[O]) Empty() bool {
	return len(c.Create) == 0 && len(c.Update) == 0 && len(c.Delete) == 0
}

// saveWithOptions writes item and applies changes to the options it owns in
// a single transaction, demoting other highlighted rows first when
// clearHighlights is set.
func saveWithOptions[T, O any](db *gorm.DB, item *T, ownerColumn, ownerID string, changes OptionChanges[O], clearHighlights bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if clearHighlights {
			if err := unhighlightOthers(tx, new(T), ownerID); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return err
		}
		if len(changes.Delete) > 0 {
			err := tx.Where(ownerColumn+" = ? AND id IN ?", ownerID, changes.Delete).Delete(new(O)).Error
			if err != nil {
				return err
			}
		}
		for i := range changes.Update {
			if err := tx.Save(&changes.Update[i]).Error; err != nil {
				return err
			}
		}
		for i := range changes.Create {
			if err := tx.Create(&changes.Create[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PriceOptionRepository manages the option rows directly. Ownerless rows are
// the standalone catalogue; deletes and lists only ever see those.
type PriceOptionRepository interface {
	CreateClient(ctx context.Context, opt *models.ClientPriceOption) error
	GetClient(ctx context.Context, id string) (*models.ClientPriceOption, error)
	SaveClient(ctx context.Context, opt *models.ClientPriceOption) error
	DeleteClient(ctx context.Context, id string) error
	ListClient(ctx context.Context, paging helper.Paging) ([]models.ClientPriceOption, int64, error)
	ClientNameTaken(ctx context.Context, name string, owner ClientOwner, exceptID string) (bool, error)

	CreateVisa(ctx context.Context, opt *models.VisaPriceOption) error
	GetVisa(ctx context.Context, id string) (*models.VisaPriceOption, error)
	SaveVisa(ctx context.Context, opt *models.VisaPriceOption) error
	DeleteVisa(ctx context.Context, id string) error
	ListVisa(ctx context.Context, paging helper.Paging) ([]models.VisaPriceOption, int64, error)
	VisaDurationTaken(ctx context.Context, days int, visaChecklistID *string, exceptID string) (bool, error)
}

// ClientOwner identifies the scope a client category name must be unique in.
type ClientOwner struct {
	TourPackageID       *string
	DestinationTravelID *string
}

func ClientOwnerOf(opt *models.ClientPriceOption) ClientOwner {
	return ClientOwner{TourPackageID: opt.TourPackageID, DestinationTravelID: opt.DestinationTravelID}
}

type priceOptionRepository struct {
	db *gorm.DB
}

func NewPriceOptionRepository(db *gorm.DB) PriceOptionRepository {
	return &priceOptionRepository{db: db}
}

func nullableEq(column string, value *string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", *value)
	}
}

func standaloneClient(db *gorm.DB) *gorm.DB {
	return db.Where(OwnerTourPackage + " IS NULL AND " + OwnerDestination + " IS NULL")
}

func standaloneVisa(db *gorm.DB) *gorm.DB {
	return db.Where(OwnerVisaChecklist + " IS NULL")
}

func exceptID(id string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == "" {
			return db
		}
		return db.Where("id <> ?", id)
	}
}

func (r *priceOptionRepository) CreateClient(ctx context.Context, opt *models.ClientPriceOption) error {
	return r.db.WithContext(ctx).Create(opt).Error
}

func (r *priceOptionRepository) GetClient(ctx context.Context, id string) (*models.ClientPriceOption, error) {
	var opt models.ClientPriceOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&opt).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *priceOptionRepository) SaveClient(ctx context.Context, opt *models.ClientPriceOption) error {
	return r.db.WithContext(ctx).Save(opt).Error
}

func (r *priceOptionRepository) DeleteClient(ctx context.Context, id string) error {
	return deleteByID[models.ClientPriceOption](r.db.WithContext(ctx), id, standaloneClient)
}

func (r *priceOptionRepository) ListClient(ctx context.Context, paging helper.Paging) ([]models.ClientPriceOption, int64, error) {
	return findPage[models.ClientPriceOption](r.db.WithContext(ctx), nil, paging, "created_at asc", standaloneClient)
}

func (r *priceOptionRepository) ClientNameTaken(ctx context.Context, name string, owner ClientOwner, except string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClientPriceOption{}).
		Where("LOWER(category_name) = LOWER(?)", name).
		Scopes(
			nullableEq(OwnerTourPackage, owner.TourPackageID),
			nullableEq(OwnerDestination, owner.DestinationTravelID),
			exceptID(except),
		).
		Count(&count).Error
	return count > 0, err
}

func (r *priceOptionRepository) CreateVisa(ctx context.Context, opt *models.VisaPriceOption) error {
	return r.db.WithContext(ctx).Create(opt).Error
}

func (r *priceOptionRepository) GetVisa(ctx context.Context, id string) (*models.VisaPriceOption, error) {
	var opt models.VisaPriceOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&opt).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *priceOptionRepository) SaveVisa(ctx context.Context, opt *models.VisaPriceOption) error {
	return r.db.WithContext(ctx).Save(opt).Error
}

func (r *priceOptionRepository) DeleteVisa(ctx context.Context, id string) error {
	return deleteByID[models.VisaPriceOption](r.db.WithContext(ctx), id, standaloneVisa)
}

func (r *priceOptionRepository) ListVisa(ctx context.Context, paging helper.Paging) ([]models.VisaPriceOption, int64, error) {
	return findPage[models.VisaPriceOption](r.db.WithContext(ctx), nil, paging, "created_at asc", standaloneVisa)
}

func (r *priceOptionRepository) VisaDurationTaken(ctx context.Context, days int, visaChecklistID *string, except string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VisaPriceOption{}).
		Where("duration_in_days = ?", days).
		Scopes(nullableEq(OwnerVisaChecklist, visaChecklistID), exceptID(except)).
		Count(&count).Error
	return count > 0, err
}

// deleteByID reports gorm.ErrRecordNotFound when no row had the id.
func deleteByID[T any](db *gorm.DB, id string, scopes ...Scope) error {
	res := db.Scopes(scopes...).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
