package repositories

import (
	"context"

	"github.com/flavorithm/flavorithm/internal/models"
)

type MenuItemRepository interface {
	Upsert(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	GetAll(ctx context.Context) (map[string]*models.MenuItem, error)
	ReplaceAllergens(ctx context.Context, itemID string, allergens []string) error
	GetAllergens(ctx context.Context, itemID string) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, memberID string) (*models.Member, error)
	GetAll(ctx context.Context) (map[string]*models.Member, error)
	NextMemberNumber(ctx context.Context) (int64, error)
	UpdatePoints(ctx context.Context, memberID string, points int) error
	UpsertFavorite(ctx context.Context, memberID, menuItemID string, count int) error
	GetFavorites(ctx context.Context, memberID string) (map[string]int, error)
	Count(ctx context.Context) (int, error)
}

type AllergyRepository interface {
	Create(ctx context.Context, allergy *models.Allergy) (int64, error)
	GetByID(ctx context.Context, allergyID int64) (*models.Allergy, error)
	GetAllForMember(ctx context.Context, memberID string) ([]models.Allergy, error)
	Delete(ctx context.Context, allergyID int64, memberID string) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]models.OrderRecord, error)
	Count(ctx context.Context) (int, error)
}
