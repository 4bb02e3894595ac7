package restaurant

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/flavorithm/flavorithm/internal/recommend"
	"github.com/flavorithm/flavorithm/internal/repositories"
)

// OrderPublisher receives completed orders, e.g. a Kafka producer. A nil
// publisher disables eventing.
type OrderPublisher interface {
	PublishOrderCompleted(order *models.Order) error
}

// Deps bundles the stores and optional collaborators a Restaurant needs.
type Deps struct {
	Menu      repositories.MenuItemRepository
	Members   repositories.MemberRepository
	Allergies repositories.AllergyRepository
	Orders    repositories.OrderRepository
	Publisher OrderPublisher
}

// Restaurant is the aggregate root: it owns the menu catalog and member
// directory caches, creates orders, and answers allergen and
// recommendation queries. Not safe for concurrent use; the caches are
// mutated only through this instance.
type Restaurant struct {
	name      string
	menuItems map[string]*models.MenuItem
	members   map[string]*models.Member
	orders    []*models.Order
	deps      Deps
	recsys    *recommend.System
	recCount  int
}

// New loads the menu and member collections from the store and registers
// every menu item with the recommendation system.
func New(ctx context.Context, name string, deps Deps, recCount int, rng *rand.Rand) (*Restaurant, error) {
	menuItems, err := deps.Menu.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading menu items: %w", err)
	}
	members, err := deps.Members.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading members: %w", err)
	}

	r := &Restaurant{
		name:      name,
		menuItems: menuItems,
		members:   members,
		deps:      deps,
		recsys:    recommend.New(rng),
		recCount:  recCount,
	}
	for _, item := range menuItems {
		r.recsys.Register(item)
	}
	return r, nil
}

func (r *Restaurant) Name() string { return r.name }

// Menu lists the catalog ordered by item id.
func (r *Restaurant) Menu() []*models.MenuItem {
	items := make([]*models.MenuItem, 0, len(r.menuItems))
	for _, item := range r.menuItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *Restaurant) AddMenuItem(ctx context.Context, item *models.MenuItem) error {
	if err := r.deps.Menu.Upsert(ctx, item); err != nil {
		return err
	}
	r.menuItems[item.ID] = item
	r.recsys.Register(item)
	return nil
}

// AddAllergen records an allergen on a menu item and rewrites the item's
// full allergen set in the store. No-op when already present.
func (r *Restaurant) AddAllergen(ctx context.Context, menuItemID, allergen string) error {
	item, ok := r.menuItems[menuItemID]
	if !ok {
		return nil
	}
	if !item.AddAllergen(allergen) {
		return nil
	}
	return r.deps.Menu.ReplaceAllergens(ctx, item.ID, item.Allergens)
}

// RemoveAllergen is the counterpart of AddAllergen.
func (r *Restaurant) RemoveAllergen(ctx context.Context, menuItemID, allergen string) error {
	item, ok := r.menuItems[menuItemID]
	if !ok {
		return nil
	}
	if !item.RemoveAllergen(allergen) {
		return nil
	}
	return r.deps.Menu.ReplaceAllergens(ctx, item.ID, item.Allergens)
}

// RegisterMember allocates the next M-prefixed member id from the store
// sequence, persists the member, and caches it.
func (r *Restaurant) RegisterMember(ctx context.Context, name, phone string) (*models.Member, error) {
	n, err := r.deps.Members.NextMemberNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating member id: %w", err)
	}
	member := models.NewMember(fmt.Sprintf("M%04d", n), name, phone, 0)
	if err := r.deps.Members.Create(ctx, member); err != nil {
		return nil, err
	}
	r.members[member.MemberID] = member
	return member, nil
}

// GetMember looks up the cache first and falls back to the store,
// populating the cache on a hit. A missing member is (nil, nil).
func (r *Restaurant) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	if member, ok := r.members[memberID]; ok {
		return member, nil
	}
	member, err := r.deps.Members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member != nil {
		r.members[memberID] = member
	}
	return member, nil
}

// AddPoints unconditionally credits the member and persists the balance.
func (r *Restaurant) AddPoints(ctx context.Context, member *models.Member, points int) error {
	member.AddPoints(points)
	return r.deps.Members.UpdatePoints(ctx, member.MemberID, member.Points)
}

// UsePoints deducts points when the balance covers them. The bool reports
// whether the deduction happened; an insufficient balance is not an error.
func (r *Restaurant) UsePoints(ctx context.Context, member *models.Member, points int) (bool, error) {
	if !member.UsePoints(points) {
		return false, nil
	}
	if err := r.deps.Members.UpdatePoints(ctx, member.MemberID, member.Points); err != nil {
		return true, err
	}
	return true, nil
}

// AddAllergy stores a new allergy for the member and appends it to the
// member's in-memory list. An empty severity defaults to Moderate.
func (r *Restaurant) AddAllergy(ctx context.Context, member *models.Member, allergen string, severity models.Severity) (*models.Allergy, error) {
	if severity == "" {
		severity = models.SeverityModerate
	}
	allergy := &models.Allergy{
		MemberID: member.MemberID,
		Allergen: allergen,
		Severity: severity,
	}
	if _, err := r.deps.Allergies.Create(ctx, allergy); err != nil {
		return nil, err
	}
	member.Allergies = append(member.Allergies, *allergy)
	return allergy, nil
}

// RemoveAllergy deletes the allergy scoped to this member and prunes the
// in-memory list regardless of whether the store still had the row.
func (r *Restaurant) RemoveAllergy(ctx context.Context, member *models.Member, allergyID int64) (bool, error) {
	removed, err := r.deps.Allergies.Delete(ctx, allergyID, member.MemberID)

	kept := member.Allergies[:0]
	for _, a := range member.Allergies {
		if a.AllergyID != allergyID {
			kept = append(kept, a)
		}
	}
	member.Allergies = kept

	return removed, err
}

// RefreshAllergies replaces the member's in-memory allergy list with the
// store's view. Local additions since the last refresh are overwritten.
func (r *Restaurant) RefreshAllergies(ctx context.Context, member *models.Member) ([]models.Allergy, error) {
	allergies, err := r.deps.Allergies.GetAllForMember(ctx, member.MemberID)
	if err != nil {
		return nil, err
	}
	member.Allergies = allergies
	return allergies, nil
}

// CreateOrder opens a pending order for the customer and tracks it in the
// session order list.
func (r *Restaurant) CreateOrder(customer models.Customer) *models.Order {
	order := models.NewOrder(customer)
	r.orders = append(r.orders, order)
	return order
}

// Orders lists every order created this session.
func (r *Restaurant) Orders() []*models.Order { return r.orders }

// CompleteOrder finishes the order, persists its header and line items,
// stores the member's new points and favorite counts, and publishes an
// event when a publisher is configured.
func (r *Restaurant) CompleteOrder(ctx context.Context, order *models.Order) error {
	if order.Status == models.OrderCompleted {
		return fmt.Errorf("order %s is already completed", order.OrderID)
	}
	order.Complete()

	if member, ok := order.Customer.(*models.Member); ok {
		if err := r.deps.Members.UpdatePoints(ctx, member.MemberID, member.Points); err != nil {
			return err
		}
		for itemID := range order.ItemQuantities() {
			if err := r.deps.Members.UpsertFavorite(ctx, member.MemberID, itemID, member.FavoriteItems[itemID]); err != nil {
				return err
			}
		}
	}

	if err := r.deps.Orders.Create(ctx, order); err != nil {
		return err
	}

	if r.deps.Publisher != nil {
		if err := r.deps.Publisher.PublishOrderCompleted(order); err != nil {
			return fmt.Errorf("publishing order %s: %w", order.OrderID, err)
		}
	}
	return nil
}

// Recommendations returns the configured number of menu items for the
// member, ranked by favorites with random padding.
func (r *Restaurant) Recommendations(member *models.Member) []*models.MenuItem {
	return r.recsys.Personal(member, r.recCount)
}

// CheckMenuItemAllergens cross-references one menu item against a member's
// allergies, independent of any active order. Unknown items and members
// without allergies yield no warnings.
func (r *Restaurant) CheckMenuItemAllergens(menuItemID string, member *models.Member) []string {
	item, ok := r.menuItems[menuItemID]
	if !ok || len(member.Allergies) == 0 {
		return nil
	}
	return member.WarningsFor(item)
}
