package models

import "fmt"

// Customer is either a walk-in Guest or a loyalty Member. Code that needs
// the loyalty capability type-asserts to *Member.
type Customer interface {
	CustomerName() string
	CustomerPhone() string
}

type Guest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// OrderHistory is caller-managed; the core never appends to it.
	OrderHistory []*Order `json:"order_history,omitempty"`
}

func (g *Guest) CustomerName() string  { return g.Name }
func (g *Guest) CustomerPhone() string { return g.Phone }

// Member is a customer enrolled in the loyalty programme. FavoriteItems
// counts how many times each menu item appeared in a completed order.
// Allergies mirrors store state and is only authoritative right after a
// refresh.
type Member struct {
	MemberID      string         `json:"member_id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Points        int            `json:"points"`
	FavoriteItems map[string]int `json:"favorite_items"`
	Allergies     []Allergy      `json:"allergies"`
}

func NewMember(memberID, name, phone string, points int) *Member {
	return &Member{
		MemberID:      memberID,
		Name:          name,
		Phone:         phone,
		Points:        points,
		FavoriteItems: make(map[string]int),
	}
}

func (m *Member) CustomerName() string  { return m.Name }
func (m *Member) CustomerPhone() string { return m.Phone }

func (m *Member) AddPoints(points int) {
	m.Points += points
}

// UsePoints deducts points from the balance. It fails, leaving the balance
// unchanged, when the requested amount exceeds it.
func (m *Member) UsePoints(points int) bool {
	if points > m.Points {
		return false
	}
	m.Points -= points
	return true
}

// BumpFavorite increments the order count for a menu item, starting at 1,
// and returns the new count.
func (m *Member) BumpFavorite(menuItemID string) int {
	if m.FavoriteItems == nil {
		m.FavoriteItems = make(map[string]int)
	}
	m.FavoriteItems[menuItemID]++
	return m.FavoriteItems[menuItemID]
}

// WarningsFor cross-references the member's allergies against the item's
// allergen set. One warning per matching allergy.
func (m *Member) WarningsFor(item *MenuItem) []string {
	var warnings []string
	for _, allergy := range m.Allergies {
		if item.HasAllergen(allergy.Allergen) {
			warnings = append(warnings, fmt.Sprintf("%s contains %s (Severity: %s)", item.Name, allergy.Allergen, allergy.Severity))
		}
	}
	return warnings
}
