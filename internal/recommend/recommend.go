package recommend

import (
	"math/rand"
	"sort"

	"github.com/flavorithm/flavorithm/internal/models"
)

// System ranks menu items for a member from their favorite-item history,
// padding with random picks from the catalog. The rand source is injected
// so callers can make selection deterministic.
type System struct {
	menuItems map[string]*models.MenuItem
	rng       *rand.Rand
}

func New(rng *rand.Rand) *System {
	return &System{
		menuItems: make(map[string]*models.MenuItem),
		rng:       rng,
	}
}

func (s *System) Register(item *models.MenuItem) {
	s.menuItems[item.ID] = item
}

// Personal returns up to n recommendations for the member: favorites ranked
// by order count descending (ties by item id), restricted to items still on
// the menu, padded with random distinct picks. A member with no favorites
// gets a purely random selection. The result is shorter than n when the
// catalog itself is smaller.
func (s *System) Personal(member *models.Member, n int) []*models.MenuItem {
	if len(member.FavoriteItems) == 0 {
		return s.Random(n)
	}

	type favorite struct {
		id    string
		count int
	}
	favorites := make([]favorite, 0, len(member.FavoriteItems))
	for id, count := range member.FavoriteItems {
		favorites = append(favorites, favorite{id: id, count: count})
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].count != favorites[j].count {
			return favorites[i].count > favorites[j].count
		}
		return favorites[i].id < favorites[j].id
	})
	if len(favorites) > n {
		favorites = favorites[:n]
	}

	var recommendations []*models.MenuItem
	chosen := make(map[string]bool)
	for _, f := range favorites {
		if item, ok := s.menuItems[f.id]; ok {
			recommendations = append(recommendations, item)
			chosen[f.id] = true
		}
	}

	// Pad with random picks, never looping past the catalog size.
	for _, item := range s.shuffled() {
		if len(recommendations) >= n {
			break
		}
		if !chosen[item.ID] {
			recommendations = append(recommendations, item)
			chosen[item.ID] = true
		}
	}
	return recommendations
}

// Random returns a uniform sample without replacement of size
// min(n, catalog size).
func (s *System) Random(n int) []*models.MenuItem {
	items := s.shuffled()
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// shuffled returns the catalog in a random order. Items are first sorted by
// id so identical rand seeds yield identical orderings.
func (s *System) shuffled() []*models.MenuItem {
	items := make([]*models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}
