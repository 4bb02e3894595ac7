package factories

import (
	"math/rand"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem() models.MenuItem {
	category := randomCategory()
	return models.MenuItem{
		ID:        fake.UUID().V4(),
		Name:      randomDishName(category),
		Price:     fake.Float64(2, 40, 250),
		Category:  category,
		Allergens: randomAllergens(),
	}
}

func randomCategory() string {
	categories := []string{"Soup", "Noodle", "Main", "Side", "Salad", "Appetizer", "Dessert", "Drink"}
	return categories[rand.Intn(len(categories))]
}

func randomDishName(category string) string {
	dishes := map[string][]string{
		"Soup":      {"Tom Yum Kung", "Tom Kha Gai", "Clear Noodle Soup", "Miso Soup"},
		"Noodle":    {"Pad Thai", "Pad See Ew", "Drunken Noodles", "Boat Noodles"},
		"Main":      {"Green Curry", "Stir Fried Thai Basil", "Omelette", "Fried Pork with Garlic", "Massaman Curry"},
		"Side":      {"Steamed Rice", "Sticky Rice", "Roti", "Fried Egg"},
		"Salad":     {"Som Tam", "Larb Gai", "Glass Noodle Salad", "Yum Woon Sen"},
		"Appetizer": {"Satay", "Spring Rolls", "Fish Cakes", "Chicken Wings"},
		"Dessert":   {"Mango Sticky Rice", "Coconut Ice Cream", "Banana Roti", "Thai Custard"},
		"Drink":     {"Thai Iced Tea", "Fresh Water", "Lemongrass Juice", "Coconut Water"},
	}
	if names, ok := dishes[category]; ok {
		return names[rand.Intn(len(names))]
	}
	return "Special of the Day"
}

func randomAllergens() []string {
	allAllergens := []string{"peanut", "shellfish", "fish", "egg", "soy", "gluten", "milk", "sesame"}
	count := rand.Intn(3) // 0 to 2 allergens
	allergens := make([]string, 0, count)
	for i := 0; i < count; i++ {
		candidate := allAllergens[rand.Intn(len(allAllergens))]
		seen := false
		for _, a := range allergens {
			if a == candidate {
				seen = true
			}
		}
		if !seen {
			allergens = append(allergens, candidate)
		}
	}
	return allergens
}
