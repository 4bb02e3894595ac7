package models

type MenuItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Category  string   `json:"category"`
	Allergens []string `json:"allergens"`
}

func (m *MenuItem) HasAllergen(allergen string) bool {
	for _, a := range m.Allergens {
		if a == allergen {
			return true
		}
	}
	return false
}

// AddAllergen adds the allergen to the item's set. Returns false when the
// allergen was already present and nothing changed.
func (m *MenuItem) AddAllergen(allergen string) bool {
	if m.HasAllergen(allergen) {
		return false
	}
	m.Allergens = append(m.Allergens, allergen)
	return true
}

// RemoveAllergen removes the allergen from the item's set. Returns false
// when the allergen was absent and nothing changed.
func (m *MenuItem) RemoveAllergen(allergen string) bool {
	for i, a := range m.Allergens {
		if a == allergen {
			m.Allergens = append(m.Allergens[:i], m.Allergens[i+1:]...)
			return true
		}
	}
	return false
}
