package models_test

import (
	"testing"

	"github.com/flavorithm/flavorithm/internal/models"
)

func TestOrderTotalRoundTrip(t *testing.T) {
	t.Parallel()
	guest := &models.Guest{Name: "Walk In", Phone: "000"}
	order := models.NewOrder(guest)

	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100}
	soup := &models.MenuItem{ID: "2", Name: "Soup", Price: 50}

	order.AddItem(padThai)
	order.AddItem(soup)
	if order.TotalAmount != 150 {
		t.Fatalf("expected total 150, got %v", order.TotalAmount)
	}

	order.RemoveItem(soup)
	if order.TotalAmount != 100 {
		t.Fatalf("expected total 100 after removal, got %v", order.TotalAmount)
	}

	// Removing an item that is not in the order is a no-op.
	order.RemoveItem(soup)
	if order.TotalAmount != 100 || len(order.Items) != 1 {
		t.Fatalf("expected unchanged order, got total %v with %d items", order.TotalAmount, len(order.Items))
	}
}

func TestOrderDuplicateItemsActAsQuantity(t *testing.T) {
	t.Parallel()
	order := models.NewOrder(&models.Guest{Name: "Walk In"})
	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100}

	order.AddItem(padThai)
	order.AddItem(padThai)
	order.AddItem(padThai)
	if order.TotalAmount != 300 {
		t.Fatalf("expected total 300, got %v", order.TotalAmount)
	}

	order.RemoveItem(padThai)
	if order.TotalAmount != 200 || len(order.Items) != 2 {
		t.Fatalf("expected one occurrence removed, got total %v with %d items", order.TotalAmount, len(order.Items))
	}

	quantities := order.ItemQuantities()
	if quantities["1"] != 2 {
		t.Fatalf("expected quantity 2, got %d", quantities["1"])
	}
}

func TestAddItemWarnsButStillAdds(t *testing.T) {
	t.Parallel()
	member := models.NewMember("M0001", "Atisak", "099-999-9999", 0)
	member.Allergies = []models.Allergy{
		{AllergyID: 1, MemberID: "M0001", Allergen: "peanut", Severity: models.SeveritySevere},
	}
	order := models.NewOrder(member)

	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100, Allergens: []string{"peanut"}}
	warnings := order.AddItem(padThai)
	if len(warnings) != 1 || warnings[0] != "Pad Thai contains peanut (Severity: Severe)" {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(order.Items) != 1 {
		t.Fatal("item must be added despite the warning")
	}

	soup := &models.MenuItem{ID: "2", Name: "Soup", Price: 50}
	if warnings := order.AddItem(soup); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestAddItemNoWarningsForGuest(t *testing.T) {
	t.Parallel()
	order := models.NewOrder(&models.Guest{Name: "Walk In"})
	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100, Allergens: []string{"peanut"}}

	if warnings := order.AddItem(padThai); len(warnings) != 0 {
		t.Fatalf("guests get no allergy warnings, got %v", warnings)
	}
}

func TestCompleteAwardsPointsAndFavorites(t *testing.T) {
	t.Parallel()
	member := models.NewMember("M0001", "Atisak", "099-999-9999", 0)
	order := models.NewOrder(member)

	order.AddItem(&models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100})
	order.AddItem(&models.MenuItem{ID: "2", Name: "Satay", Price: 25})

	earned := order.Complete()
	if earned != 12 {
		t.Fatalf("expected floor(125/10) = 12 points earned, got %d", earned)
	}
	if member.Points != 12 {
		t.Fatalf("expected member balance 12, got %d", member.Points)
	}
	if member.FavoriteItems["1"] != 1 || member.FavoriteItems["2"] != 1 {
		t.Fatalf("expected favorite counts of 1, got %v", member.FavoriteItems)
	}
	if order.Status != models.OrderCompleted {
		t.Fatalf("expected status %q, got %q", models.OrderCompleted, order.Status)
	}

	// Completing twice must not double the side effects.
	if earned := order.Complete(); earned != 0 {
		t.Fatalf("second completion must be a no-op, got %d points", earned)
	}
	if member.Points != 12 {
		t.Fatalf("expected balance to stay at 12, got %d", member.Points)
	}
}

func TestCompleteEachDuplicateBumpsFavorites(t *testing.T) {
	t.Parallel()
	member := models.NewMember("M0001", "Atisak", "099-999-9999", 0)
	order := models.NewOrder(member)

	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100}
	order.AddItem(padThai)
	order.AddItem(padThai)
	order.Complete()

	if member.FavoriteItems["1"] != 2 {
		t.Fatalf("expected favorite count 2 for duplicates, got %d", member.FavoriteItems["1"])
	}
}

func TestCompleteLeavesGuestUntouched(t *testing.T) {
	t.Parallel()
	guest := &models.Guest{Name: "Walk In"}
	order := models.NewOrder(guest)
	order.AddItem(&models.MenuItem{ID: "1", Name: "Pad Thai", Price: 125})

	if earned := order.Complete(); earned != 0 {
		t.Fatalf("guests earn no points, got %d", earned)
	}
	if order.CustomerID() != "NON-MEMBER" {
		t.Fatalf("expected NON-MEMBER customer id, got %q", order.CustomerID())
	}
}

func TestCompletedOrderRejectsMutation(t *testing.T) {
	t.Parallel()
	order := models.NewOrder(&models.Guest{Name: "Walk In"})
	padThai := &models.MenuItem{ID: "1", Name: "Pad Thai", Price: 100}
	order.AddItem(padThai)
	order.Complete()

	order.AddItem(&models.MenuItem{ID: "2", Name: "Soup", Price: 50})
	order.RemoveItem(padThai)
	if order.TotalAmount != 100 || len(order.Items) != 1 {
		t.Fatalf("completed order must not mutate, got total %v with %d items", order.TotalAmount, len(order.Items))
	}
}

func TestNewOrderIDsAreUnique(t *testing.T) {
	t.Parallel()
	a := models.NewOrder(&models.Guest{Name: "A"})
	b := models.NewOrder(&models.Guest{Name: "B"})
	if a.OrderID == "" || a.OrderID == b.OrderID {
		t.Fatalf("expected distinct non-empty order ids, got %q and %q", a.OrderID, b.OrderID)
	}
	if a.Status != models.OrderPending {
		t.Fatalf("new orders start Pending, got %q", a.Status)
	}
}
