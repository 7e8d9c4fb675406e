package host

import (
	"errors"
	"testing"

	"github.com/napolitain/bulkbuild/internal/models"
)

func TestButtonTriggerPurchase(t *testing.T) {
	g := newTestGame(t)
	b, err := g.Button("hut")
	if err != nil {
		t.Fatalf("Button: %v", err)
	}

	// 5, then 12.5, then 31.25
	for i, want := range []float64{95, 82.5, 51.25} {
		if err := b.TriggerPurchase(); err != nil {
			t.Fatalf("purchase %d: %v", i+1, err)
		}
		if got := g.GetResource(models.Wood); got != want {
			t.Errorf("purchase %d: wood got %v, want %v", i+1, got, want)
		}
	}
	if owned, _ := g.OwnedCount("hut"); owned != 3 {
		t.Errorf("owned: got %d, want 3", owned)
	}
}

func TestButtonInsufficientResourcesChargesNothing(t *testing.T) {
	g := newTestGame(t)
	g.SetResource(models.Minerals, 5) // mine needs 100 wood and 10 minerals
	b, _ := g.Button("mine")

	err := b.TriggerPurchase()
	if !errors.Is(err, models.ErrInsufficientResources) {
		t.Fatalf("got %v, want ErrInsufficientResources", err)
	}
	if g.GetResource(models.Wood) != 100 {
		t.Errorf("wood was charged: %v", g.GetResource(models.Wood))
	}
	if owned, _ := g.OwnedCount("mine"); owned != 0 {
		t.Errorf("owned: got %d, want 0", owned)
	}
}

func TestButtonEnabled(t *testing.T) {
	g := newTestGame(t)

	locked, _ := g.Button("moonOutpost")
	if locked.IsEnabled() {
		t.Error("locked item button should be disabled")
	}
	if err := locked.TriggerPurchase(); !errors.Is(err, models.ErrControlUnavailable) {
		t.Errorf("locked trigger: got %v, want ErrControlUnavailable", err)
	}

	hut, _ := g.Button("hut")
	g.SetButtonEnabled("hut", false)
	if hut.IsEnabled() {
		t.Error("disabled button reports enabled")
	}
	g.SetButtonEnabled("hut", true)
	if !hut.IsEnabled() {
		t.Error("re-enabled button reports disabled")
	}
	if hut.ItemID() != "hut" {
		t.Errorf("ItemID: got %q", hut.ItemID())
	}

	if _, err := g.Button("nope"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("unknown button: got %v, want ErrItemNotFound", err)
	}
}

func TestButtonToleratesRoundingAtExactPrice(t *testing.T) {
	g := newTestGame(t)
	b, _ := g.Button("hut") // first hut costs 5 wood

	g.SetResource(models.Wood, 5*(1-1e-12))
	if err := b.TriggerPurchase(); err != nil {
		t.Fatalf("stock one rounding step short: %v", err)
	}
	if got := g.GetResource(models.Wood); got != 0 {
		t.Errorf("wood got %v, want 0", got)
	}

	g.SetResource(models.Wood, 12.49) // second hut costs 12.5
	if err := b.TriggerPurchase(); !errors.Is(err, models.ErrInsufficientResources) {
		t.Errorf("got %v, want ErrInsufficientResources", err)
	}
}
