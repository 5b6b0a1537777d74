package catalog

import (
	"testing"

	"github.com/mmynk/billdesk/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	products := c.Products()
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].ID != "bed" {
		t.Errorf("expected bed first, got %s", products[0].ID)
	}

	bed, ok := c.Lookup("bed")
	if !ok {
		t.Fatal("expected to find bed")
	}
	if bed.Name != "King size bed" || bed.Price != 25000 {
		t.Errorf("unexpected bed entry: %+v", bed)
	}

	if _, ok := c.Lookup("wardrobe"); ok {
		t.Error("expected unknown product lookup to fail")
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	c := New([]models.Product{{ID: "a", Name: "A", Price: 1}})
	products := c.Products()
	products[0].Price = 999

	got, _ := c.Lookup("a")
	if got.Price != 1 {
		t.Errorf("catalog mutated through Products(): price = %v", got.Price)
	}
}

func TestNewIgnoresDuplicateIDs(t *testing.T) {
	c := New([]models.Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	})
	if len(c.Products()) != 1 {
		t.Fatalf("expected duplicates to be dropped, got %d products", len(c.Products()))
	}
	if p, _ := c.Lookup("a"); p.Name != "first" {
		t.Errorf("expected first entry to win, got %q", p.Name)
	}
}
