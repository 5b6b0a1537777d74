// Package catalog provides the static product list offered at the counter.
package catalog

import "github.com/mmynk/billdesk/internal/models"

// Catalog is a read-only list of products in display order.
type Catalog struct {
	products []models.Product
	byID     map[string]int
}

// New builds a catalog over the given products. Later duplicates of an ID are ignored.
func New(products []models.Product) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(products))}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Default returns the shop's standard catalogue.
func Default() *Catalog {
	return New(defaultProducts)
}

// Products returns a copy of the catalogue in display order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds a product by ID.
func (c *Catalog) Lookup(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

var defaultProducts = []models.Product{
	{
		ID:          "bed",
		Name:        "King size bed",
		Description: "Solid wood bed with storage.",
		Price:       25000,
		Image:       "https://source.unsplash.com/featured/?bed,furniture",
		Tag:         "Bed",
	},
	{
		ID:          "wooden-sofa",
		Name:        "Wooden sofa",
		Description: "Three seater classic wooden sofa.",
		Price:       18000,
		Image:       "https://source.unsplash.com/featured/?wooden,sofa",
		Tag:         "Wooden sofa",
	},
	{
		ID:          "cushion-sofa",
		Name:        "Cushion sofa",
		Description: "Soft cushion sofa for living room.",
		Price:       22000,
		Image:       "https://source.unsplash.com/featured/?cushion,sofa",
		Tag:         "Cushion sofa",
	},
}
