package domain

import "context"

// DishCatalog holds the canonical dish records that stations reference.
// Implementations can be in-memory, file-backed, or generated.
type DishCatalog interface {
	Add(ctx context.Context, dish *Dish) (string, error)
	Get(ctx context.Context, id string) (*Dish, error)
	FindByName(ctx context.Context, name string) (*Dish, error)
	List(ctx context.Context) ([]DishSummary, error)
	Search(ctx context.Context, query string) ([]DishSummary, error)
}

// DishSummary is a lightweight view of a catalog dish for listing.
type DishSummary struct {
	ID       string
	Name     string
	Cuisine  CuisineType
	PrepTime int
	Price    float64
}
