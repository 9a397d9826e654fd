// Package menu provides the dish catalog that stations draw their dishes from.
package menu

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
)

// Compile-time interface check.
var _ domain.DishCatalog = (*Catalog)(nil)

// Catalog holds the canonical dish records in memory. Stations hold the same
// pointers, so a dish stays alive as long as the catalog or any station
// references it. Safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	dishes map[string]*domain.Dish
	order  []string // ids in insertion order, for FindByName
	log    *logger.Logger
}

// NewCatalog creates an empty catalog.
func NewCatalog(log *logger.Logger) *Catalog {
	return &Catalog{
		dishes: make(map[string]*domain.Dish),
		log:    log.Named("menu"),
	}
}

// Add stores dish under a new random ID and returns the ID. Adding the same
// pointer twice is rejected with domain.ErrAlreadyExists.
func (c *Catalog) Add(ctx context.Context, dish *domain.Dish) (string, error) {
	if dish == nil {
		return "", fmt.Errorf("adding dish: %w", domain.ErrInvalidArgument)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for id, d := range c.dishes {
		if d == dish {
			return id, domain.ErrAlreadyExists
		}
	}

	id := uuid.NewString()
	c.dishes[id] = dish
	c.order = append(c.order, id)
	c.log.Debug("added dish %q as %s", dish.Name(), id)
	return id, nil
}

// Get returns a dish by ID.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.dishes[id]
	if !ok {
		c.log.Debug("dish not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// FindByName returns the first dish added with the given name.
func (c *Catalog) FindByName(ctx context.Context, name string) (*domain.Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if d := c.dishes[id]; d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("dish %q: %w", name, domain.ErrNotFound)
}

// List returns summaries of every dish sorted by name.
func (c *Catalog) List(ctx context.Context) ([]domain.DishSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.log.Debug("listing all dishes, count=%d", len(c.dishes))

	out := make([]domain.DishSummary, 0, len(c.dishes))
	for _, id := range c.order {
		out = append(out, summarize(id, c.dishes[id]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Search returns dishes whose name, cuisine or ingredients contain query,
// case-insensitively.
func (c *Catalog) Search(ctx context.Context, query string) ([]domain.DishSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	c.log.Debug("searching dishes for: %s", q)

	var out []domain.DishSummary
	for _, id := range c.order {
		if d := c.dishes[id]; matches(d, q) {
			out = append(out, summarize(id, d))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Len returns the number of dishes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dishes)
}

func matches(d *domain.Dish, query string) bool {
	if strings.Contains(strings.ToLower(d.Name()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.CuisineName()), query) {
		return true
	}
	for _, ing := range d.Ingredients() {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

func summarize(id string, d *domain.Dish) domain.DishSummary {
	return domain.DishSummary{
		ID:       id,
		Name:     d.Name(),
		Cuisine:  d.Cuisine(),
		PrepTime: d.PrepTime(),
		Price:    d.Price(),
	}
}
