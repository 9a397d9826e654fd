// Package layout loads kitchen layouts from YAML and builds them into a dish
// catalog and a station registry.
//
// A layout lists dishes once, under a key, and stations refer to dishes by
// key. Every station listing the same key receives the same *domain.Dish.
package layout

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
	"github.com/hammamikhairi/brigade/internal/registry"
	"github.com/hammamikhairi/brigade/internal/station"
)

//go:embed default.yaml
var defaultLayout []byte

// File is a parsed kitchen layout.
type File struct {
	Dishes   []Dish    `yaml:"dishes"`
	Stations []Station `yaml:"stations"`
}

// Dish describes one recipe. Key defaults to Name.
type Dish struct {
	Key         string       `yaml:"key"`
	Name        string       `yaml:"name"`
	PrepTime    int          `yaml:"prep_time"`
	Price       float64      `yaml:"price"`
	Cuisine     string       `yaml:"cuisine"`
	Ingredients []Ingredient `yaml:"ingredients"`
}

// Ingredient is used both for recipe lines and for stock deliveries.
type Ingredient struct {
	Name             string  `yaml:"name"`
	Quantity         float64 `yaml:"quantity"`
	RequiredQuantity float64 `yaml:"required_quantity"`
	Price            float64 `yaml:"price"`
}

// Station describes one station, its dish keys and its opening stock.
type Station struct {
	Name   string       `yaml:"name"`
	Dishes []string     `yaml:"dishes"`
	Stock  []Ingredient `yaml:"stock"`
}

// Catalog is the part of domain.DishCatalog that Build needs.
type Catalog interface {
	Add(ctx context.Context, dish *domain.Dish) (string, error)
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLayout, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return f, nil
}

// Default returns the built-in demo kitchen.
func Default() *File {
	f, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return f
}

// Validate checks that dish keys are unique and that every station refers
// to a known dish. Dish names are not checked here: invalid names are
// clamped to domain.UnknownName when the dish is built.
func (f *File) Validate() error {
	var errs []error
	keys := make(map[string]bool, len(f.Dishes))
	for i, d := range f.Dishes {
		key := d.key()
		if key == "" {
			errs = append(errs, fmt.Errorf("dish %d: missing key and name", i))
			continue
		}
		if keys[key] {
			errs = append(errs, fmt.Errorf("dish %q: %w", key, domain.ErrAlreadyExists))
		}
		keys[key] = true
	}
	for _, s := range f.Stations {
		for _, key := range s.Dishes {
			if !keys[key] {
				errs = append(errs, fmt.Errorf("station %q: dish %q: %w", s.Name, key, domain.ErrNotFound))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidLayout, errors.Join(errs...))
	}
	return nil
}

// Build creates every dish once, adds it to cat, and appends the stations to
// reg in file order. Station stock is delivered with Replenish semantics, so
// an ingredient listed twice accumulates.
func (f *File) Build(ctx context.Context, cat Catalog, reg *registry.Registry, log *logger.Logger) error {
	blog := log.Named("layout")

	dishes := make(map[string]*domain.Dish, len(f.Dishes))
	for _, entry := range f.Dishes {
		d := entry.build()
		if d.Name() != entry.Name {
			blog.Warn("dish %q has an invalid name, stored as %s", entry.Name, d.Name())
		}
		if _, err := cat.Add(ctx, d); err != nil {
			return fmt.Errorf("adding dish %q: %w", entry.key(), err)
		}
		dishes[entry.key()] = d
	}

	for _, entry := range f.Stations {
		st := station.New(entry.Name, log)
		for _, key := range entry.Dishes {
			d, ok := dishes[key]
			if !ok {
				return fmt.Errorf("station %q: dish %q: %w", entry.Name, key, domain.ErrNotFound)
			}
			if !st.AssignDish(d) {
				blog.Warn("station %q lists dish %q twice", entry.Name, key)
			}
		}
		for _, ing := range entry.Stock {
			st.Replenish(ing.toDomain())
		}
		reg.AddStation(st)
	}

	blog.Info("built kitchen: %d dishes, %d stations", len(dishes), len(f.Stations))
	return nil
}

func (d Dish) key() string {
	if k := strings.TrimSpace(d.Key); k != "" {
		return k
	}
	return d.Name
}

func (d Dish) build() *domain.Dish {
	recipe := make([]domain.Ingredient, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		recipe[i] = ing.toDomain()
	}
	return domain.NewDish(d.Name,
		domain.WithIngredients(recipe...),
		domain.WithPrepTime(d.PrepTime),
		domain.WithPrice(d.Price),
		domain.WithCuisine(domain.ParseCuisine(d.Cuisine)),
	)
}

func (i Ingredient) toDomain() domain.Ingredient {
	return domain.NewIngredient(i.Name, i.Quantity, i.RequiredQuantity, i.Price)
}
