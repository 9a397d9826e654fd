// Package station implements a kitchen station: a named work area that holds
// assigned dishes and its own ingredient stock.
package station

import (
	"sync"
	"sync/atomic"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
)

// seqCounter hands out creation sequence numbers. Absorb locks stations in
// sequence order.
var seqCounter atomic.Uint64

// Station is a kitchen station. Safe for concurrent use.
type Station struct {
	seq uint64
	log *logger.Logger

	mu     sync.Mutex
	name   string
	dishes []*domain.Dish
	stock  []domain.Ingredient // unique by Name, insertion order
}

// New creates an empty station. An empty name becomes domain.UnknownName.
func New(name string, log *logger.Logger) *Station {
	if name == "" {
		name = domain.UnknownName
	}
	return &Station{
		seq:  seqCounter.Add(1),
		log:  log.Named("station"),
		name: name,
	}
}

// Name returns the station name.
func (s *Station) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// SetName renames the station.
func (s *Station) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// Dishes returns the assigned dishes in assignment order. The slice is a
// copy; the dish pointers are shared.
func (s *Station) Dishes() []*domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

// Stock returns a copy of the ingredient stock in insertion order.
func (s *Station) Stock() []domain.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ingredient, len(s.stock))
	copy(out, s.stock)
	return out
}

// StockOf returns the stock entry for an ingredient name.
func (s *Station) StockOf(name string) (domain.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.stockIndex(name); i >= 0 {
		return s.stock[i], true
	}
	return domain.Ingredient{}, false
}

// AssignDish adds dish to the station unless this exact pointer is already
// assigned. Two distinct dishes with identical contents are both accepted.
// Returns whether the dish was added.
func (s *Station) AssignDish(dish *domain.Dish) bool {
	if dish == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assign(dish)
}

// Replenish adds an ingredient delivery to stock. A known ingredient has its
// quantity increased; an unknown one is stored as supplied, including its
// RequiredQuantity and Price.
func (s *Station) Replenish(ing domain.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replenish(ing)
}

// CanFulfill reports whether the first assigned dish named dishName can be
// prepared from current stock.
func (s *Station) CanFulfill(dishName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canFulfill(dishName)
}

// Prepare consumes the stock needed for dishName. If the dish cannot be
// fulfilled nothing changes and false is returned. Quantities are clamped
// at zero and depleted ingredients are dropped from stock.
func (s *Station) Prepare(dishName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canFulfill(dishName) {
		s.log.Debug("%s cannot prepare %q", s.name, dishName)
		return false
	}

	dish := s.findDish(dishName)
	for _, need := range dish.Ingredients() {
		i := s.stockIndex(need.Name)
		if i < 0 {
			continue
		}
		s.stock[i].Quantity -= need.RequiredQuantity
		if s.stock[i].Quantity <= 0 {
			s.stock[i].Quantity = 0
		}
	}

	kept := s.stock[:0]
	for _, ing := range s.stock {
		if ing.Quantity == 0 {
			s.log.Debug("%s ran out of %s", s.name, ing.Name)
			continue
		}
		kept = append(kept, ing)
	}
	clear(s.stock[len(kept):])
	s.stock = kept

	s.log.Debug("%s prepared %q", s.name, dishName)
	return true
}

// Absorb copies other's dishes and stock into s with AssignDish and
// Replenish semantics: dishes already assigned are skipped and matching
// ingredients accumulate. other is left untouched. Returns false for nil or
// when other is s.
func (s *Station) Absorb(other *Station) bool {
	if other == nil || other == s {
		return false
	}

	first, second := s, other
	if second.seq < first.seq {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	added := 0
	for _, d := range other.dishes {
		if s.assign(d) {
			added++
		}
	}
	for _, ing := range other.stock {
		s.replenish(ing)
	}

	s.log.Debug("%s absorbed %s (%d new dishes, %d stock entries)", s.name, other.name, added, len(other.stock))
	return true
}

// Close releases the station's dish references and clears its stock.
func (s *Station) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.dishes)
	s.dishes = nil
	s.stock = nil
}

func (s *Station) assign(dish *domain.Dish) bool {
	for _, d := range s.dishes {
		if d == dish {
			return false
		}
	}
	s.dishes = append(s.dishes, dish)
	return true
}

func (s *Station) replenish(ing domain.Ingredient) {
	if i := s.stockIndex(ing.Name); i >= 0 {
		s.stock[i].Quantity += ing.Quantity
		return
	}
	s.stock = append(s.stock, ing)
}

func (s *Station) canFulfill(dishName string) bool {
	dish := s.findDish(dishName)
	if dish == nil {
		return false
	}
	for _, need := range dish.Ingredients() {
		i := s.stockIndex(need.Name)
		if i < 0 || s.stock[i].Quantity < need.RequiredQuantity {
			return false
		}
	}
	return true
}

func (s *Station) findDish(name string) *domain.Dish {
	for _, d := range s.dishes {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

func (s *Station) stockIndex(name string) int {
	for i := range s.stock {
		if s.stock[i].Name == name {
			return i
		}
	}
	return -1
}
