// Package registry keeps the ordered collection of kitchen stations and
// answers questions that span stations: where an order can be fulfilled,
// reordering, and merging one station into another.
package registry

import (
	"slices"
	"sync"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
	"github.com/hammamikhairi/brigade/internal/station"
)

// Registry owns an ordered sequence of stations. Station names are expected
// to be unique but this is not enforced; lookups return the first match in
// sequence order. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	stations []*station.Station
	log      *logger.Logger
}

// New creates an empty registry.
func New(log *logger.Logger) *Registry {
	return &Registry{log: log.Named("registry")}
}

// AddStation appends s to the end of the sequence. Returns false only for a
// nil station.
func (r *Registry) AddStation(s *station.Station) bool {
	if s == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stations = append(r.stations, s)
	stationsAdded.Inc()
	r.log.Debug("added station %q at %d", s.Name(), len(r.stations)-1)
	return true
}

// InsertStation inserts s at index, shifting later stations back. index may
// equal Len to append.
func (r *Registry) InsertStation(index int, s *station.Station) bool {
	if s == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index > len(r.stations) {
		return false
	}
	r.stations = slices.Insert(r.stations, index, s)
	stationsAdded.Inc()
	r.log.Debug("inserted station %q at %d", s.Name(), index)
	return true
}

// RemoveStation closes and removes the first station named name.
func (r *Registry) RemoveStation(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		r.log.Debug("remove: station %q not found", name)
		return false
	}
	r.removeAt(i)
	return true
}

// RemoveStationAt closes and removes the station at index.
func (r *Registry) RemoveStationAt(index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.stations) {
		return false
	}
	r.removeAt(index)
	return true
}

// FindStation returns the first station named name, or nil. The registry
// keeps ownership of the returned station.
func (r *Registry) FindStation(name string) *station.Station {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(name); i >= 0 {
		return r.stations[i]
	}
	return nil
}

// StationAt returns the station at index, or nil when out of range.
func (r *Registry) StationAt(index int) *station.Station {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.stations) {
		return nil
	}
	return r.stations[index]
}

// MoveStationToFront moves the first station named name to index 0. The
// relative order of every other station is unchanged.
func (r *Registry) MoveStationToFront(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	s := r.stations[i]
	copy(r.stations[1:i+1], r.stations[:i])
	r.stations[0] = s
	r.log.Debug("moved station %q from %d to front", name, i)
	return true
}

// MergeStations moves every dish and stock entry of the station named from
// into the station named into, then closes and removes from. Dishes already
// assigned to into are not duplicated and matching ingredients accumulate.
// Fails when either name is unknown or both resolve to the same station.
func (r *Registry) MergeStations(into, from string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok := r.merge(into, from)
	merges.WithLabelValues(outcome(ok)).Inc()
	return ok
}

func (r *Registry) merge(into, from string) bool {
	di := r.indexOf(into)
	si := r.indexOf(from)
	if di < 0 || si < 0 || di == si {
		r.log.Debug("merge %q <- %q rejected", into, from)
		return false
	}

	if !r.stations[di].Absorb(r.stations[si]) {
		return false
	}
	r.removeAt(si)
	r.log.Info("merged station %q into %q", from, into)
	return true
}

// AssignDishAt assigns dish to the named station.
func (r *Registry) AssignDishAt(stationName string, dish *domain.Dish) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(stationName); i >= 0 {
		return r.stations[i].AssignDish(dish)
	}
	return false
}

// ReplenishAt delivers ing to the named station.
func (r *Registry) ReplenishAt(stationName string, ing domain.Ingredient) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(stationName); i >= 0 {
		r.stations[i].Replenish(ing)
		return true
	}
	return false
}

// CanFulfillAnywhere reports whether any station can fulfill dishName.
func (r *Registry) CanFulfillAnywhere(dishName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stations {
		if s.CanFulfill(dishName) {
			return true
		}
	}
	return false
}

// FulfillingStations returns, in sequence order, the names of the stations
// that can fulfill dishName.
func (r *Registry) FulfillingStations(dishName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, s := range r.stations {
		if s.CanFulfill(dishName) {
			out = append(out, s.Name())
		}
	}
	return out
}

// PrepareAt prepares dishName at the named station.
func (r *Registry) PrepareAt(stationName, dishName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ok := false
	if i := r.indexOf(stationName); i >= 0 {
		ok = r.stations[i].Prepare(dishName)
	} else {
		r.log.Debug("prepare: station %q not found", stationName)
	}
	preparations.WithLabelValues(outcome(ok)).Inc()
	return ok
}

// Stations returns the stations in sequence order. The slice is a copy.
func (r *Registry) Stations() []*station.Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.stations)
}

// Names returns the station names in sequence order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.stations))
	for i, s := range r.stations {
		out[i] = s.Name()
	}
	return out
}

// Len returns the number of stations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stations)
}

// Clear closes and removes every station.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stations {
		s.Close()
	}
	stationsRemoved.Add(float64(len(r.stations)))
	r.log.Debug("cleared %d stations", len(r.stations))
	clear(r.stations)
	r.stations = nil
}

// indexOf returns the index of the first station named name, or -1.
// Callers hold r.mu.
func (r *Registry) indexOf(name string) int {
	for i, s := range r.stations {
		if s.Name() == name {
			return i
		}
	}
	return -1
}

// removeAt closes and drops the station at i. Callers hold r.mu for writing.
func (r *Registry) removeAt(i int) {
	s := r.stations[i]
	r.stations = slices.Delete(r.stations, i, i+1)
	s.Close()
	stationsRemoved.Inc()
	r.log.Debug("removed station %q", s.Name())
}
