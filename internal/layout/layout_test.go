package layout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
	"github.com/hammamikhairi/brigade/internal/menu"
	"github.com/hammamikhairi/brigade/internal/registry"
)

const tacoLayout = `
dishes:
  - name: Taco
    cuisine: mexican
    price: 3.5
    ingredients:
      - { name: Tomato, required_quantity: 2 }
      - { name: Cheese, required_quantity: 1 }
  - key: bad
    name: "Taco #2"
stations:
  - name: Grill
    dishes: [Taco, bad]
    stock:
      - { name: Tomato, quantity: 3 }
      - { name: Tomato, quantity: 2 }
  - name: Line
    dishes: [Taco]
`

func build(t *testing.T, f *File) (*menu.Catalog, *registry.Registry) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	cat := menu.NewCatalog(log)
	reg := registry.New(log)
	require.NoError(t, f.Build(context.Background(), cat, reg, log))
	return cat, reg
}

func TestParseAndBuild(t *testing.T) {
	f, err := Parse([]byte(tacoLayout))
	require.NoError(t, err)
	require.Len(t, f.Dishes, 2)
	require.Len(t, f.Stations, 2)

	cat, reg := build(t, f)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, []string{"Grill", "Line"}, reg.Names())

	grill := reg.FindStation("Grill")
	require.NotNil(t, grill)
	dishes := grill.Dishes()
	require.Len(t, dishes, 2)
	assert.Equal(t, "Taco", dishes[0].Name())
	assert.Equal(t, domain.CuisineMexican, dishes[0].Cuisine())
	assert.Equal(t, domain.UnknownName, dishes[1].Name(), "invalid names are clamped")

	tomato, ok := grill.StockOf("Tomato")
	require.True(t, ok)
	assert.Equal(t, 5.0, tomato.Quantity)

	line := reg.FindStation("Line")
	require.NotNil(t, line)
	assert.Same(t, dishes[0], line.Dishes()[0], "stations share the dish record")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "dishes: [\n"},
		{"unknown dish", "stations:\n  - name: Grill\n    dishes: [Ghost]\n"},
		{"duplicate key", "dishes:\n  - name: Taco\n  - name: Taco\n"},
		{"missing key", "dishes:\n  - price: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidLayout)
		})
	}
}

func TestValidateWrapsCause(t *testing.T) {
	_, err := Parse([]byte("stations:\n  - name: Grill\n    dishes: [Ghost]\n"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tacoLayout), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Stations, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultKitchen(t *testing.T) {
	_, reg := build(t, Default())

	assert.Equal(t, []string{"Grill Station", "Prep Station", "Dessert Station"}, reg.Names())
	assert.True(t, reg.CanFulfillAnywhere("Grilled Chicken Sandwich"))
	assert.True(t, reg.CanFulfillAnywhere("Tiramisu"))

	require.True(t, reg.MoveStationToFront("Dessert Station"))
	require.True(t, reg.MergeStations("Grill Station", "Prep Station"))
	assert.Equal(t, []string{"Dessert Station", "Grill Station"}, reg.Names())

	grill := reg.FindStation("Grill Station")
	assert.Len(t, grill.Dishes(), 1, "shared sandwich is not duplicated by the merge")
	lettuce, ok := grill.StockOf("Lettuce")
	require.True(t, ok)
	assert.Equal(t, 25.0, lettuce.Quantity)

	assert.True(t, reg.PrepareAt("Grill Station", "Grilled Chicken Sandwich"))
	assert.True(t, reg.RemoveStation("Dessert Station"))
	assert.False(t, reg.CanFulfillAnywhere("Tiramisu"))
}
