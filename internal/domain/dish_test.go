package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewDishDefaults(t *testing.T) {
	d := NewDish("Soup")

	assert.Equal(t, "Soup", d.Name())
	assert.Empty(t, d.Ingredients())
	assert.Equal(t, 0, d.PrepTime())
	assert.Equal(t, 0.0, d.Price())
	assert.Equal(t, CuisineOther, d.Cuisine())
	assert.Equal(t, "OTHER", d.CuisineName())
}

func TestNewDishOptions(t *testing.T) {
	d := NewDish("Grilled Chicken Sandwich",
		WithIngredients(NewIngredient("Tomato", 20, 2, 0.5), NewIngredient("Lettuce", 15, 1, 0.3)),
		WithPrepTime(15),
		WithPrice(12.99),
		WithCuisine(CuisineAmerican),
	)

	assert.Equal(t, "Grilled Chicken Sandwich", d.Name())
	require.Len(t, d.Ingredients(), 2)
	assert.Equal(t, "Tomato", d.Ingredients()[0].Name)
	assert.Equal(t, 2.0, d.Ingredients()[0].RequiredQuantity)
	assert.Equal(t, 15, d.PrepTime())
	assert.Equal(t, 12.99, d.Price())
	assert.Equal(t, "AMERICAN", d.CuisineName())
}

func TestSetName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Taco", "Taco"},
		{"Pad Thai", "Pad Thai"},
		{"", ""},
		{"   ", "   "},
		{"Fish\tChips", "Fish\tChips"},
		{"Dish 1", UnknownName},
		{"Mac & Cheese", UnknownName},
		{"Crème brûlée", UnknownName},
		{"pho!", UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := NewDish("Placeholder")
			d.SetName(tt.input)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestSetNameProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		valid := rapid.StringMatching(`[A-Za-z ]{0,24}`).Draw(r, "valid")
		d := NewDish(valid)
		if d.Name() != valid {
			r.Fatalf("valid name %q became %q", valid, d.Name())
		}

		prefix := rapid.StringMatching(`[A-Za-z ]{0,8}`).Draw(r, "prefix")
		bad := rapid.StringMatching(`[0-9_&!?.,'-]`).Draw(r, "bad")
		suffix := rapid.StringMatching(`[A-Za-z ]{0,8}`).Draw(r, "suffix")
		d.SetName(prefix + bad + suffix)
		if d.Name() != UnknownName {
			r.Fatalf("invalid name %q kept as %q", prefix+bad+suffix, d.Name())
		}
	})
}

func TestCuisineString(t *testing.T) {
	tests := []struct {
		cuisine CuisineType
		want    string
	}{
		{CuisineItalian, "ITALIAN"},
		{CuisineMexican, "MEXICAN"},
		{CuisineChinese, "CHINESE"},
		{CuisineIndian, "INDIAN"},
		{CuisineAmerican, "AMERICAN"},
		{CuisineFrench, "FRENCH"},
		{CuisineOther, "OTHER"},
		{CuisineType(42), "OTHER"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cuisine.String())
			assert.Equal(t, tt.want, NewDish("x", WithCuisine(tt.cuisine)).CuisineName())
		})
	}
}

func TestParseCuisine(t *testing.T) {
	assert.Equal(t, CuisineMexican, ParseCuisine("mexican"))
	assert.Equal(t, CuisineFrench, ParseCuisine(" French "))
	assert.Equal(t, CuisineOther, ParseCuisine("martian"))
	assert.Equal(t, CuisineOther, ParseCuisine(""))
}

func TestDishEqual(t *testing.T) {
	base := NewDish("Taco", WithPrepTime(10), WithPrice(8.5), WithCuisine(CuisineMexican),
		WithIngredients(NewIngredient("Tomato", 0, 2, 0)))

	same := NewDish("Taco", WithPrepTime(10), WithPrice(8.5), WithCuisine(CuisineMexican),
		WithIngredients(NewIngredient("Beef", 0, 1, 0)))
	assert.True(t, base.Equal(same), "ingredients must not take part in equality")

	tests := []struct {
		name  string
		other *Dish
	}{
		{"name", NewDish("Burrito", WithPrepTime(10), WithPrice(8.5), WithCuisine(CuisineMexican))},
		{"prep time", NewDish("Taco", WithPrepTime(11), WithPrice(8.5), WithCuisine(CuisineMexican))},
		{"price", NewDish("Taco", WithPrepTime(10), WithPrice(9), WithCuisine(CuisineMexican))},
		{"cuisine", NewDish("Taco", WithPrepTime(10), WithPrice(8.5), WithCuisine(CuisineAmerican))},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, base.Equal(tt.other))
		})
	}
}

func TestIngredientsAreCopied(t *testing.T) {
	recipe := []Ingredient{NewIngredient("Salt", 0, 1, 0)}
	d := NewDish("Soup", WithIngredients(recipe...))

	recipe[0].RequiredQuantity = 99
	got := d.Ingredients()
	got[0].Name = strings.ToUpper(got[0].Name)

	assert.Equal(t, 1.0, d.Ingredients()[0].RequiredQuantity)
	assert.Equal(t, "Salt", d.Ingredients()[0].Name)
}
