package domain

import "strings"

// UnknownName replaces any dish name that fails validation. Stations created
// without a name use it too.
const UnknownName = "UNKNOWN"

// CuisineType categorises a dish.
type CuisineType int

const (
	CuisineOther CuisineType = iota
	CuisineItalian
	CuisineMexican
	CuisineChinese
	CuisineIndian
	CuisineAmerican
	CuisineFrench
)

// String returns the canonical uppercase cuisine name. Values outside the
// enum report "OTHER".
func (c CuisineType) String() string {
	switch c {
	case CuisineItalian:
		return "ITALIAN"
	case CuisineMexican:
		return "MEXICAN"
	case CuisineChinese:
		return "CHINESE"
	case CuisineIndian:
		return "INDIAN"
	case CuisineAmerican:
		return "AMERICAN"
	case CuisineFrench:
		return "FRENCH"
	default:
		return "OTHER"
	}
}

// cuisineNames maps uppercase names to CuisineType values.
var cuisineNames = map[string]CuisineType{
	"ITALIAN":  CuisineItalian,
	"MEXICAN":  CuisineMexican,
	"CHINESE":  CuisineChinese,
	"INDIAN":   CuisineIndian,
	"AMERICAN": CuisineAmerican,
	"FRENCH":   CuisineFrench,
	"OTHER":    CuisineOther,
}

// ParseCuisine converts a cuisine name (any case) to a CuisineType.
// Returns CuisineOther for unrecognized names.
func ParseCuisine(name string) CuisineType {
	if c, ok := cuisineNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return c
	}
	return CuisineOther
}

// Dish is a named recipe. Stations share dishes by pointer, so a *Dish may be
// referenced from several stations and from the menu catalog at once.
//
// Dish setters are not synchronized; mutate a dish before handing it to
// stations that are used concurrently.
type Dish struct {
	name        string
	ingredients []Ingredient
	prepTime    int
	price       float64
	cuisine     CuisineType
}

// DishOption configures a dish at construction.
type DishOption func(*Dish)

// WithIngredients sets the recipe. Only RequiredQuantity is read by
// fulfillment checks.
func WithIngredients(ingredients ...Ingredient) DishOption {
	return func(d *Dish) {
		d.SetIngredients(ingredients)
	}
}

// WithPrepTime sets the preparation time in minutes.
func WithPrepTime(minutes int) DishOption {
	return func(d *Dish) {
		d.prepTime = minutes
	}
}

// WithPrice sets the menu price.
func WithPrice(price float64) DishOption {
	return func(d *Dish) {
		d.price = price
	}
}

// WithCuisine sets the cuisine category.
func WithCuisine(c CuisineType) DishOption {
	return func(d *Dish) {
		d.cuisine = c
	}
}

// NewDish creates a dish. The name goes through SetName, so an invalid name
// becomes UnknownName. Unset attributes default to zero values and
// CuisineOther.
func NewDish(name string, opts ...DishOption) *Dish {
	d := &Dish{cuisine: CuisineOther}
	d.SetName(name)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the dish name.
func (d *Dish) Name() string { return d.name }

// Ingredients returns a copy of the recipe.
func (d *Dish) Ingredients() []Ingredient {
	out := make([]Ingredient, len(d.ingredients))
	copy(out, d.ingredients)
	return out
}

// PrepTime returns the preparation time in minutes.
func (d *Dish) PrepTime() int { return d.prepTime }

// Price returns the menu price.
func (d *Dish) Price() float64 { return d.price }

// Cuisine returns the cuisine category.
func (d *Dish) Cuisine() CuisineType { return d.cuisine }

// CuisineName returns the uppercase cuisine name, "OTHER" by default.
func (d *Dish) CuisineName() string { return d.cuisine.String() }

// SetName stores name if it consists only of letters and whitespace.
// Anything else is replaced by UnknownName; no error is reported.
func (d *Dish) SetName(name string) {
	if ValidDishName(name) {
		d.name = name
		return
	}
	d.name = UnknownName
}

// SetIngredients replaces the recipe with a copy of ingredients.
func (d *Dish) SetIngredients(ingredients []Ingredient) {
	d.ingredients = make([]Ingredient, len(ingredients))
	copy(d.ingredients, ingredients)
}

// SetPrepTime sets the preparation time in minutes.
func (d *Dish) SetPrepTime(minutes int) { d.prepTime = minutes }

// SetPrice sets the menu price.
func (d *Dish) SetPrice(price float64) { d.price = price }

// SetCuisine sets the cuisine category.
func (d *Dish) SetCuisine(c CuisineType) { d.cuisine = c }

// Equal reports whether two dishes share name, prep time, price and cuisine.
// The ingredient list is not compared.
func (d *Dish) Equal(other *Dish) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name &&
		d.prepTime == other.prepTime &&
		d.price == other.price &&
		d.cuisine == other.cuisine
}

// ValidDishName reports whether every character of name is an ASCII letter
// or whitespace. The empty string is valid.
func ValidDishName(name string) bool {
	for _, c := range name {
		if !isLetter(c) && !isSpace(c) {
			return false
		}
	}
	return true
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
