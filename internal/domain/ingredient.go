// Package domain defines the core kitchen types and the ports between layers.
// All other packages depend on domain; domain depends on nothing.
package domain

// Ingredient is a named quantity record. What Quantity means depends on the
// container holding it: current stock at a station, the amount delivered by a
// replenishment, or (unused) on a dish's own recipe list.
type Ingredient struct {
	Name             string
	Quantity         float64
	RequiredQuantity float64 // amount a dish consumes per preparation
	Price            float64 // unit price, informational only
}

// NewIngredient builds an ingredient record.
func NewIngredient(name string, quantity, required, price float64) Ingredient {
	return Ingredient{
		Name:             name,
		Quantity:         quantity,
		RequiredQuantity: required,
		Price:            price,
	}
}
