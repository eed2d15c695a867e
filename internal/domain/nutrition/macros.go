// Package nutrition holds the macro-nutrient value types shared by the
// catalog and planning domains.
package nutrition

// Macros represents a macro-nutrient total: energy in kilocalories plus
// protein, carbohydrates and fat in grams. It is a value object; operations
// return new values.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Add returns the component-wise sum of m and other.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

// Scale returns m with every component multiplied by factor.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		Protein:  m.Protein * factor,
		Carbs:    m.Carbs * factor,
		Fat:      m.Fat * factor,
	}
}

// ForGrams treats m as per-100 g reference values and returns the
// contribution of the given quantity in grams.
func (m Macros) ForGrams(grams float64) Macros {
	return m.Scale(grams / 100)
}

// IsZero reports whether every component is zero.
func (m Macros) IsZero() bool {
	return m == Macros{}
}

// Sum returns the component-wise sum of all given values.
func Sum(values ...Macros) Macros {
	var total Macros
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
