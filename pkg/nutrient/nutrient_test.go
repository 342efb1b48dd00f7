package nutrient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

func TestNormalize(t *testing.T) {
	i := Ingredient{Name: "foo", Grams: 1000, Kcal: 100, Carb: 300, Fat: 200, Protein: 100}

	m, err := Normalize(i)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, m.Carb, 1e-12)
	assert.InDelta(t, 2.0, m.Fat, 1e-12)
	assert.InDelta(t, 1.0, m.Protein, 1e-12)
}

func TestNormalize_Densities(t *testing.T) {
	tests := []Ingredient{
		{Name: "oats", Grams: 100, Kcal: 389, Carb: 66.3, Fat: 6.9, Protein: 16.9},
		{Name: "whey", Grams: 30, Kcal: 120, Carb: 3, Fat: 1.5, Protein: 24},
		{Name: "oil", Grams: 10, Kcal: 88, Carb: 0, Fat: 10, Protein: 0},
	}

	for _, ing := range tests {
		t.Run(ing.Name, func(t *testing.T) {
			m, err := Normalize(ing)
			require.NoError(t, err)
			assert.InDelta(t, ing.Carb/ing.Kcal, m.Carb, 1e-12)
			assert.InDelta(t, ing.Fat/ing.Kcal, m.Fat, 1e-12)
			assert.InDelta(t, ing.Protein/ing.Kcal, m.Protein, 1e-12)
		})
	}
}

func TestNormalize_ZeroKcal(t *testing.T) {
	_, err := Normalize(Ingredient{Name: "water", Grams: 100})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "water")
	assert.Contains(t, err.Error(), "kcal")
}

func TestIngredient_Validate(t *testing.T) {
	valid := Ingredient{Name: "rice", Grams: 100, Kcal: 130, Carb: 28, Fat: 0.3, Protein: 2.7}

	tests := []struct {
		name    string
		mutate  func(*Ingredient)
		wantErr string
	}{
		{name: "valid", mutate: func(*Ingredient) {}},
		{name: "zero macros allowed", mutate: func(i *Ingredient) { i.Carb, i.Fat, i.Protein = 0, 0, 0 }},
		{name: "missing name", mutate: func(i *Ingredient) { i.Name = "  " }, wantErr: "name"},
		{name: "zero kcal", mutate: func(i *Ingredient) { i.Kcal = 0 }, wantErr: "kcal"},
		{name: "negative kcal", mutate: func(i *Ingredient) { i.Kcal = -5 }, wantErr: "kcal"},
		{name: "zero grams", mutate: func(i *Ingredient) { i.Grams = 0 }, wantErr: `"g"`},
		{name: "negative fat", mutate: func(i *Ingredient) { i.Fat = -1 }, wantErr: "fat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := valid
			tt.mutate(&ing)
			err := ing.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMacros_Ratio(t *testing.T) {
	r, ok := Macros{Carb: 40, Fat: 50, Protein: 60}.Ratio()
	require.True(t, ok)
	assert.InDelta(t, 1.0, r.Sum(), 1e-12)
	assert.InDelta(t, 40.0/150, r.Carb, 1e-12)

	_, ok = Macros{}.Ratio()
	assert.False(t, ok, "zero macros have no ratio")
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(
		Ingredient{Name: "milk", Grams: 100, Kcal: 64, Carb: 4.8, Fat: 3.5, Protein: 3.4},
		Ingredient{Name: "banana", Grams: 100, Kcal: 89, Carb: 23, Fat: 0.3, Protein: 1.1},
		Ingredient{Name: "oats", Grams: 100, Kcal: 389, Carb: 66.3, Fat: 6.9, Protein: 16.9},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"banana", "milk", "oats"}, c.Names(), "catalog is sorted by name")

	i, ok := c.Index("milk")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "milk", c.Ingredient(i).Name)
	assert.InDelta(t, 4.8/64, c.Normalized(i).Carb, 1e-12)

	ing, ok := c.Lookup("oats")
	require.True(t, ok)
	assert.InDelta(t, 389.0, ing.Kcal, 0)

	_, ok = c.Lookup("bread")
	assert.False(t, ok)

	byName := c.NormalizedByName()
	assert.Len(t, byName, 3)
	assert.Equal(t, c.Normalized(0), byName["banana"])
}

func TestNewCatalog_Errors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		_, err := NewCatalog(
			Ingredient{Name: "oats", Grams: 100, Kcal: 389},
			Ingredient{Name: "oats", Grams: 50, Kcal: 190},
		)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("zero kcal", func(t *testing.T) {
		_, err := NewCatalog(Ingredient{Name: "water", Grams: 100})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfig))
	})

	t.Run("input is not reordered", func(t *testing.T) {
		in := []Ingredient{
			{Name: "b", Grams: 1, Kcal: 1},
			{Name: "a", Grams: 1, Kcal: 1},
		}
		_, err := NewCatalog(in...)
		require.NoError(t, err)
		assert.Equal(t, "b", in[0].Name)
	})
}
