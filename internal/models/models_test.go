package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

func TestFoodItemsScan(t *testing.T) {
	var items FoodItems
	require.NoError(t, items.Scan([]byte(`[{"name":"Banana","quantity":1,"unit":"piece","calories":105}]`)))
	require.Len(t, items, 1)
	assert.Equal(t, "Banana", items[0].Name)
	assert.Equal(t, 105.0, items[0].Calories)

	require.NoError(t, items.Scan(nil))
	assert.Empty(t, items)

	assert.Error(t, items.Scan(42))
}

func TestNilJSONColumnsStoreEmptyDocuments(t *testing.T) {
	v, err := FoodItems(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = Measurements(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestNutritionProfile(t *testing.T) {
	age := 28
	p := &UserProfile{Sex: "female", Age: &age, HeightCm: 170, WeightKg: 65, FitnessGoal: "unknown"}
	np := p.NutritionProfile()

	assert.Equal(t, nutrition.Female, np.Sex)
	assert.Equal(t, 28, np.Age)
	assert.Equal(t, nutrition.Maintenance, np.FitnessGoal)
	assert.True(t, p.Complete())

	p.Age = nil
	assert.False(t, p.Complete())

	zero := 0
	p.Age = &zero
	assert.True(t, p.Complete())
}

func TestChallengeActive(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Challenge{StartsAt: start, EndsAt: start.AddDate(0, 0, 30)}

	assert.True(t, c.Active(start))
	assert.True(t, c.Active(start.AddDate(0, 0, 30)))
	assert.False(t, c.Active(start.Add(-time.Second)))
	assert.False(t, c.Active(start.AddDate(0, 0, 31)))
}
