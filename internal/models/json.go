package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pageza/fittrack/backend/internal/nutrition"
)

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(value interface{}, dest interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// FoodItems is a JSONB list of food items.
type FoodItems []nutrition.FoodItem

// Value implements the driver.Valuer interface
func (f FoodItems) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return jsonValue([]nutrition.FoodItem(f))
}

// Scan implements the sql.Scanner interface
func (f *FoodItems) Scan(value interface{}) error {
	*f = FoodItems{}
	return jsonScan(value, (*[]nutrition.FoodItem)(f))
}

// Exercise is one movement within a workout.
type Exercise struct {
	Name            string  `json:"name"`
	Sets            int     `json:"sets,omitempty"`
	Reps            int     `json:"reps,omitempty"`
	WeightKg        float64 `json:"weight_kg,omitempty"`
	DurationSeconds int     `json:"duration_seconds,omitempty"`
}

// Exercises is a JSONB list of exercises.
type Exercises []Exercise

// Value implements the driver.Valuer interface
func (e Exercises) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	return jsonValue([]Exercise(e))
}

// Scan implements the sql.Scanner interface
func (e *Exercises) Scan(value interface{}) error {
	*e = Exercises{}
	return jsonScan(value, (*[]Exercise)(e))
}

// Measurements maps a body site (waist, chest, ...) to centimetres.
type Measurements map[string]float64

// Value implements the driver.Valuer interface
func (m Measurements) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonValue(map[string]float64(m))
}

// Scan implements the sql.Scanner interface
func (m *Measurements) Scan(value interface{}) error {
	*m = Measurements{}
	return jsonScan(value, (*map[string]float64)(m))
}
