package catalog

// Measurements are body measurements in centimeters.
type Measurements struct {
	Neck     float64 `yaml:"neck"`
	Chest    float64 `yaml:"chest"`
	Waist    float64 `yaml:"waist"`
	Hips     float64 `yaml:"hips"`
	Sleeve   float64 `yaml:"sleeve"`
	Inseam   float64 `yaml:"inseam"`
	Shoulder float64 `yaml:"shoulder"`
	Thigh    float64 `yaml:"thigh"`
}

// MeasurementProfile is a named set of measurements. Seeded profiles come from the
// catalog and are shared by every visitor; they cannot be deleted.
type MeasurementProfile struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Measurements Measurements `yaml:"measurements"`
	Seeded       bool         `yaml:"-"`
}
