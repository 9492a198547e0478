package model

import "fmt"

// Thermometer is a read-only temperature sensor. The reading is fixed at
// construction.
type Thermometer struct {
	name        string
	temperature Celsius
}

func NewThermometer(name string, temperature Celsius) Thermometer {
	return Thermometer{name: name, temperature: temperature}
}

func (t *Thermometer) Name() string {
	return t.name
}

func (t *Thermometer) Info() string {
	return fmt.Sprintf("Thermometer: %s - Current Temperature: %.2f°C", t.name, float64(t.temperature))
}

func (t *Thermometer) CurrentTemperature() Celsius {
	return t.temperature
}
