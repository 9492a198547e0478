package translator

import (
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/amimof/huego"
	"smart-home/internal/domain/model"
)

// ClimateStrategy exposes a thermometer as a dimmable light whose brightness
// tracks the temperature. The reading is clamped to the configured range and
// fed to the formula as x.
type ClimateStrategy struct {
	formula *govaluate.EvaluableExpression
	minTemp float64
	maxTemp float64
}

func NewClimateStrategy(formula string, minTemp, maxTemp float64) (*ClimateStrategy, error) {
	if minTemp >= maxTemp {
		return nil, fmt.Errorf("climate range [%g, %g] is empty", minTemp, maxTemp)
	}
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return nil, fmt.Errorf("parsing climate formula %q: %w", formula, err)
	}
	return &ClimateStrategy{formula: expression, minTemp: minTemp, maxTemp: maxTemp}, nil
}

func (s *ClimateStrategy) ToHue(device *model.Device) *huego.State {
	state := &huego.State{}
	thermometer, err := device.AsThermometer()
	if err != nil {
		return state
	}
	temp := float64(thermometer.CurrentTemperature())
	if temp < s.minTemp {
		temp = s.minTemp
	}
	if temp > s.maxTemp {
		temp = s.maxTemp
	}
	state.Bri = brightness(s.evaluate(temp))
	state.On = true
	state.Reachable = true
	return state
}

func (s *ClimateStrategy) Apply(_ *huego.State, device *model.Device) error {
	return fmt.Errorf("%s: %w", device.Name(), ErrReadOnly)
}

func (s *ClimateStrategy) Metadata() Metadata {
	return Metadata{
		Type:             "Dimmable light",
		ModelID:          "LWB004",
		ManufacturerName: "Philips",
	}
}

// evaluate falls back to x when the formula fails or yields a non-number
func (s *ClimateStrategy) evaluate(x float64) float64 {
	result, err := s.formula.Evaluate(map[string]interface{}{"x": x})
	if err != nil {
		return x
	}
	if val, ok := result.(float64); ok {
		return val
	}
	return x
}

func brightness(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxBrightness {
		return maxBrightness
	}
	return uint8(v)
}
