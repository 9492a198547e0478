package translator

import (
	"fmt"

	"github.com/amimof/huego"
	"github.com/gosimple/slug"
	"smart-home/internal/domain/model"
)

const (
	DefaultClimateFormula = "(x - 7) * 254 / 21"
	DefaultMinTemperature = 7.0
	DefaultMaxTemperature = 28.0
)

type Options struct {
	ClimateFormula string
	MinTemperature float64
	MaxTemperature float64
}

func DefaultOptions() Options {
	return Options{
		ClimateFormula: DefaultClimateFormula,
		MinTemperature: DefaultMinTemperature,
		MaxTemperature: DefaultMaxTemperature,
	}
}

type Factory struct {
	strategies map[model.Kind]Translator
}

func NewFactory(opts Options) (*Factory, error) {
	climate, err := NewClimateStrategy(opts.ClimateFormula, opts.MinTemperature, opts.MaxTemperature)
	if err != nil {
		return nil, err
	}
	return &Factory{
		strategies: map[model.Kind]Translator{
			model.KindOutlet:      &OutletStrategy{},
			model.KindThermometer: climate,
		},
	}, nil
}

func (f *Factory) For(kind model.Kind) (Translator, error) {
	if t, ok := f.strategies[kind]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
}

// LightID builds the stable Hue unique ID of the device stored under
// deviceKey in the room stored under roomKey.
func LightID(roomKey, deviceKey string) string {
	return slug.Make(roomKey) + "." + slug.Make(deviceKey)
}

func (f *Factory) Light(roomKey, deviceKey string, device *model.Device) (*huego.Light, error) {
	t, err := f.For(device.Kind())
	if err != nil {
		return nil, err
	}
	meta := t.Metadata()
	return &huego.Light{
		Name:             device.Name(),
		Type:             meta.Type,
		State:            t.ToHue(device),
		ModelID:          meta.ModelID,
		UniqueID:         LightID(roomKey, deviceKey),
		ManufacturerName: meta.ManufacturerName,
	}, nil
}
