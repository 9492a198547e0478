package translator

import (
	"github.com/amimof/huego"
	"smart-home/internal/domain/model"
)

const maxBrightness = 254

type OutletStrategy struct{}

func (s *OutletStrategy) ToHue(device *model.Device) *huego.State {
	state := &huego.State{Reachable: true}
	outlet, err := device.AsOutlet()
	if err != nil {
		state.Reachable = false
		return state
	}
	state.On = outlet.State() == model.OutletOn
	if state.On {
		state.Bri = maxBrightness
	}
	return state
}

func (s *OutletStrategy) Apply(state *huego.State, device *model.Device) error {
	outlet, err := device.AsOutlet()
	if err != nil {
		return err
	}
	if state.On {
		outlet.TurnOn()
	} else {
		outlet.TurnOff()
	}
	return nil
}

func (s *OutletStrategy) Metadata() Metadata {
	return Metadata{
		Type:             "On/Off plug-in unit",
		ModelID:          "LOM001",
		ManufacturerName: "Philips",
	}
}
