package translator

import (
	"errors"

	"github.com/amimof/huego"
	"smart-home/internal/domain/model"
)

var (
	// ErrReadOnly is returned when a Hue state is applied to a device that
	// cannot be commanded.
	ErrReadOnly = errors.New("translator: device is read-only")

	ErrUnsupportedKind = errors.New("translator: unsupported device kind")
)

type Metadata struct {
	Type             string
	ModelID          string
	ManufacturerName string
}

// Translator defines the interface for projecting devices onto Hue lights and
// applying Hue state changes back to them
type Translator interface {
	ToHue(device *model.Device) *huego.State
	Apply(state *huego.State, device *model.Device) error
	Metadata() Metadata
}
