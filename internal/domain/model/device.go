package model

import "fmt"

type Kind string

const (
	// KindEmpty marks the zero Device, used as a placeholder on not-found paths.
	KindEmpty       Kind = ""
	KindOutlet      Kind = "outlet"
	KindThermometer Kind = "thermometer"
)

const (
	emptyDeviceName = "No Device"
	emptyDeviceInfo = "No Device Info"
)

// Reporter is implemented by everything that can describe itself: devices,
// rooms and homes.
type Reporter interface {
	Name() string
	Info() string
}

// Device is a closed variant over the supported device kinds. The zero value
// is the empty sentinel and is never stored in a room.
type Device struct {
	kind        Kind
	outlet      Outlet
	thermometer Thermometer
}

func NewOutletDevice(name string, initialState OutletState, power Watt) Device {
	return Device{kind: KindOutlet, outlet: NewOutlet(name, initialState, power)}
}

func NewThermometerDevice(name string, temperature Celsius) Device {
	return Device{kind: KindThermometer, thermometer: NewThermometer(name, temperature)}
}

func (d Device) Kind() Kind {
	return d.kind
}

func (d Device) IsEmpty() bool {
	return d.kind == KindEmpty
}

func (d Device) Name() string {
	switch d.kind {
	case KindOutlet:
		return d.outlet.Name()
	case KindThermometer:
		return d.thermometer.Name()
	default:
		return emptyDeviceName
	}
}

func (d Device) Info() string {
	switch d.kind {
	case KindOutlet:
		return d.outlet.Info()
	case KindThermometer:
		return d.thermometer.Info()
	default:
		return emptyDeviceInfo
	}
}

func (d Device) String() string {
	switch d.kind {
	case KindOutlet:
		return fmt.Sprintf("Outlet: %s\n%s", d.outlet.Name(), d.outlet.Info())
	case KindThermometer:
		return fmt.Sprintf("Thermometer: %s\n%s", d.thermometer.Name(), d.thermometer.Info())
	default:
		return emptyDeviceName
	}
}

// AsOutlet returns the underlying outlet. Mutations through the returned
// pointer change this Device in place.
func (d *Device) AsOutlet() (*Outlet, error) {
	if d.kind != KindOutlet {
		return nil, &WrongKindError{Name: d.Name(), Want: KindOutlet, Got: d.kind}
	}
	return &d.outlet, nil
}

func (d *Device) AsThermometer() (*Thermometer, error) {
	if d.kind != KindThermometer {
		return nil, &WrongKindError{Name: d.Name(), Want: KindThermometer, Got: d.kind}
	}
	return &d.thermometer, nil
}
