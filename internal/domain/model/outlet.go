package model

import "fmt"

type OutletState uint8

const (
	OutletOff OutletState = iota
	OutletOn
)

func (s OutletState) String() string {
	if s == OutletOn {
		return "On"
	}
	return "Off"
}

// Outlet is a switchable power outlet. Its effective power usage is derived
// from the current state and is never stored.
type Outlet struct {
	name  string
	state OutletState
	power Watt
}

func NewOutlet(name string, initialState OutletState, power Watt) Outlet {
	return Outlet{
		name:  name,
		state: initialState,
		power: power,
	}
}

func (o *Outlet) Name() string {
	return o.name
}

func (o *Outlet) Info() string {
	return fmt.Sprintf("Smart Outlet: %s - Current State: %s, Power Usage: %d Watt", o.name, o.state, o.PowerUsage())
}

func (o *Outlet) TurnOn() {
	o.state = OutletOn
}

func (o *Outlet) TurnOff() {
	o.state = OutletOff
}

func (o *Outlet) Switch() {
	if o.state == OutletOn {
		o.state = OutletOff
		return
	}
	o.state = OutletOn
}

func (o *Outlet) State() OutletState {
	return o.state
}

// PowerUsage returns the effective draw: the nominal rating while the outlet
// is on, zero otherwise.
func (o *Outlet) PowerUsage() Watt {
	if o.state == OutletOn {
		return o.power
	}
	return 0
}

func (o *Outlet) NominalPower() Watt {
	return o.power
}
