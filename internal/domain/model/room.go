package model

// SmartRoom is a name-keyed registry of devices.
//
// The key a device is stored under is what View, Get, Access and Remove look
// up and what the report is ordered by. The device's own name is what its
// report line shows. Add does not check that the two agree; keeping them
// consistent is up to the caller.
type SmartRoom struct {
	name    string
	devices map[string]*Device
}

// NewRoom creates a room owning copies of the given devices.
func NewRoom(name string, devices map[string]Device) *SmartRoom {
	r := &SmartRoom{
		name:    name,
		devices: make(map[string]*Device, len(devices)),
	}
	for key, d := range devices {
		r.Add(key, d)
	}
	return r
}

func (r *SmartRoom) Name() string {
	return r.name
}

func (r *SmartRoom) Len() int {
	return len(r.devices)
}

// Keys returns device keys in report order.
func (r *SmartRoom) Keys() []string {
	return sortedKeys(r.devices)
}

// View returns a copy of the device stored under key. Changes to the copy are
// not reflected in the room.
func (r *SmartRoom) View(key string) (Device, bool) {
	d, ok := r.devices[key]
	if !ok {
		return Device{}, false
	}
	return *d, true
}

// Get returns the live device stored under key for in-place mutation.
func (r *SmartRoom) Get(key string) (*Device, bool) {
	d, ok := r.devices[key]
	return d, ok
}

// Access is View with a typed *AccessError on absence.
func (r *SmartRoom) Access(key string) (Device, error) {
	d, ok := r.View(key)
	if !ok {
		return Device{}, newAccessError(key, r.name)
	}
	return d, nil
}

// Add inserts or replaces the device stored under key.
func (r *SmartRoom) Add(key string, device Device) {
	d := device
	r.devices[key] = &d
}

func (r *SmartRoom) Remove(key string) (Device, bool) {
	d, ok := r.devices[key]
	if !ok {
		return Device{}, false
	}
	delete(r.devices, key)
	return *d, true
}

// Clone returns a deep copy of the room.
func (r *SmartRoom) Clone() *SmartRoom {
	c := &SmartRoom{
		name:    r.name,
		devices: make(map[string]*Device, len(r.devices)),
	}
	for key, d := range r.devices {
		c.Add(key, *d)
	}
	return c
}

func (r *SmartRoom) Report() string {
	return renderRoom(r.name, r.devices)
}

func (r *SmartRoom) Info() string {
	return r.Report()
}
