package model

// SmartHome is a name-keyed registry of rooms. Room keys follow the same
// caller-responsibility rule as device keys in SmartRoom.
type SmartHome struct {
	name  string
	rooms map[string]*SmartRoom
}

// NewHome creates a home that takes ownership of the given rooms. Nil rooms
// are skipped.
func NewHome(name string, rooms map[string]*SmartRoom) *SmartHome {
	h := &SmartHome{
		name:  name,
		rooms: make(map[string]*SmartRoom, len(rooms)),
	}
	for key, room := range rooms {
		h.AddRoom(key, room)
	}
	return h
}

func (h *SmartHome) Name() string {
	return h.name
}

func (h *SmartHome) Len() int {
	return len(h.rooms)
}

func (h *SmartHome) Keys() []string {
	return sortedKeys(h.rooms)
}

// ViewRoom returns a deep copy of the room stored under key.
func (h *SmartHome) ViewRoom(key string) (*SmartRoom, bool) {
	room, ok := h.rooms[key]
	if !ok {
		return nil, false
	}
	return room.Clone(), true
}

// GetRoom returns the live room stored under key for in-place mutation.
func (h *SmartHome) GetRoom(key string) (*SmartRoom, bool) {
	room, ok := h.rooms[key]
	return room, ok
}

func (h *SmartHome) AccessRoom(key string) (*SmartRoom, error) {
	room, ok := h.ViewRoom(key)
	if !ok {
		return nil, newRoomAccessError(key, h.name)
	}
	return room, nil
}

// AddRoom inserts or replaces the room stored under key.
func (h *SmartHome) AddRoom(key string, room *SmartRoom) {
	if room == nil {
		return
	}
	h.rooms[key] = room
}

func (h *SmartHome) RemoveRoom(key string) (*SmartRoom, bool) {
	room, ok := h.rooms[key]
	if !ok {
		return nil, false
	}
	delete(h.rooms, key)
	return room, true
}

// Device resolves a room and then a device inside it, stopping at the first
// missing key. The returned Device is a copy.
func (h *SmartHome) Device(roomKey, deviceKey string) (Device, error) {
	room, ok := h.rooms[roomKey]
	if !ok {
		return Device{}, &DeviceAccessError{Room: newRoomAccessError(roomKey, h.name)}
	}
	d, ok := room.View(deviceKey)
	if !ok {
		return Device{}, &DeviceAccessError{Device: newAccessError(deviceKey, room.name)}
	}
	return d, nil
}

// Clone returns a deep copy of the home and all its rooms.
func (h *SmartHome) Clone() *SmartHome {
	c := &SmartHome{
		name:  h.name,
		rooms: make(map[string]*SmartRoom, len(h.rooms)),
	}
	for key, room := range h.rooms {
		c.rooms[key] = room.Clone()
	}
	return c
}

func (h *SmartHome) Report() string {
	return renderHome(h.name, h.rooms)
}

func (h *SmartHome) Info() string {
	return h.Report()
}
