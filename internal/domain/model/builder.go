package model

type DeviceEntry struct {
	Key    string
	Device Device
}

type RoomEntry struct {
	Key  string
	Room *SmartRoom
}

// RoomOf builds a room from key/device pairs. A repeated key keeps the last
// device.
func RoomOf(name string, entries ...DeviceEntry) *SmartRoom {
	r := NewRoom(name, nil)
	for _, e := range entries {
		r.Add(e.Key, e.Device)
	}
	return r
}

func HomeOf(name string, entries ...RoomEntry) *SmartHome {
	h := NewHome(name, nil)
	for _, e := range entries {
		h.AddRoom(e.Key, e.Room)
	}
	return h
}
