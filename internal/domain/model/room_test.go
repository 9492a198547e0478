package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func livingRoom() *SmartRoom {
	return RoomOf("Living Room",
		DeviceEntry{"Lighter", NewOutletDevice("Lighter", OutletOn, 100)},
		DeviceEntry{"PC", NewOutletDevice("PC", OutletOn, 250)},
		DeviceEntry{"Electronic thermometer", NewThermometerDevice("Electronic thermometer", 22.5)},
	)
}

func TestSmartRoom_CreateEmpty(t *testing.T) {
	room := NewRoom("Living Room", nil)
	assert.Equal(t, "Living Room", room.Name())
	assert.Equal(t, 0, room.Len())

	_, ok := room.View("Some device")
	assert.False(t, ok)
	d, ok := room.Get("Some device")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestSmartRoom_NewRoomCopiesDevices(t *testing.T) {
	devices := map[string]Device{"PC": NewOutletDevice("PC", OutletOn, 250)}
	room := NewRoom("Office", devices)

	delete(devices, "PC")
	assert.Equal(t, 1, room.Len())
}

func TestSmartRoom_View(t *testing.T) {
	room := livingRoom()
	assert.Equal(t, 3, room.Len())

	d, ok := room.View("Lighter")
	require.True(t, ok)
	assert.Equal(t, "Lighter", d.Name())
	assert.Equal(t, "Smart Outlet: Lighter - Current State: On, Power Usage: 100 Watt", d.Info())

	// mutating a viewed copy leaves the room untouched
	o, err := d.AsOutlet()
	require.NoError(t, err)
	o.TurnOff()
	again, _ := room.View("Lighter")
	assert.Equal(t, "Smart Outlet: Lighter - Current State: On, Power Usage: 100 Watt", again.Info())
}

func TestSmartRoom_Get(t *testing.T) {
	room := RoomOf("Living Room",
		DeviceEntry{"Smart Outlet lighter", NewOutletDevice("Smart Outlet lighter", OutletOn, 100)},
		DeviceEntry{"Smart Outlet PC", NewOutletDevice("Smart Outlet PC", OutletOn, 250)},
	)

	d, ok := room.Get("Smart Outlet lighter")
	require.True(t, ok)
	o, err := d.AsOutlet()
	require.NoError(t, err)
	o.Switch()
	assert.Equal(t, OutletOff, o.State())

	viewed, _ := room.View("Smart Outlet lighter")
	assert.Equal(t, "Smart Outlet: Smart Outlet lighter - Current State: Off, Power Usage: 0 Watt", viewed.Info())
	viewed, _ = room.View("Smart Outlet PC")
	assert.Equal(t, "Smart Outlet: Smart Outlet PC - Current State: On, Power Usage: 250 Watt", viewed.Info())
}

func TestSmartRoom_AddThenGetReturnsSameDevice(t *testing.T) {
	room := NewRoom("Kitchen", nil)
	devices := []Device{
		NewOutletDevice("Kettle", OutletOff, 2200),
		NewThermometerDevice("Fridge", 4.5),
		NewOutletDevice("Toaster", OutletOn, 900),
	}
	for _, d := range devices {
		room.Add(d.Name(), d)
		got, ok := room.Get(d.Name())
		require.True(t, ok)
		assert.Equal(t, d, *got)
	}
}

func TestSmartRoom_AddReplaces(t *testing.T) {
	room := NewRoom("Kitchen", nil)
	room.Add("Kettle", NewOutletDevice("Kettle", OutletOff, 2200))
	room.Add("Kettle", NewOutletDevice("Kettle", OutletOn, 1800))

	assert.Equal(t, 1, room.Len())
	d, _ := room.View("Kettle")
	assert.Equal(t, "Smart Outlet: Kettle - Current State: On, Power Usage: 1800 Watt", d.Info())
}

func TestSmartRoom_Remove(t *testing.T) {
	room := NewRoom("Living Room", nil)
	outlet := NewOutletDevice("Smart Outlet", OutletOn, 150)
	room.Add("Smart Outlet", outlet)

	_, ok := room.Remove("Not existing device")
	assert.False(t, ok)
	assert.Equal(t, 1, room.Len())

	removed, ok := room.Remove("Smart Outlet")
	require.True(t, ok)
	assert.Equal(t, outlet, removed)
	assert.Equal(t, 0, room.Len())
	_, ok = room.View("Smart Outlet")
	assert.False(t, ok)
}

func TestSmartRoom_Access(t *testing.T) {
	room := RoomOf("Living Room",
		DeviceEntry{"Smart Outlet PC", NewOutletDevice("Smart Outlet PC", OutletOn, 250)},
	)

	d, err := room.Access("Smart Outlet PC")
	require.NoError(t, err)
	assert.Equal(t, "Smart Outlet PC", d.Name())

	d, err = room.Access("Non-existing device")
	require.Error(t, err)
	assert.True(t, d.IsEmpty())
	assert.Equal(t, "Device with the name 'Non-existing device' not found in the room 'Living Room'", err.Error())
	assert.True(t, errors.Is(err, ErrDeviceNotFound))
	assert.False(t, errors.Is(err, ErrRoomNotFound))

	var ae *AccessError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Non-existing device", ae.Key)
	assert.Equal(t, "Living Room", ae.Room)
}

func TestSmartRoom_Report(t *testing.T) {
	room := NewRoom("Living Room", nil)
	room.Add("Smart Outlet lighter", NewOutletDevice("Smart Outlet lighter", OutletOn, 100))
	room.Add("Smart Outlet PC", NewOutletDevice("Smart Outlet PC", OutletOn, 250))
	room.Add("Smart Thermometer", NewThermometerDevice("Smart Thermometer", 22.5))

	expected := `
Smart Room: Living Room:
 Total devices: 3
  [0]: Smart Outlet: Smart Outlet PC - Current State: On, Power Usage: 250 Watt
  --------------------------------------
  [1]: Smart Outlet: Smart Outlet lighter - Current State: On, Power Usage: 100 Watt
  --------------------------------------
  [2]: Thermometer: Smart Thermometer - Current Temperature: 22.50°C`
	assert.Equal(t, expected, room.Report())
	assert.Equal(t, expected, room.Info())
}

func TestSmartRoom_ReportSortedByKey(t *testing.T) {
	room := NewRoom("Office", nil)
	room.Add("B", NewOutletDevice("B", OutletOn, 250))
	room.Add("A", NewOutletDevice("A", OutletOn, 100))

	expected := "\nSmart Room: Office:\n Total devices: 2\n" +
		"  [0]: Smart Outlet: A - Current State: On, Power Usage: 100 Watt" +
		"\n  --------------------------------------\n" +
		"  [1]: Smart Outlet: B - Current State: On, Power Usage: 250 Watt"
	assert.Equal(t, expected, room.Report())
	assert.Equal(t, []string{"A", "B"}, room.Keys())
}

func TestSmartRoom_ReportIndependentOfInsertionOrder(t *testing.T) {
	entries := []DeviceEntry{
		{"Kettle", NewOutletDevice("Kettle", OutletOff, 2200)},
		{"Fridge", NewOutletDevice("Fridge", OutletOn, 150)},
		{"Sensor", NewThermometerDevice("Sensor", 21.25)},
		{"Toaster", NewOutletDevice("Toaster", OutletOn, 900)},
	}
	reversed := []DeviceEntry{entries[3], entries[2], entries[1], entries[0]}
	shuffled := []DeviceEntry{entries[2], entries[0], entries[3], entries[1]}

	want := RoomOf("Kitchen", entries...).Report()
	assert.Equal(t, want, RoomOf("Kitchen", reversed...).Report())
	assert.Equal(t, want, RoomOf("Kitchen", shuffled...).Report())
}

func TestSmartRoom_ReportEmpty(t *testing.T) {
	assert.Equal(t, "\nSmart Room: Hall:\n Total devices: 0\n  ", NewRoom("Hall", nil).Report())
}

func TestSmartRoom_ReportUsesDeviceNameForMismatchedKey(t *testing.T) {
	room := NewRoom("Office", nil)
	room.Add("desk", NewOutletDevice("Desk Lamp", OutletOff, 40))

	_, ok := room.View("Desk Lamp")
	assert.False(t, ok)
	assert.Contains(t, room.Report(), "[0]: Smart Outlet: Desk Lamp - Current State: Off")
}

func TestSmartRoom_Clone(t *testing.T) {
	room := livingRoom()
	c := room.Clone()

	d, _ := c.Get("PC")
	o, err := d.AsOutlet()
	require.NoError(t, err)
	o.TurnOff()
	c.Remove("Lighter")

	assert.Equal(t, 3, room.Len())
	orig, _ := room.View("PC")
	assert.Equal(t, "Smart Outlet: PC - Current State: On, Power Usage: 250 Watt", orig.Info())
}

func TestRoomOf_LastEntryWins(t *testing.T) {
	room := RoomOf("Kitchen",
		DeviceEntry{"Kettle", NewOutletDevice("Kettle", OutletOff, 2200)},
		DeviceEntry{"Kettle", NewOutletDevice("Kettle", OutletOn, 2200)},
	)
	assert.Equal(t, 1, room.Len())
	d, _ := room.View("Kettle")
	o, _ := d.AsOutlet()
	assert.Equal(t, OutletOn, o.State())
}
