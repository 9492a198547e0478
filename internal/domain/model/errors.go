package model

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks:
//
//	if errors.Is(err, model.ErrRoomNotFound) {
//	    // create the room
//	}
var (
	ErrDeviceNotFound = errors.New("device: not found")
	ErrRoomNotFound   = errors.New("room: not found")
	ErrWrongKind      = errors.New("device: wrong kind")
)

// AccessError reports a device key missing from a room.
type AccessError struct {
	Key     string
	Room    string
	Message string
}

func newAccessError(key, room string) *AccessError {
	return &AccessError{
		Key:     key,
		Room:    room,
		Message: fmt.Sprintf("Device with the name '%s' not found in the room '%s'", key, room),
	}
}

func (e *AccessError) Error() string {
	return e.Message
}

func (e *AccessError) Is(target error) bool {
	return target == ErrDeviceNotFound
}

// RoomAccessError reports a room key missing from a home.
type RoomAccessError struct {
	Key     string
	Home    string
	Message string
}

func newRoomAccessError(key, home string) *RoomAccessError {
	return &RoomAccessError{
		Key:     key,
		Home:    home,
		Message: fmt.Sprintf("Room with the name '%s' not found in the house '%s'", key, home),
	}
}

func (e *RoomAccessError) Error() string {
	return e.Message
}

func (e *RoomAccessError) Is(target error) bool {
	return target == ErrRoomNotFound
}

type AccessLevel int

const (
	LevelRoom AccessLevel = iota + 1
	LevelDevice
)

func (l AccessLevel) String() string {
	switch l {
	case LevelRoom:
		return "room"
	case LevelDevice:
		return "device"
	default:
		return "unknown"
	}
}

// DeviceAccessError is returned by SmartHome.Device. Exactly one of Room or
// Device is set, depending on which lookup failed.
type DeviceAccessError struct {
	Room   *RoomAccessError
	Device *AccessError
}

func (e *DeviceAccessError) Level() AccessLevel {
	if e.Room != nil {
		return LevelRoom
	}
	return LevelDevice
}

func (e *DeviceAccessError) Error() string {
	return e.Unwrap().Error()
}

func (e *DeviceAccessError) Unwrap() error {
	if e.Room != nil {
		return e.Room
	}
	return e.Device
}

// WrongKindError is returned when a kind-specific accessor is used on a
// device of another kind.
type WrongKindError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *WrongKindError) Error() string {
	got := string(e.Got)
	if e.Got == KindEmpty {
		got = "empty"
	}
	return fmt.Sprintf("device '%s' is %s, not %s", e.Name, got, e.Want)
}

func (e *WrongKindError) Is(target error) bool {
	return target == ErrWrongKind
}
