package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	deviceSeparator = "\n  --------------------------------------\n  "
	roomSeparator   = "\n=====================================\n"
)

// sortedKeys returns the map keys in ascending byte order so that reports do
// not depend on map iteration or insertion order.
func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

func renderRoom(name string, devices map[string]*Device) string {
	lines := lo.Map(sortedKeys(devices), func(key string, i int) string {
		return fmt.Sprintf("[%d]: %s", i, devices[key].Info())
	})
	return fmt.Sprintf("\nSmart Room: %s:\n Total devices: %d\n  %s",
		name, len(lines), strings.Join(lines, deviceSeparator))
}

func renderHome(name string, rooms map[string]*SmartRoom) string {
	blocks := lo.Map(sortedKeys(rooms), func(key string, i int) string {
		return fmt.Sprintf("Room[%d]:%s", i, rooms[key].Report())
	})
	return fmt.Sprintf("Smart Home: %s:\n Total Rooms: %d\n\n%s",
		name, len(blocks), strings.Join(blocks, roomSeparator))
}
