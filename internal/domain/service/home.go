package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amimof/huego"
	"go.uber.org/zap"
	"smart-home/internal/domain/model"
	"smart-home/internal/domain/translator"
	"smart-home/internal/ports"
)

var ErrNoReportSink = errors.New("service: no report sink configured")

// HomeService guards a SmartHome with a single RWMutex so it can be shared
// between goroutines. Reads return copies; writes run under the write lock, so
// at most one caller mutates the home at a time.
type HomeService struct {
	home              *model.SmartHome
	sink              ports.ReportSink
	translatorFactory *translator.Factory
	logger            *zap.Logger
	mu                sync.RWMutex
}

func NewHomeService(home *model.SmartHome, sink ports.ReportSink, factory *translator.Factory, logger *zap.Logger) *HomeService {
	if home == nil {
		home = model.NewHome("", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if factory == nil {
		// the default formula is a constant and always parses
		factory, _ = translator.NewFactory(translator.DefaultOptions())
	}
	return &HomeService{
		home:              home,
		sink:              sink,
		translatorFactory: factory,
		logger:            logger.With(zap.String("home", home.Name())),
	}
}

func (s *HomeService) Name() string {
	return s.home.Name()
}

func (s *HomeService) Report() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home.Report()
}

// PublishReport renders the report and hands it to the configured sink. The
// lock is released before the sink is called.
func (s *HomeService) PublishReport(ctx context.Context) error {
	if s.sink == nil {
		return ErrNoReportSink
	}
	report := s.Report()
	if err := s.sink.Publish(ctx, s.home.Name(), report); err != nil {
		s.logger.Error("publishing report failed", zap.Error(err))
		return fmt.Errorf("publishing report: %w", err)
	}
	return nil
}

func (s *HomeService) RoomKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home.Keys()
}

func (s *HomeService) ViewRoom(key string) (*model.SmartRoom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home.ViewRoom(key)
}

func (s *HomeService) AccessRoom(key string) (*model.SmartRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, err := s.home.AccessRoom(key)
	if err != nil {
		s.logger.Debug("room lookup failed", zap.String("room", key), zap.Error(err))
	}
	return room, err
}

func (s *HomeService) Device(roomKey, deviceKey string) (model.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, err := s.home.Device(roomKey, deviceKey)
	if err != nil {
		s.logger.Debug("device lookup failed",
			zap.String("room", roomKey),
			zap.String("device", deviceKey),
			zap.Error(err))
	}
	return d, err
}

// AddRoom stores room under key. The service takes ownership of room; the
// caller must not keep mutating it.
func (s *HomeService) AddRoom(key string, room *model.SmartRoom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home.AddRoom(key, room)
	s.logger.Debug("room added", zap.String("room", key))
}

func (s *HomeService) RemoveRoom(key string) (*model.SmartRoom, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.home.RemoveRoom(key)
	if ok {
		s.logger.Debug("room removed", zap.String("room", key))
	}
	return room, ok
}

// UpdateRoom runs fn on the live room under the write lock. fn must not call
// back into the service.
func (s *HomeService) UpdateRoom(roomKey string, fn func(room *model.SmartRoom) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.home.GetRoom(roomKey)
	if !ok {
		_, err := s.home.AccessRoom(roomKey)
		return err
	}
	if err := fn(room); err != nil {
		return fmt.Errorf("updating room %q: %w", roomKey, err)
	}
	return nil
}

// UpdateDevice runs fn on the live device under the write lock. Lookup
// failures are returned as *model.DeviceAccessError.
func (s *HomeService) UpdateDevice(roomKey, deviceKey string, fn func(device *model.Device) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.home.GetRoom(roomKey)
	if !ok {
		_, err := s.home.Device(roomKey, deviceKey)
		return err
	}
	d, ok := room.Get(deviceKey)
	if !ok {
		_, err := s.home.Device(roomKey, deviceKey)
		return err
	}
	if err := fn(d); err != nil {
		return fmt.Errorf("updating device %q in room %q: %w", deviceKey, roomKey, err)
	}
	return nil
}

func (s *HomeService) AddDevice(roomKey, deviceKey string, device model.Device) error {
	err := s.UpdateRoom(roomKey, func(room *model.SmartRoom) error {
		room.Add(deviceKey, device)
		return nil
	})
	if err == nil {
		s.logger.Debug("device added", zap.String("room", roomKey), zap.String("device", deviceKey))
	}
	return err
}

func (s *HomeService) RemoveDevice(roomKey, deviceKey string) (model.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.home.Device(roomKey, deviceKey)
	if err != nil {
		return model.Device{}, err
	}
	room, _ := s.home.GetRoom(roomKey)
	room.Remove(deviceKey)
	s.logger.Debug("device removed", zap.String("room", roomKey), zap.String("device", deviceKey))
	return d, nil
}

func (s *HomeService) TurnOn(roomKey, deviceKey string) (model.OutletState, error) {
	return s.updateOutlet(roomKey, deviceKey, (*model.Outlet).TurnOn)
}

func (s *HomeService) TurnOff(roomKey, deviceKey string) (model.OutletState, error) {
	return s.updateOutlet(roomKey, deviceKey, (*model.Outlet).TurnOff)
}

func (s *HomeService) Switch(roomKey, deviceKey string) (model.OutletState, error) {
	return s.updateOutlet(roomKey, deviceKey, (*model.Outlet).Switch)
}

func (s *HomeService) updateOutlet(roomKey, deviceKey string, command func(*model.Outlet)) (model.OutletState, error) {
	var state model.OutletState
	err := s.UpdateDevice(roomKey, deviceKey, func(d *model.Device) error {
		outlet, err := d.AsOutlet()
		if err != nil {
			return err
		}
		command(outlet)
		state = outlet.State()
		return nil
	})
	if err != nil {
		return state, err
	}
	s.logger.Debug("outlet state changed",
		zap.String("room", roomKey),
		zap.String("device", deviceKey),
		zap.Stringer("state", state))
	return state, nil
}

// PowerUsage sums the effective draw of every outlet in the home.
func (s *HomeService) PowerUsage() model.Watt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total model.Watt
	for _, roomKey := range s.home.Keys() {
		room, _ := s.home.GetRoom(roomKey)
		for _, deviceKey := range room.Keys() {
			d, _ := room.Get(deviceKey)
			if outlet, err := d.AsOutlet(); err == nil {
				total += outlet.PowerUsage()
			}
		}
	}
	return total
}

// HueLights projects every device in the home onto a Hue light, keyed by
// translator.LightID. Devices without a translator are skipped. Keys that
// slug to an ID already taken get a numeric suffix, assigned in report order.
func (s *HomeService) HueLights() map[string]*huego.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lights := make(map[string]*huego.Light)
	for _, roomKey := range s.home.Keys() {
		room, _ := s.home.GetRoom(roomKey)
		for _, deviceKey := range room.Keys() {
			d, _ := room.Get(deviceKey)
			light, err := s.translatorFactory.Light(roomKey, deviceKey, d)
			if err != nil {
				s.logger.Warn("device has no hue projection",
					zap.String("room", roomKey),
					zap.String("device", deviceKey),
					zap.Error(err))
				continue
			}
			if _, taken := lights[light.UniqueID]; taken {
				id := uniqueLightID(lights, light.UniqueID)
				s.logger.Warn("hue light id collision",
					zap.String("room", roomKey),
					zap.String("device", deviceKey),
					zap.String("id", light.UniqueID),
					zap.String("assigned", id))
				light.UniqueID = id
			}
			lights[light.UniqueID] = light
		}
	}
	return lights
}

func uniqueLightID(lights map[string]*huego.Light, id string) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := lights[candidate]; !taken {
			return candidate
		}
	}
}

func (s *HomeService) ApplyHueState(roomKey, deviceKey string, state *huego.State) error {
	return s.UpdateDevice(roomKey, deviceKey, func(d *model.Device) error {
		t, err := s.translatorFactory.For(d.Kind())
		if err != nil {
			return err
		}
		return t.Apply(state, d)
	})
}
