// Package pulse implements the audio backend against the PulseAudio D-Bus
// API (org.PulseAudio.Core1), which PipeWire also provides through its
// PulseAudio compatibility layer.
//
// PulseAudio is not reached through the session bus: the server runs its
// own peer-to-peer D-Bus socket whose address is published on the session
// bus by org.PulseAudio.ServerLookup1 (or via $PULSE_DBUS_SERVER).
package pulse

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/volctl/internal/backend"
	"github.com/jmylchreest/volctl/internal/model"
)

const (
	lookupDest  = "org.PulseAudio1"
	lookupPath  = "/org/pulseaudio/server_lookup1"
	lookupIface = "org.PulseAudio.ServerLookup1"
	corePath    = "/org/pulseaudio/core1"
	coreIface   = "org.PulseAudio.Core1"
	streamIface = "org.PulseAudio.Core1.Stream"
	propsIface  = "org.freedesktop.DBus.Properties"

	// volumeNorm is PA_VOLUME_NORM: the per-channel value PulseAudio
	// treats as 100%.
	volumeNorm = 65536
)

// Stream property-list keys used for naming and classification.
const (
	propProcessBinary = "application.process.binary"
	propAppName       = "application.name"
	propMediaRole     = "media.role"
)

// Backend talks to one PulseAudio server over its peer D-Bus connection.
type Backend struct {
	conn   *dbus.Conn
	logger *slog.Logger
}

// New connects to the PulseAudio server. Any failure to discover or reach
// the server wraps backend.ErrUnavailable.
func New(ctx context.Context, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	addr, err := serverAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}
	logger.Debug("connecting to pulseaudio", "address", addr)

	conn, err := dbus.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", backend.ErrUnavailable, addr, err)
	}
	// Peer connection: authenticate but do not send Hello, PulseAudio is
	// not a message bus.
	if err := conn.Auth(nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: auth: %v", backend.ErrUnavailable, err)
	}

	return &Backend{conn: conn, logger: logger}, nil
}

// serverAddress resolves the peer socket address, preferring the
// PULSE_DBUS_SERVER environment variable over the session-bus lookup
// object.
func serverAddress(ctx context.Context) (string, error) {
	if addr := os.Getenv("PULSE_DBUS_SERVER"); addr != "" {
		return addr, nil
	}

	session, err := dbus.SessionBus()
	if err != nil {
		return "", fmt.Errorf("session bus: %w", err)
	}

	var variant dbus.Variant
	err = session.Object(lookupDest, lookupPath).
		CallWithContext(ctx, propsIface+".Get", 0, lookupIface, "Address").
		Store(&variant)
	if err != nil {
		return "", fmt.Errorf("server lookup (is module-dbus-protocol loaded?): %w", err)
	}

	addr, ok := variant.Value().(string)
	if !ok || addr == "" {
		return "", fmt.Errorf("server lookup returned no address")
	}
	return addr, nil
}

// Sessions returns a fresh snapshot of all playback streams, including
// the system-sounds (event role) stream when one exists.
func (b *Backend) Sessions(ctx context.Context) ([]model.Session, error) {
	var variant dbus.Variant
	err := b.conn.Object(coreIface, corePath).
		CallWithContext(ctx, propsIface+".Get", 0, coreIface, "PlaybackStreams").
		Store(&variant)
	if err != nil {
		return nil, fmt.Errorf("list playback streams: %w", err)
	}

	paths, ok := variant.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, fmt.Errorf("list playback streams: unexpected type %T", variant.Value())
	}

	sessions := make([]model.Session, 0, len(paths))
	for _, path := range paths {
		s, err := b.readStream(ctx, path)
		if err != nil {
			// A stream can disappear between enumeration and the
			// property reads. Skip it rather than failing the snapshot.
			b.logger.Debug("skipping stream", "path", path, "error", err)
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// readStream reads one stream's volume, mute, cork and property list.
func (b *Backend) readStream(ctx context.Context, path dbus.ObjectPath) (model.Session, error) {
	obj := b.conn.Object(coreIface, path)

	channels, err := streamVolume(ctx, obj)
	if err != nil {
		return model.Session{}, err
	}

	var muted bool
	if err := getProp(ctx, obj, streamIface, "Mute", &muted); err != nil {
		return model.Session{}, err
	}

	var corked bool
	if err := getProp(ctx, obj, streamIface, "Corked", &corked); err != nil {
		return model.Session{}, err
	}

	var propList map[string][]byte
	if err := getProp(ctx, obj, streamIface, "PropertyList", &propList); err != nil {
		return model.Session{}, err
	}

	s := model.Session{
		Key:    string(path),
		Volume: scalarFromChannels(channels),
		Muted:  muted,
		Corked: corked,
	}

	if propString(propList, propMediaRole) == "event" {
		s.SystemSounds = true
		s.ProcessName = model.SystemSoundsName
		return s, nil
	}

	name := propString(propList, propProcessBinary)
	if name == "" {
		name = propString(propList, propAppName)
	}
	s.ProcessName = name
	return s, nil
}

// SetVolume writes the scalar to every channel of the stream. The current
// channel map is read first so the channel count is preserved.
func (b *Backend) SetVolume(ctx context.Context, key string, volume float64) error {
	obj := b.conn.Object(coreIface, dbus.ObjectPath(key))

	channels, err := streamVolume(ctx, obj)
	if err != nil {
		return fmt.Errorf("read channel map: %w", err)
	}

	err = obj.CallWithContext(ctx, propsIface+".Set", 0,
		streamIface, "Volume",
		dbus.MakeVariant(channelsForScalar(volume, len(channels)))).Err
	if err != nil {
		return fmt.Errorf("set volume: %w", err)
	}
	return nil
}

// SetMute writes the mute flag of the stream.
func (b *Backend) SetMute(ctx context.Context, key string, muted bool) error {
	obj := b.conn.Object(coreIface, dbus.ObjectPath(key))

	err := obj.CallWithContext(ctx, propsIface+".Set", 0,
		streamIface, "Mute", dbus.MakeVariant(muted)).Err
	if err != nil {
		return fmt.Errorf("set mute: %w", err)
	}
	return nil
}

// Close releases the peer connection.
func (b *Backend) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}

// streamVolume reads the per-channel volume array of a stream.
func streamVolume(ctx context.Context, obj dbus.BusObject) ([]uint32, error) {
	var channels []uint32
	if err := getProp(ctx, obj, streamIface, "Volume", &channels); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("stream reported no volume channels")
	}
	return channels, nil
}

// getProp reads a D-Bus property into dest.
func getProp(ctx context.Context, obj dbus.BusObject, iface, name string, dest any) error {
	var variant dbus.Variant
	err := obj.CallWithContext(ctx, propsIface+".Get", 0, iface, name).Store(&variant)
	if err != nil {
		return fmt.Errorf("get %s.%s: %w", iface, name, err)
	}
	if err := variant.Store(dest); err != nil {
		return fmt.Errorf("get %s.%s: %w", iface, name, err)
	}
	return nil
}

// scalarFromChannels converts PulseAudio per-channel volumes to a single
// [0.0, 1.0] scalar: the mean across channels relative to PA_VOLUME_NORM,
// clamped so boosted streams (>100%) still satisfy the scalar contract.
func scalarFromChannels(channels []uint32) float64 {
	if len(channels) == 0 {
		return 0
	}
	var sum uint64
	for _, c := range channels {
		sum += uint64(c)
	}
	v := float64(sum) / float64(len(channels)) / volumeNorm
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// channelsForScalar expands a [0.0, 1.0] scalar into a per-channel volume
// array of the given length.
func channelsForScalar(v float64, channels int) []uint32 {
	if channels <= 0 {
		channels = 1
	}
	raw := uint32(v*volumeNorm + 0.5)
	out := make([]uint32, channels)
	for i := range out {
		out[i] = raw
	}
	return out
}

// propString extracts a stream property-list value. PulseAudio stores
// values as NUL-terminated byte strings.
func propString(props map[string][]byte, key string) string {
	return string(bytes.TrimRight(props[key], "\x00"))
}
