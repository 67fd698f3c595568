package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarFromChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []uint32
		want     float64
	}{
		{"full volume stereo", []uint32{65536, 65536}, 1.0},
		{"half volume mono", []uint32{32768}, 0.5},
		{"silent", []uint32{0, 0}, 0.0},
		{"unbalanced channels average", []uint32{0, 65536}, 0.5},
		{"boosted stream clamps", []uint32{98304, 98304}, 1.0},
		{"empty", nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scalarFromChannels(tt.channels), 1e-9)
		})
	}
}

func TestChannelsForScalar(t *testing.T) {
	channels := channelsForScalar(0.5, 2)
	assert.Equal(t, []uint32{32768, 32768}, channels)

	channels = channelsForScalar(1.0, 1)
	assert.Equal(t, []uint32{65536}, channels)

	channels = channelsForScalar(0.0, 6)
	assert.Len(t, channels, 6)
	for _, c := range channels {
		assert.Zero(t, c)
	}

	// Zero channel count still produces a writable array.
	channels = channelsForScalar(0.5, 0)
	assert.Len(t, channels, 1)
}

func TestScalarChannelRoundTrip(t *testing.T) {
	for _, v := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		got := scalarFromChannels(channelsForScalar(v, 2))
		assert.InDelta(t, v, got, 1.0/volumeNorm)
	}
}

func TestPropString(t *testing.T) {
	props := map[string][]byte{
		propProcessBinary: []byte("firefox\x00"),
		propMediaRole:     []byte("event\x00"),
		"empty":           nil,
	}

	assert.Equal(t, "firefox", propString(props, propProcessBinary))
	assert.Equal(t, "event", propString(props, propMediaRole))
	assert.Equal(t, "", propString(props, "empty"))
	assert.Equal(t, "", propString(props, "missing"))
}
