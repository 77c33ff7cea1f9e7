package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecsAgree(t *testing.T) {
	type payload struct {
		ID     string   `json:"id"`
		Values []string `json:"values,omitempty"`
		N      uint64   `json:"n"`
	}
	in := payload{ID: "A001", Values: []string{"甲", "乙"}, N: 42}

	a, err := JSON{}.Marshal(in)
	require.NoError(t, err)
	b, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)
	// go-json must stay byte-compatible with encoding/json for our types:
	// the snapshot header records the codec, but cross-decoding still
	// happens when Default changes between releases.
	assert.Equal(t, string(a), string(b))

	var out payload
	require.NoError(t, GoJSON{}.Unmarshal(a, &out))
	assert.Equal(t, in, out)
	out = payload{}
	require.NoError(t, JSON{}.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestMustMarshal(t *testing.T) {
	t.Run("NilUsesDefault", func(t *testing.T) {
		assert.NotEmpty(t, MustMarshal(nil, map[string]int{"a": 1}))
	})

	t.Run("PanicsOnUnencodable", func(t *testing.T) {
		assert.Panics(t, func() {
			MustMarshal(JSON{}, func() {})
		})
	})
}
