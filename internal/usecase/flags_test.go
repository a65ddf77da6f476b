package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	flags := Flags{
		"name":    "multisig",
		"enabled": true,
		"text":    "yes",
		"list":    "[0x1, 0x2 , '0x3']",
		"slice":   []string{"a", "b"},
		"any":     []any{1, "two"},
		"id":      "0x10",
		"bad":     "ten",
		"empty":   nil,
	}

	assert.True(t, flags.Has("name"))
	assert.False(t, flags.Has("empty"))
	assert.False(t, flags.Has("missing"))

	assert.Equal(t, "multisig", flags.String("name"))
	assert.Equal(t, "", flags.String("missing"))
	assert.Equal(t, "true", flags.String("enabled"))

	assert.True(t, flags.Bool("enabled"))
	assert.False(t, flags.Bool("text"))
	assert.False(t, flags.Bool("missing"))

	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, flags.StringSlice("list"))
	assert.Equal(t, []string{"a", "b"}, flags.StringSlice("slice"))
	assert.Equal(t, []string{"1", "two"}, flags.StringSlice("any"))
	assert.Nil(t, flags.StringSlice("missing"))

	v, ok, err := flags.Uint64("id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(16), v)

	_, ok, err = flags.Uint64("missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = flags.Uint64("bad")
	assert.Error(t, err)
	assert.True(t, ok)
}

func TestDecodeInput(t *testing.T) {
	type payload struct {
		Signers   []string `json:"signers"`
		Threshold string   `json:"threshold"`
	}
	want := payload{Signers: []string{"0x1", "0x2"}, Threshold: "2"}

	tests := []struct {
		name string
		raw  any
	}{
		{"json text", `{"signers": ["0x1", "0x2"], "threshold": "2"}`},
		{"yaml text", "signers:\n  - \"0x1\"\n  - \"0x2\"\nthreshold: \"2\"\n"},
		{"bytes", []byte(`{"signers": ["0x1", "0x2"], "threshold": "2"}`)},
		{"map", map[string]any{"signers": []any{"0x1", "0x2"}, "threshold": "2"}},
		{"value", want},
		{"pointer", &want},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInput[payload](tt.raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeInput[payload]("{signers: [")
		assert.Error(t, err)
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := DecodeInput[payload](`{"signers": "0x1"}`)
		assert.Error(t, err)
	})
}
