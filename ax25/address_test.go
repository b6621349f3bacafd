package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_ParseAddress_format(t *testing.T) {
	cases := []struct {
		in   string
		want Address
	}{
		{"KC3TSS", Address{Callsign: "KC3TSS"}},
		{"N6TSS-0", Address{Callsign: "N6TSS"}},
		{"n6tss-5", Address{Callsign: "N6TSS", SSID: 5}},
		{"KLPRC3*", Address{Callsign: "KLPRC3", HasBeenRepeated: true}},
		{"WIDE2-2*", Address{Callsign: "WIDE2", SSID: 2, HasBeenRepeated: true}},
	}
	for _, c := range cases {
		got, err := ParseAddress(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func Test_ParseAddress_rejectsInvalid(t *testing.T) {
	cases := []string{"", "TOOLONGCALL", "CALL-16", "CALL--1", "CAL!"}
	for _, in := range cases {
		_, err := ParseAddress(in)
		assert.ErrorIs(t, err, ErrInvalidCallsign, in)
	}
}

func Test_Address_Format(t *testing.T) {
	assert.Equal(t, "KC3TSS", Address{Callsign: "KC3TSS"}.Format())
	assert.Equal(t, "N6TSS-5", Address{Callsign: "N6TSS", SSID: 5}.Format())
	assert.Equal(t, "KLPRC3*", Address{Callsign: "KLPRC3", HasBeenRepeated: true}.Format())
}

func genCallsign(t *rapid.T) string {
	length := rapid.IntRange(1, 6).Draw(t, "length")
	chars := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rapid.IntRange(0, len(chars)-1).Draw(t, "char")]
	}
	return string(b)
}

// Invariant 6: parse_address(format_address(a)) == a, for plain addresses
// whose only text-form-carried fields are Callsign, SSID, and
// HasBeenRepeated - IsCommandResponse and IsRepeater are positional and
// are not part of the canonical text form (see Address doc comment).
func Test_Address_canonicalisation_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Address{
			Callsign:        genCallsign(t),
			SSID:            uint8(rapid.IntRange(0, 15).Draw(t, "ssid")),
			HasBeenRepeated: rapid.Bool().Draw(t, "repeated"),
		}
		got, err := ParseAddress(a.Format())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})
}

func Test_encodeDecodeAddressField_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		asRepeater := rapid.Bool().Draw(t, "asRepeater")
		last := rapid.Bool().Draw(t, "last")
		a := Address{
			Callsign: genCallsign(t),
			SSID:     uint8(rapid.IntRange(0, 15).Draw(t, "ssid")),
		}
		if asRepeater {
			a.HasBeenRepeated = rapid.Bool().Draw(t, "hasBeenRepeated")
		} else {
			a.IsCommandResponse = rapid.Bool().Draw(t, "isCommandResponse")
		}

		octets := encodeAddressField(a, asRepeater, last)
		got, gotLast, err := decodeAddressField(octets[:], asRepeater)
		require.NoError(t, err)
		assert.Equal(t, last, gotLast)

		a.IsRepeater = asRepeater
		assert.Equal(t, a, got)
	})
}
