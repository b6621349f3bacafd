package ax25

/*------------------------------------------------------------------
 *
 * Purpose:	Encode and decode a single AX.25 address field.
 *
 * Description:	Each address on the air is exactly 7 octets:
 *
 *		* 6 octets of callsign, upper case letters or digits,
 *		  space-padded on the right, each shifted left one bit
 *		  (the low bit is always 0 here).
 *
 *		* 1 SSID octet, bit layout MSB to LSB:
 *
 *			C R R SSID[3:0] E
 *
 *		  C is the command/response bit for the destination and
 *		  source addresses, or the has-been-repeated bit for a
 *		  repeater address - same physical bit, different meaning
 *		  depending on where the address sits in the frame.  R R
 *		  are the reserved bits (always written 1 1; either value
 *		  accepted on decode).  E is set only on the last address
 *		  of the frame; encodeAddressField and decodeAddressField
 *		  take or report it as a separate flag rather than storing
 *		  it on Address,
 *		  since it is purely positional - see frame.go.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a single AX.25 callsign-SSID address, either an endpoint
// (destination/source) or a digipeater hop.
//
// IsRepeater and HasBeenRepeated are only meaningful inside a repeater
// path; IsCommandResponse is only meaningful when the address occupies
// the destination or source slot. A decoded Address carries whichever of
// these the frame codec determined from its position - callers should not
// treat the unused one as load-bearing.
type Address struct {
	Callsign          string
	SSID              uint8
	IsRepeater        bool
	HasBeenRepeated   bool
	IsCommandResponse bool
}

// String renders the canonical text form: CALLSIGN[-SSID][*]. The trailing
// asterisk is a rendering adornment for HasBeenRepeated, matching Dire
// Wolf's monitor-format convention of marking the last digipeater heard.
func (a Address) String() string {
	return a.Format()
}

// Format renders the canonical text form: CALLSIGN[-SSID][*].
func (a Address) Format() string {
	var b strings.Builder
	b.WriteString(a.Callsign)
	if a.SSID != 0 {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(int(a.SSID)))
	}
	if a.HasBeenRepeated {
		b.WriteByte('*')
	}
	return b.String()
}

// ParseAddress parses the text form CALL[-SSID][*] produced by Format.
// Case is normalised to upper; a trailing "*" sets HasBeenRepeated.
// SSID defaults to 0 when omitted.
func ParseAddress(s string) (Address, error) {
	var a Address

	if strings.HasSuffix(s, "*") {
		a.HasBeenRepeated = true
		s = s[:len(s)-1]
	}

	call, ssidStr, hasSSID := strings.Cut(s, "-")
	call = strings.ToUpper(call)

	if call == "" || len(call) > 6 {
		return Address{}, fmt.Errorf("%w: callsign %q must be 1-6 characters", ErrInvalidCallsign, call)
	}
	for i := 0; i < len(call); i++ {
		if !isCallsignChar(call[i]) {
			return Address{}, fmt.Errorf("%w: callsign %q has invalid character %q", ErrInvalidCallsign, call, call[i])
		}
	}
	a.Callsign = call

	if hasSSID {
		ssid, err := strconv.Atoi(ssidStr)
		if err != nil || ssid < 0 || ssid > 15 {
			return Address{}, fmt.Errorf("%w: ssid %q out of range 0-15", ErrInvalidCallsign, ssidStr)
		}
		a.SSID = uint8(ssid)
	}

	return a, nil
}

func isCallsignChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// EncodeAddressRaw packs a's callsign and SSID into the 7-octet address
// field with the C/H and E bits all cleared. This is the form NET/ROM
// routing-broadcast records use for embedded callsigns, which carry no
// command/response, repeated, or end-of-address semantics of their own.
func EncodeAddressRaw(a Address) [7]byte {
	return encodeAddressField(Address{Callsign: a.Callsign, SSID: a.SSID}, false, false)
}

// DecodeAddressRaw reverses EncodeAddressRaw. Any C/H/E bits present in b
// are ignored, per the NET/ROM record format.
func DecodeAddressRaw(b []byte) (Address, error) {
	a, _, err := decodeAddressField(b, false)
	if err != nil {
		return Address{}, err
	}
	a.IsCommandResponse = false
	return a, nil
}

// encodeAddressField packs a into the 7-octet on-air address field. last
// sets the E bit (bit 0 of the SSID octet); asRepeater selects whether bit 7 of
// the SSID octet carries the command/response bit (endpoint) or the
// has-been-repeated bit (repeater), since it is the same physical bit with
// two meanings depending on where the address sits in the frame.
func encodeAddressField(a Address, asRepeater bool, last bool) [7]byte {
	var out [7]byte

	padded := PadASCII(a.Callsign, 6)
	for i := 0; i < 6; i++ {
		out[i] = shiftLeftOne(padded[i])
	}

	var ssidOctet byte
	if asRepeater {
		if a.HasBeenRepeated {
			ssidOctet |= 0x80
		}
	} else if a.IsCommandResponse {
		ssidOctet |= 0x80
	}
	ssidOctet |= 0x60 // reserved bits, always written 1 1
	ssidOctet |= (a.SSID & 0x0f) << 1
	if last {
		ssidOctet |= 0x01
	}
	out[6] = ssidOctet

	return out
}

// decodeAddressField reverses encodeAddressField. asRepeater selects which
// meaning bit 7 of the SSID octet is given. It returns the decoded Address,
// whether the E bit was set, and an error for a malformed field.
func decodeAddressField(b []byte, asRepeater bool) (Address, bool, error) {
	if len(b) < 7 {
		return Address{}, false, fmt.Errorf("%w: need 7 bytes, got %d", ErrInvalidAddress, len(b))
	}

	var callBytes [6]byte
	for i := 0; i < 6; i++ {
		shifted := shiftRightOne(b[i])
		if !isCallsignChar(shifted) && shifted != ' ' {
			return Address{}, false, fmt.Errorf("%w: byte %d decodes to invalid character %q", ErrInvalidAddress, i, shifted)
		}
		callBytes[i] = shifted
	}
	call := UnpadASCII(string(callBytes[:]))
	if call == "" {
		return Address{}, false, fmt.Errorf("%w: callsign is empty after trimming", ErrInvalidAddress)
	}

	ssidOctet := b[6]
	ssid := (ssidOctet >> 1) & 0x0f
	last := ssidOctet&0x01 != 0
	bit7 := ssidOctet&0x80 != 0

	a := Address{
		Callsign:   call,
		SSID:       ssid,
		IsRepeater: asRepeater,
	}
	if asRepeater {
		a.HasBeenRepeated = bit7
	} else {
		a.IsCommandResponse = bit7
	}

	return a, last, nil
}
