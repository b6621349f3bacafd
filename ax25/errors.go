package ax25

import "errors"

// Sentinel errors for the decode/parse paths, per the AX.25 v2.2 codec's
// error taxonomy. Wrap these with fmt.Errorf("...: %w", Err...) to attach
// context (offset, observed byte, etc.) and compare with errors.Is.
var (
	// ErrInvalidCallsign is returned when parsing a textual address fails:
	// length, charset, or SSID out of range.
	ErrInvalidCallsign = errors.New("ax25: invalid callsign")

	// ErrInvalidAddress is returned when a 7-octet on-air address field is
	// malformed: fewer than 7 bytes, non-alphanumeric callsign byte, or
	// empty callsign after trimming.
	ErrInvalidAddress = errors.New("ax25: invalid address field")

	// ErrInvalidControl is returned when a control octet does not match any
	// known I/S/U bit pattern.
	ErrInvalidControl = errors.New("ax25: invalid control field")

	// ErrTruncatedFrame is returned when the buffer ends before the
	// address-list terminator (E bit) or before the control field.
	ErrTruncatedFrame = errors.New("ax25: truncated frame")

	// ErrTooManyRepeaters is returned when more than 8 repeater addresses
	// appear in the address list.
	ErrTooManyRepeaters = errors.New("ax25: too many repeater addresses")

	// ErrUnexpectedTrailer is returned when bytes remain after a frame type
	// that carries no payload (S or non-UI U frames).
	ErrUnexpectedTrailer = errors.New("ax25: unexpected trailing bytes")
)
