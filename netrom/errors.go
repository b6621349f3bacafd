package netrom

import "errors"

// Sentinel errors for NET/ROM routing-broadcast decode failures.
var (
	// ErrInvalidSignature is returned when the payload does not begin
	// with the NET/ROM routing-broadcast signature byte 0xFF.
	ErrInvalidSignature = errors.New("netrom: invalid routing-broadcast signature")

	// ErrTruncatedRecord is returned when the body length after the
	// sender mnemonic is not an exact multiple of the 21-byte
	// destination record size.
	ErrTruncatedRecord = errors.New("netrom: truncated destination record")

	// ErrInvalidMnemonic is returned when encoding a sender or
	// destination mnemonic longer than 6 characters or containing a
	// non-ASCII byte.
	ErrInvalidMnemonic = errors.New("netrom: invalid mnemonic")
)
