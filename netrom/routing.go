package netrom

/*------------------------------------------------------------------
 *
 * Purpose:	Encode and decode a NET/ROM routing-broadcast payload, the
 *		information field of a UI frame with PID 0xCF.
 *
 * Description:	Layout:
 *
 *		offset 0   1 byte   signature, always 0xFF
 *		offset 1   6 bytes  sender mnemonic, ASCII, space-padded
 *		offset 7   N*21     destination records
 *
 *		Each destination record:
 *
 *		offset 0   7 bytes  destination callsign (address encoding;
 *				    C/R/H bits ignored on decode, cleared on
 *				    encode; E bit not applicable, written 0)
 *		offset 7   6 bytes  destination mnemonic, ASCII, space-padded
 *		offset 13  7 bytes  best-neighbour callsign (as above)
 *		offset 20  1 byte   best quality, 0-255
 *
 *------------------------------------------------------------------*/

import (
	"fmt"

	"github.com/kf6anx/ax25codec/ax25"
)

// PID is the AX.25 protocol identifier that marks a UI frame's
// information field as a NET/ROM routing broadcast.
const PID = 0xCF

const signature = 0xFF
const recordSize = 21
const mnemonicSize = 6

// Destination is one advertised route in a routing broadcast.
type Destination struct {
	Callsign     ax25.Address
	Mnemonic     string
	BestNeighbor ax25.Address
	BestQuality  uint8
}

// RoutingBroadcast is the fully-decoded payload of a NET/ROM routing
// broadcast: a sender mnemonic plus its advertised destinations, in order.
type RoutingBroadcast struct {
	Sender       string
	Destinations []Destination
}

// Decode parses the information field of a PID-0xCF UI frame.
func Decode(b []byte) (RoutingBroadcast, error) {
	if len(b) == 0 || b[0] != signature {
		return RoutingBroadcast{}, fmt.Errorf("%w: expected 0x%02x, got %v", ErrInvalidSignature, signature, b)
	}
	if len(b) < 1+mnemonicSize {
		return RoutingBroadcast{}, fmt.Errorf("%w: sender mnemonic truncated", ErrTruncatedRecord)
	}

	r := RoutingBroadcast{
		Sender: ax25.UnpadASCII(string(b[1 : 1+mnemonicSize])),
	}

	body := b[1+mnemonicSize:]
	if len(body)%recordSize != 0 {
		return RoutingBroadcast{}, fmt.Errorf("%w: %d trailing bytes is not a multiple of %d", ErrTruncatedRecord, len(body), recordSize)
	}

	n := len(body) / recordSize
	for i := 0; i < n; i++ {
		rec := body[i*recordSize : (i+1)*recordSize]

		callsign, err := ax25.DecodeAddressRaw(rec[0:7])
		if err != nil {
			return RoutingBroadcast{}, err
		}
		bestNeighbor, err := ax25.DecodeAddressRaw(rec[13:20])
		if err != nil {
			return RoutingBroadcast{}, err
		}

		r.Destinations = append(r.Destinations, Destination{
			Callsign:     callsign,
			Mnemonic:     ax25.UnpadASCII(string(rec[7:13])),
			BestNeighbor: bestNeighbor,
			BestQuality:  rec[20],
		})
	}

	return r, nil
}

// Encode packs r into the information-field byte representation described
// above. It returns ErrInvalidMnemonic if the sender or any destination
// mnemonic exceeds 6 characters or contains a non-ASCII byte.
func (r RoutingBroadcast) Encode() ([]byte, error) {
	sender, err := padMnemonic(r.Sender)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}

	out := make([]byte, 0, 1+mnemonicSize+len(r.Destinations)*recordSize)
	out = append(out, signature)
	out = append(out, sender...)

	for i, d := range r.Destinations {
		mnemonic, err := padMnemonic(d.Mnemonic)
		if err != nil {
			return nil, fmt.Errorf("destination %d: %w", i, err)
		}

		callsignOctets := ax25.EncodeAddressRaw(d.Callsign)
		out = append(out, callsignOctets[:]...)
		out = append(out, mnemonic...)

		neighborOctets := ax25.EncodeAddressRaw(d.BestNeighbor)
		out = append(out, neighborOctets[:]...)
		out = append(out, d.BestQuality)
	}

	return out, nil
}

func padMnemonic(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return "", fmt.Errorf("%w: %q is not ASCII", ErrInvalidMnemonic, s)
		}
	}
	if len(s) > mnemonicSize {
		return "", fmt.Errorf("%w: %q", ErrInvalidMnemonic, s)
	}
	return ax25.PadASCII(s, mnemonicSize), nil
}
