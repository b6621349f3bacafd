package ax25

/*------------------------------------------------------------------
 *
 * Purpose:	Assemble and disassemble a complete AX.25 v2.2 frame:
 *		destination, source, repeater path, control, and (for I/UI)
 *		PID + payload.
 *
 * Description:	On the air this is simply:
 *
 *		[dst addr][src addr][repeater addr]...[control][pid][info]
 *
 *		with the address list terminated by the first address whose
 *		E bit is set, rather than by a fixed count - the number of
 *		repeaters is not known up front when unpacking.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
)

const maxRepeaters = 8

// Frame is a fully-decoded AX.25 v2.2 frame.
//
// PID and Data are both present, or both absent - they travel together
// because AX.25 only carries a PID octet for I and UI control fields. A
// nil PID on a Frame whose Control is I/UI, or vice versa, is a
// programmer error: Encode panics rather than emit a malformed frame.
type Frame struct {
	Dst     Address
	Src     Address
	Via     []Address
	Control Control
	PID     *uint8
	Data    []byte
}

// CommandResponse derives the command/response interpretation of f per
// AX.25 v2.2 6.1.2 from the pair (Dst.IsCommandResponse, Src.IsCommandResponse).
type CommandResponse int

const (
	CommandResponseLegacy CommandResponse = iota
	CommandResponseCommand
	CommandResponseResponse
)

// CommandResponse reports whether f is a command, a response, or legacy
// (v2.0-style, ambiguous) framing, derived from the dst/src C bits.
func (f Frame) CommandResponse() CommandResponse {
	switch {
	case f.Dst.IsCommandResponse && !f.Src.IsCommandResponse:
		return CommandResponseCommand
	case !f.Dst.IsCommandResponse && f.Src.IsCommandResponse:
		return CommandResponseResponse
	default:
		return CommandResponseLegacy
	}
}

func carriesPayload(ft FrameType) bool {
	return ft == FrameTypeI || ft == FrameTypeUI
}

// Encode packs f into its on-air byte representation. It panics if f
// violates a structural invariant (more than 8 repeaters, or a PID present
// on a frame that is not I or UI, or missing on one that is) - these are
// programmer errors, not decode failures, per the codec's error-handling
// policy. Data is not checked: it is written only for I and UI frames.
func (f Frame) Encode() []byte {
	if len(f.Via) > maxRepeaters {
		panic(fmt.Sprintf("ax25: %d repeaters exceeds maximum of %d", len(f.Via), maxRepeaters))
	}
	if carriesPayload(f.Control.FrameType) != (f.PID != nil) {
		panic("ax25: PID must be present iff the control field is I or UI")
	}

	out := make([]byte, 0, 14+7*len(f.Via)+1+2+len(f.Data))

	viaEmpty := len(f.Via) == 0
	dstOctets := encodeAddressField(f.Dst, false, false)
	out = append(out, dstOctets[:]...)

	srcOctets := encodeAddressField(f.Src, false, viaEmpty)
	out = append(out, srcOctets[:]...)

	for i, rpt := range f.Via {
		last := i == len(f.Via)-1
		rptOctets := encodeAddressField(rpt, true, last)
		out = append(out, rptOctets[:]...)
	}

	out = append(out, f.Control.Encode())

	if carriesPayload(f.Control.FrameType) {
		out = append(out, *f.PID)
		out = append(out, f.Data...)
	}

	return out
}

// DecodeFrame parses an on-air AX.25 frame. It is a total function: any
// structural violation returns a typed error rather than a partial Frame.
func DecodeFrame(b []byte) (Frame, error) {
	var addrs []Address

	offset := 0
	for {
		if offset+7 > len(b) {
			return Frame{}, fmt.Errorf("%w: address list truncated at offset %d", ErrTruncatedFrame, offset)
		}
		asRepeater := len(addrs) >= 2
		addr, last, err := decodeAddressField(b[offset:offset+7], asRepeater)
		if err != nil {
			return Frame{}, err
		}
		addrs = append(addrs, addr)
		offset += 7

		if len(addrs) >= 2 && len(addrs)-2 > maxRepeaters {
			return Frame{}, fmt.Errorf("%w: more than %d repeater addresses", ErrTooManyRepeaters, maxRepeaters)
		}
		if last {
			break
		}
	}

	if len(addrs) < 2 {
		return Frame{}, fmt.Errorf("%w: frame has no source address", ErrTruncatedFrame)
	}

	f := Frame{
		Dst: addrs[0],
		Src: addrs[1],
		Via: addrs[2:],
	}

	if offset >= len(b) {
		return Frame{}, fmt.Errorf("%w: missing control field", ErrTruncatedFrame)
	}
	control, err := DecodeControl(b[offset])
	if err != nil {
		return Frame{}, err
	}
	f.Control = control
	offset++

	if carriesPayload(control.FrameType) {
		if offset >= len(b) {
			return Frame{}, fmt.Errorf("%w: missing PID octet", ErrTruncatedFrame)
		}
		pid := b[offset]
		f.PID = &pid
		offset++
		f.Data = append([]byte{}, b[offset:]...)
	} else if offset != len(b) {
		return Frame{}, fmt.Errorf("%w: %d bytes after control field", ErrUnexpectedTrailer, len(b)-offset)
	}

	return f, nil
}
