package ax25

/*------------------------------------------------------------------
 *
 * Purpose:	TNC-2 monitor-format text rendering of an address path:
 *		SRC>DST,RPT1,RPT2*
 *
 * Description:	Supplements the bare Address.Format/ParseAddress pair with
 *		the full-path form Dire Wolf's ax25_format_addrs/ax25_from_text
 *		produce, since a path is what operators and logs actually show.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

// FormatPath renders a full address path in TNC-2 monitor format:
// "SRC>DST[,RPT1][,RPT2*]...".
func FormatPath(dst, src Address, via []Address) string {
	var b strings.Builder
	b.WriteString(src.Format())
	b.WriteByte('>')
	b.WriteString(dst.Format())
	for _, rpt := range via {
		b.WriteByte(',')
		b.WriteString(rpt.Format())
	}
	return b.String()
}

// ParsePath parses a TNC-2 monitor format path: "SRC>DST[,RPT1][,RPT2*]...".
func ParsePath(path string) (dst, src Address, via []Address, err error) {
	srcStr, rest, found := strings.Cut(path, ">")
	if !found {
		return Address{}, Address{}, nil, fmt.Errorf("%w: path %q has no source/destination separator", ErrInvalidCallsign, path)
	}

	src, err = ParseAddress(srcStr)
	if err != nil {
		return Address{}, Address{}, nil, err
	}

	fields := strings.Split(rest, ",")
	dst, err = ParseAddress(fields[0])
	if err != nil {
		return Address{}, Address{}, nil, err
	}

	for _, f := range fields[1:] {
		rpt, err := ParseAddress(f)
		if err != nil {
			return Address{}, Address{}, nil, err
		}
		rpt.IsRepeater = true
		via = append(via, rpt)
	}

	return dst, src, via, nil
}
