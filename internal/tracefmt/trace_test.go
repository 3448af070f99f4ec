package tracefmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/nanoforge/internal/geom"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	nd, err := geom.NearDiff(1, 0, 0)
	require.NoError(t, err)
	fd, err := geom.FarDiff(5, -5, 10)
	require.NoError(t, err)
	long, err := geom.LongLinear(0, -12, 0)
	require.NoError(t, err)
	short1, err := geom.ShortLinear(3, 0, 0)
	require.NoError(t, err)
	short2, err := geom.ShortLinear(0, 0, -2)
	require.NoError(t, err)

	// A realistic tick sequence: fleet size starts at 1, Fission grows it
	// to 2 for the next group, then a matched FusionP/FusionS pair shrinks
	// it back to 1 before Halt.
	trace := Trace{
		{{Kind: Wait}},
		{{Kind: Flip}},
		{{Kind: SMove, D1: long}},
		{{Kind: LMove, D1: short1, D2: short2}},
		{{Kind: Fill, D1: nd}},
		{{Kind: Void, D1: nd}},
		{{Kind: GFill, D1: nd, D2: fd}},
		{{Kind: GVoid, D1: nd, D2: fd}},
		{{Kind: Fission, D1: nd, M: 5}},
		{{Kind: FusionP, D1: nd}, {Kind: FusionS, D1: nd}},
		{{Kind: Halt}},
	}

	buf := Encode(trace, nil)
	decoded, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, trace, decoded)
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{tagSMove})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeBadOpcode(t *testing.T) {
	_, err := Decode([]byte{0x77})
	require.ErrorIs(t, err, ErrBadOpcode)
}
