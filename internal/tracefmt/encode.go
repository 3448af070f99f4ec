package tracefmt

import "github.com/elektrokombinacija/nanoforge/internal/geom"

const (
	tagHalt  = 0xFF
	tagWait  = 0xFE
	tagFlip  = 0xFD
	tagSMove = 0x10
	tagLMove = 0x20
	tagFiss  = 0x30
	tagFuseP = 0x40
	tagFuseS = 0x41
	tagFill  = 0x50
	tagVoid  = 0x51
	tagGFill = 0x60
	tagGVoid = 0x61

	smoveBias = 15
	lmoveBias = 5
	farBias   = 30
)

// Encode appends the wire bytes for every command in the trace to buf and
// returns the extended slice.
func Encode(t Trace, buf []byte) []byte {
	for _, cmd := range t.Flatten() {
		buf = appendCommand(buf, cmd)
	}
	return buf
}

func appendCommand(buf []byte, cmd Command) []byte {
	switch cmd.Kind {
	case Halt:
		return append(buf, tagHalt)
	case Wait:
		return append(buf, tagWait)
	case Flip:
		return append(buf, tagFlip)
	case SMove:
		axis, _ := cmd.D1.Axis()
		return append(buf, tagSMove|axisCode(axis), byte(signedLen(cmd.D1)+smoveBias))
	case LMove:
		a1, _ := cmd.D1.Axis()
		a2, _ := cmd.D2.Axis()
		len1 := signedLen(cmd.D1) + lmoveBias
		len2 := signedLen(cmd.D2) + lmoveBias
		return append(buf,
			tagLMove|axisCode(a1)<<2|axisCode(a2),
			byte(len1<<4|len2),
		)
	case Fission:
		return append(buf, tagFiss, nearDiffCode(cmd.D1), byte(cmd.M))
	case FusionP:
		return append(buf, tagFuseP, nearDiffCode(cmd.D1))
	case FusionS:
		return append(buf, tagFuseS, nearDiffCode(cmd.D1))
	case Fill:
		return append(buf, tagFill, nearDiffCode(cmd.D1))
	case Void:
		return append(buf, tagVoid, nearDiffCode(cmd.D1))
	case GFill:
		return append(buf, tagGFill, nearDiffCode(cmd.D1),
			byte(cmd.D2.DX+farBias), byte(cmd.D2.DY+farBias), byte(cmd.D2.DZ+farBias))
	case GVoid:
		return append(buf, tagGVoid, nearDiffCode(cmd.D1),
			byte(cmd.D2.DX+farBias), byte(cmd.D2.DY+farBias), byte(cmd.D2.DZ+farBias))
	default:
		return buf
	}
}

// signedLen returns a linear diff's signed length along its single nonzero axis:
// exactly one of DX/DY/DZ is nonzero, so their sum recovers it with sign.
func signedLen(d geom.Diff) int {
	return d.DX + d.DY + d.DZ
}
