package tracefmt

import "fmt"

// Decode parses buf into a Trace, consuming it fully. Tick groups are
// recovered by tracking fleet size: it starts at 1 and is adjusted by
// each group's Fission and FusionP commands, the same way the engine
// updates its own fleet after a tick. Decode returns ErrTruncated if a
// command's argument bytes run past the end of buf, and ErrBadOpcode if a
// tag byte (or tag nibble, for the variable-length opcodes) does not
// match any known command.
func Decode(buf []byte) (Trace, error) {
	var t Trace
	fleetSize := 1
	i := 0
	for i < len(buf) {
		group := make([]Command, 0, fleetSize)
		fissions, fusions := 0, 0
		for len(group) < fleetSize {
			if i >= len(buf) {
				return nil, fmt.Errorf("tracefmt: %w: incomplete tick group", ErrTruncated)
			}
			cmd, n, err := decodeOne(buf[i:])
			if err != nil {
				return nil, fmt.Errorf("tracefmt: at byte %d: %w", i, err)
			}
			i += n
			group = append(group, cmd)
			switch cmd.Kind {
			case Fission:
				fissions++
			case FusionP:
				fusions++
			}
		}
		t = append(t, group)
		fleetSize += fissions - fusions
	}
	return t, nil
}

func decodeOne(buf []byte) (Command, int, error) {
	if len(buf) == 0 {
		return Command{}, 0, ErrTruncated
	}
	tag := buf[0]
	switch tag {
	case tagHalt:
		return Command{Kind: Halt}, 1, nil
	case tagWait:
		return Command{Kind: Wait}, 1, nil
	case tagFlip:
		return Command{Kind: Flip}, 1, nil
	}

	switch tag & 0xF0 {
	case tagSMove:
		if len(buf) < 2 {
			return Command{}, 0, ErrTruncated
		}
		axis := axisFromCode(tag & 0x0F)
		length := int(buf[1]) - smoveBias
		return Command{Kind: SMove, D1: linearOnAxis(axis, length)}, 2, nil
	case tagLMove:
		if len(buf) < 2 {
			return Command{}, 0, ErrTruncated
		}
		a1 := axisFromCode((tag >> 2) & 0x03)
		a2 := axisFromCode(tag & 0x03)
		len1 := int(buf[1]>>4) - lmoveBias
		len2 := int(buf[1]&0x0F) - lmoveBias
		return Command{Kind: LMove, D1: linearOnAxis(a1, len1), D2: linearOnAxis(a2, len2)}, 2, nil
	case tagFiss:
		if len(buf) < 3 {
			return Command{}, 0, ErrTruncated
		}
		return Command{Kind: Fission, D1: nearDiffFromCode(buf[1]), M: int(buf[2])}, 3, nil
	case tagGFill:
		if len(buf) < 5 {
			return Command{}, 0, ErrTruncated
		}
		kind := GFill
		if tag == tagGVoid {
			kind = GVoid
		}
		nd := nearDiffFromCode(buf[1])
		fd := geomDiffFromFar(buf[2], buf[3], buf[4])
		return Command{Kind: kind, D1: nd, D2: fd}, 5, nil
	}

	switch tag {
	case tagFuseP, tagFuseS, tagFill, tagVoid:
		if len(buf) < 2 {
			return Command{}, 0, ErrTruncated
		}
		kind := map[byte]Kind{tagFuseP: FusionP, tagFuseS: FusionS, tagFill: Fill, tagVoid: Void}[tag]
		return Command{Kind: kind, D1: nearDiffFromCode(buf[1])}, 2, nil
	}

	return Command{}, 0, fmt.Errorf("%w: 0x%02x", ErrBadOpcode, tag)
}
