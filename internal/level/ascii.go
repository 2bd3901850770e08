package level

// ParseASCII creates a Level from an ASCII map. The last line is grid row 1
// (resting on the floor); columns map directly to grid columns.
// Characters:
//
//	'#' = block
//	'^' = spike
//	'h' = half spike
//	'o' = jump orb (yellow)
//	'p' = jump orb (purple)
//	'r' = jump orb (red)
//	'g' = gravity orb
//	'G' = gravity portal
//	'1'-'4' = speed portal (slow, normal, fast, very fast)
//	'.' or ' ' = empty
//
// Length is the widest line plus a small run-out margin.
func ParseASCII(name string, mode GameMode, lines []string) *Level {
	l := &Level{
		Name:     name,
		GameMode: mode,
	}

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	l.Length = maxWidth + 6

	for i, line := range lines {
		row := len(lines) - i
		for col := 0; col < len(line); col++ {
			kind, ok := kindForASCII(line[col])
			if !ok {
				continue
			}
			l.Place(kind, col, row)
		}
	}

	return l
}

func kindForASCII(ch byte) (EntityKind, bool) {
	switch ch {
	case '#':
		return KindBlock, true
	case '^':
		return KindSpike, true
	case 'h':
		return KindHalfSpike, true
	case 'o':
		return KindOrbJump, true
	case 'p':
		return KindOrbJumpPurple, true
	case 'r':
		return KindOrbJumpRed, true
	case 'g':
		return KindOrbGravity, true
	case 'G':
		return KindPortalGravity, true
	case '1':
		return KindPortalSpeedSlow, true
	case '2':
		return KindPortalSpeedNorm, true
	case '3':
		return KindPortalSpeedFast, true
	case '4':
		return KindPortalSpeedVery, true
	default:
		return "", false
	}
}

// Builtin returns the levels bundled with the platform.
func Builtin() []*Level {
	return []*Level{
		ParseASCII("first-steps", ModeClassic, []string{
			"..............................................",
			"..............................................",
			".............................###.............",
			".........^........###........#.#..........^^.",
			"......^..##...^^..#.#...o....#.#...^^^....###.",
		}),
		ParseASCII("orb-garden", ModeClassic, []string{
			"......................p...............r.......",
			".........o...................................",
			"......^^^.....^^^^....^^^^^....^^....^^^^^^...",
			"..^^..###.....####....#####....##....######...",
		}),
		ParseASCII("upside-down", ModeClassic, []string{
			"..............................................",
			".......G..............G......................",
			"..........####...............................",
			"..........^^^^..........^^......^....^^......",
			"...^^....................##.....##...###..3..",
		}),
		ParseASCII("freefall", ModeFree, []string{
			"..........................................",
			".....o..........p...........o.............",
			"..........^^.........^^^.........^^.......",
			"...^^.....##...^^.....###....^^...##....^..",
		}),
	}
}

// BuiltinByName returns a bundled level by name, or nil.
func BuiltinByName(name string) *Level {
	for _, l := range Builtin() {
		if l.Name == name {
			return l
		}
	}
	return nil
}
