// sid_constants.go - MOS 6581 SID envelope/clock constants
//
// Trimmed and adapted: the engine/Z80/IE65 port-mapping constants and
// the millisecond-based approximate ADSR tables are gone (the real C64
// maps SID at a fixed $D400 handled directly by the memory bus, and the
// envelope here runs the literal cycle-counted rate table, not a
// millisecond approximation of it). What survives is exactly the
// cycle-accurate reference data the sound-chip authors had already
// worked out and left as commented-out "reference values" rather than
// using at runtime - sidADSRRatePeriods, sidEnvExpThresholds and
// sidEnvExpMultipliers now back the live envelope state machine instead
// of sitting dormant beside a simplified approximation.

package c64

const (
	SID_REG_COUNT = 29

	SID_CLOCK_PAL  = 985248  // PAL C64 clock (Hz)
	SID_CLOCK_NTSC = 1022727 // NTSC C64 clock (Hz), unused: spec targets PAL only
)

// ADSR rate counter periods: clock cycles at 985248Hz PAL between
// successive envelope-level steps, indexed by the 4-bit attack/decay or
// sustain/release nibble.
var sidADSRRatePeriods = [16]uint32{
	9, 32, 63, 95, 149, 220, 267, 313,
	392, 977, 1954, 3126, 3907, 11720, 19532, 31251,
}

// Envelope exponential decay/release subdivision: the envelope level
// crossing a threshold changes how many base rate-ticks separate single
// unit decrements, producing the SID's characteristic bent decay curve.
var sidEnvExpThresholds = [6]uint8{93, 54, 26, 14, 6, 0}
var sidEnvExpMultipliers = [6]uint8{1, 2, 4, 8, 16, 30}
