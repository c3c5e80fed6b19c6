// system.go - wires CPU, memory bus, both CIAs, VIC-II and SID into one
// system tick, and exposes the driver surface a host program embeds.
//
// The fixed per-tick ordering (Clock -> VIC -> CIA1 -> CIA2 -> SID ->
// interrupt-line recompute -> optionally CPU instruction step) lives
// entirely in System.tick; the CPU's bus reads/writes call back into it
// once per access so that "bus activity is the time base" holds exactly.

package c64

const systemClockHz = SID_CLOCK_PAL // PAL phi2

// System is the assembled C64 core: one CPU, one PLA-controlled memory
// bus, two CIAs, one VIC-II, one SID, ticked in lockstep.
type System struct {
	CPU  *CPU6510
	Bus  *MemoryBus
	CIA1 *CIA6526
	CIA2 *CIA6526
	VIC  *VICII
	SID  *SIDEngine
	KB   *Keyboard

	Cycles uint64
}

// TickCount reports the number of system cycles elapsed since Reset.
func (s *System) TickCount() uint64 { return s.Cycles }

// Phase reports which phi half-cycle the most recent tick landed on
// (0=phi1, 1=phi2); observability only, every chip in this core ticks
// once per full phi1/phi2 pair.
func (s *System) Phase() int { return int(s.Cycles & 1) }

// NewSystem assembles every chip and wires their port/interrupt lines
// the way the real board does: CIA1 IRQ and VIC IRQ both feed the CPU's
// IRQ line, CIA2 IRQ feeds NMI, CIA1 port A/B drive the keyboard matrix,
// CIA2 port A bits 0-1 select the VIC's visible bank.
func NewSystem(sampleRate int) *System {
	s := &System{}
	s.KB = NewKeyboard()

	s.CIA1 = NewCIA6526(false, CIAPortLines{
		ReadA: func(ddr, latch byte) byte { return 0xFF },
		ReadB: func(ddr, latch byte) byte {
			return s.KB.ReadColumns(s.CIA1.readPortA())
		},
	})
	s.CIA2 = NewCIA6526(true, CIAPortLines{
		ReadA: func(ddr, latch byte) byte { return 0xFF },
		ReadB: func(ddr, latch byte) byte { return 0xFF },
	})

	s.VIC = NewVICII()
	s.SID = NewSIDEngine(systemClockHz, sampleRate)

	s.Bus = NewMemoryBus(s.VIC, s.SID, s.CIA1, s.CIA2, s.tick)
	s.CPU = NewCPU6510(s.Bus.Bus6510Adapter())
	return s
}

// tick is the system heartbeat: it is invoked once per CPU bus access by
// the memory bus, and drives every other chip exactly one cycle forward
// before the CPU's access completes.
func (s *System) tick() {
	s.Cycles++
	s.VIC.Tick()
	s.CIA1.Tick()
	s.CIA2.Tick()
	s.SID.Tick()
	s.CPU.SetIRQLine(s.CIA1.IRQ() || s.VIC.IRQ())
	s.CPU.SetNMILine(s.CIA2.IRQ())
	s.CPU.SetRDYLine(s.VIC.BA())
}

// Reset performs a full system reset: every chip to its power-on state,
// then the CPU vectors through $FFFC as usual.
func (s *System) Reset() {
	s.VIC.Reset()
	s.SID.Reset()
	s.CIA1.Reset()
	s.CIA2.Reset()
	s.CPU.Reset()
}

// LoadROMs installs the three fixed-size ROM images ahead of Reset.
func (s *System) LoadROMs(basic, kernal, char []byte) error {
	return s.Bus.LoadROMs(basic, kernal, char)
}

// StepInstruction executes exactly one CPU instruction (and, via the
// bus's per-access tick callback, every other chip's corresponding
// cycles), returning the instruction's cycle count. While the CPU is
// stalled (RDY held low by the VIC's BA line, or not running) no
// instruction executes: one system cycle is ticked instead and 1 is
// returned, so the other chips keep advancing.
func (s *System) StepInstruction() uint64 {
	if n := s.CPU.Step(); n != 0 {
		return n
	}
	s.tick()
	return 1
}

// RunCycles executes instructions until at least n system cycles have
// elapsed, returning the actual number of cycles consumed (instructions
// are not divisible, so this may slightly overshoot n).
func (s *System) RunCycles(n uint64) uint64 {
	var consumed uint64
	for consumed < n {
		consumed += s.StepInstruction()
	}
	return consumed
}

// RunFrame executes instructions until the VIC completes one PAL frame,
// clearing the completion flag on exit.
func (s *System) RunFrame() {
	for !s.VIC.FrameComplete {
		s.StepInstruction()
	}
	s.VIC.FrameComplete = false
}

// Framebuffer exposes the VIC's 320x200 RGB grid for a render collaborator.
func (s *System) Framebuffer() *[200][320]uint32 { return &s.VIC.Framebuffer }

// KeyPress/KeyRelease/KeyClear forward directly to the keyboard matrix
// CIA1 reads through its port lines.
func (s *System) KeyPress(row, col int)   { s.KB.Press(row, col) }
func (s *System) KeyRelease(row, col int) { s.KB.Release(row, col) }
func (s *System) KeyClear()               { s.KB.Clear() }

// AudioBuffer drains and returns samples accumulated since the last call.
func (s *System) AudioBuffer() []int16 {
	buf := s.SID.AudioBuffer
	s.SID.AudioBuffer = nil
	return buf
}
