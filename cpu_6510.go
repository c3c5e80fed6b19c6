// cpu_6510.go - cycle-accurate MOS 6510 CPU core
//
// Implements the full documented 6502/6510 instruction set plus the subset
// of undocumented opcodes real C64 software and conformance suites rely on
// (LAX, SAX, DCP, ISC, SLO, RLA, SRE, RRA and the documented-length NOPs).
// Dispatch is table-driven: opcodeTable[256] holds one function pointer per
// opcode, filled in by initOpcodeTable in cpu_6510_opcodes.go.

package c64

import (
	"runtime"
	"sync/atomic"
)

const (
	stackBase   = 0x0100
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
	nmiVector   = 0xFFFA
)

const (
	FlagCarry     = 0x01
	FlagZero      = 0x02
	FlagInterrupt = 0x04
	FlagDecimal   = 0x08
	FlagBreak     = 0x10
	FlagUnused    = 0x20
	FlagOverflow  = 0x40
	FlagNegative  = 0x80
)

var nzTable [256]byte

func init() {
	for i := 0; i < 256; i++ {
		if i == 0 {
			nzTable[i] |= FlagZero
		}
		if i&0x80 != 0 {
			nzTable[i] |= FlagNegative
		}
	}
}

// Bus6510 is the CPU's view of the address space: a single flat 16-bit
// read/write surface. The PLA-driven memory bus (membus_pla.go) implements
// this; tests may substitute a plain RAM-backed stub.
type Bus6510 struct {
	Read  func(addr uint16) byte
	Write func(addr uint16, value byte)
}

// CPU6510 is a cycle-accurate MOS 6510 processor. Registers and signal
// lines are grouped the way real silicon separates them: the register file
// is touched every instruction, the interrupt lines are touched
// asynchronously from other goroutines driving a real-time wrapper, so
// those lines are atomics even though the rest of the struct is only ever
// touched from the instruction-dispatch goroutine.
type CPU6510 struct {
	PC uint16
	SP byte
	A  byte
	X  byte
	Y  byte
	SR byte

	running   atomic.Bool
	irqLine   atomic.Bool // level-triggered: held low by any device asserting IRQ
	nmiLine   atomic.Bool // edge-triggered: latched on 1->0 transition
	nmiPrev   atomic.Bool
	nmiLatch  atomic.Bool
	rdyLine   atomic.Bool
	resetting atomic.Bool
	resetAck  atomic.Bool
	executing atomic.Bool

	Cycles uint64

	bus Bus6510

	opcodeTable [256]func(*CPU6510)

	// Trap is consulted before the opcode at PC executes. Used for
	// breakpoints or instrumentation; nil means no trap installed.
	Trap map[uint16]func(*CPU6510)
}

// NewCPU6510 wires a CPU to its bus and prepares the opcode dispatch table.
func NewCPU6510(bus Bus6510) *CPU6510 {
	cpu := &CPU6510{
		bus: bus,
		SP:  0xFF,
		SR:  FlagUnused,
	}
	cpu.initOpcodeTable()
	cpu.rdyLine.Store(true)
	return cpu
}

func (c *CPU6510) Running() bool        { return c.running.Load() }
func (c *CPU6510) SetRunning(run bool)  { c.running.Store(run) }
func (c *CPU6510) SetRDYLine(ok bool)   { c.rdyLine.Store(ok) }
func (c *CPU6510) SetIRQLine(held bool) { c.irqLine.Store(held) }

// SetNMILine latches a request on the rising (false->true) edge of the
// interrupt condition, matching the 6510's edge-triggered NMI input.
func (c *CPU6510) SetNMILine(level bool) {
	old := c.nmiLine.Swap(level)
	if !old && level {
		c.nmiLatch.Store(true)
	}
}

func (c *CPU6510) readByte(addr uint16) byte         { return c.bus.Read(addr) }
func (c *CPU6510) writeByte(addr uint16, v byte)      { c.bus.Write(addr, v) }
func (c *CPU6510) updateNZ(v byte) {
	c.SR = (c.SR &^ (FlagZero | FlagNegative)) | nzTable[v]
}
func (c *CPU6510) setFlag(flag byte, set bool) {
	if set {
		c.SR |= flag
	} else {
		c.SR &^= flag
	}
}

func (c *CPU6510) read16(addr uint16) uint16 {
	return uint16(c.readByte(addr)) | uint16(c.readByte(addr+1))<<8
}

func (c *CPU6510) push(v byte) {
	c.writeByte(stackBase+uint16(c.SP), v)
	c.SP--
}
func (c *CPU6510) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}
func (c *CPU6510) pop() byte {
	c.SP++
	return c.readByte(stackBase + uint16(c.SP))
}
func (c *CPU6510) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}

// rmw performs the dummy-write-then-real-write read-modify-write pattern
// real 6502 RMW instructions exhibit on the bus (two writes on consecutive
// cycles), and
// returns the modified byte so callers never need to re-read memory for it.
func (c *CPU6510) rmw(addr uint16, op func(byte) byte) byte {
	v := c.readByte(addr)
	c.writeByte(addr, v)
	r := op(v)
	c.writeByte(addr, r)
	return r
}

// --- addressing modes ---

func (c *CPU6510) getImmediate() uint16 {
	addr := c.PC
	c.PC++
	return addr
}

func (c *CPU6510) getZeroPage() uint16 {
	addr := uint16(c.readByte(c.PC))
	c.PC++
	return addr
}
func (c *CPU6510) getZeroPageX() uint16 {
	addr := uint16(byte(c.readByte(c.PC) + c.X))
	c.PC++
	return addr
}
func (c *CPU6510) getZeroPageY() uint16 {
	addr := uint16(byte(c.readByte(c.PC) + c.Y))
	c.PC++
	return addr
}
func (c *CPU6510) getAbsolute() uint16 {
	addr := c.read16(c.PC)
	c.PC += 2
	return addr
}
func (c *CPU6510) getAbsoluteX() (uint16, bool) {
	base := c.getAbsolute()
	addr := base + uint16(c.X)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}
func (c *CPU6510) getAbsoluteY() (uint16, bool) {
	base := c.getAbsolute()
	addr := base + uint16(c.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// getIndexedIndirect resolves (zp,X): zero-page pointer wraps within page 0.
func (c *CPU6510) getIndexedIndirect() uint16 {
	zp := byte(c.readByte(c.PC) + c.X)
	c.PC++
	lo := c.readByte(uint16(zp))
	hi := c.readByte(uint16(byte(zp + 1)))
	return uint16(lo) | uint16(hi)<<8
}

// getIndirectIndexed resolves (zp),Y: zero-page pointer wraps within page 0,
// the resulting 16-bit base is then indexed by Y across the full address space.
func (c *CPU6510) getIndirectIndexed() (uint16, bool) {
	zp := c.readByte(c.PC)
	c.PC++
	lo := c.readByte(uint16(zp))
	hi := c.readByte(uint16(byte(zp + 1)))
	base := uint16(lo) | uint16(hi)<<8
	addr := base + uint16(c.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// --- ALU ---

// adc implements binary and decimal (BCD) addition. Per the documented
// 6502 decimal-mode quirk, N and V are derived from the binary sum of the
// pre-correction nibbles, not from the BCD-corrected accumulator.
func (c *CPU6510) adc(value byte) {
	a := c.A
	carryIn := byte(0)
	if c.SR&FlagCarry != 0 {
		carryIn = 1
	}

	binSum := uint16(a) + uint16(value) + uint16(carryIn)
	c.setFlag(FlagOverflow, (a^value)&0x80 == 0 && (a^byte(binSum))&0x80 != 0)
	c.updateNZ(byte(binSum))

	if c.SR&FlagDecimal == 0 {
		c.setFlag(FlagCarry, binSum > 0xFF)
		c.A = byte(binSum)
		return
	}

	lo := uint16(a&0x0F) + uint16(value&0x0F) + uint16(carryIn)
	if lo > 9 {
		lo += 6
	}
	hi := uint16(a>>4) + uint16(value>>4)
	if lo > 0x0F {
		hi++
	}
	lo &= 0x0F
	if hi > 9 {
		hi += 6
	}
	c.setFlag(FlagCarry, hi > 0x0F)
	c.A = byte(hi<<4) | byte(lo)
}

// sbc implements binary and decimal subtraction with the same
// pre-correction N/V/Z derivation quirk as adc.
func (c *CPU6510) sbc(value byte) {
	a := c.A
	borrowIn := byte(0)
	if c.SR&FlagCarry == 0 {
		borrowIn = 1
	}

	binDiff := int16(a) - int16(value) - int16(borrowIn)
	c.setFlag(FlagOverflow, (a^value)&0x80 != 0 && (a^byte(binDiff))&0x80 != 0)
	c.updateNZ(byte(binDiff))
	c.setFlag(FlagCarry, binDiff >= 0)

	if c.SR&FlagDecimal == 0 {
		c.A = byte(binDiff)
		return
	}

	lo := int16(a&0x0F) - int16(value&0x0F) - int16(borrowIn)
	hi := int16(a>>4) - int16(value>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	c.A = byte(hi<<4) | byte(lo&0x0F)
}

func (c *CPU6510) inc(addr uint16) byte {
	return c.rmw(addr, func(v byte) byte {
		r := v + 1
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) dec(addr uint16) byte {
	return c.rmw(addr, func(v byte) byte {
		r := v - 1
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) asl(addr uint16, acc bool) byte {
	if acc {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A <<= 1
		c.updateNZ(c.A)
		return c.A
	}
	return c.rmw(addr, func(v byte) byte {
		c.setFlag(FlagCarry, v&0x80 != 0)
		r := v << 1
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) lsr(addr uint16, acc bool) byte {
	if acc {
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A >>= 1
		c.updateNZ(c.A)
		return c.A
	}
	return c.rmw(addr, func(v byte) byte {
		c.setFlag(FlagCarry, v&0x01 != 0)
		r := v >> 1
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) rol(addr uint16, acc bool) byte {
	carryIn := byte(0)
	if c.SR&FlagCarry != 0 {
		carryIn = 1
	}
	if acc {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A = (c.A << 1) | carryIn
		c.updateNZ(c.A)
		return c.A
	}
	return c.rmw(addr, func(v byte) byte {
		c.setFlag(FlagCarry, v&0x80 != 0)
		r := (v << 1) | carryIn
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) ror(addr uint16, acc bool) byte {
	carryIn := byte(0)
	if c.SR&FlagCarry != 0 {
		carryIn = 0x80
	}
	if acc {
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A = (c.A >> 1) | carryIn
		c.updateNZ(c.A)
		return c.A
	}
	return c.rmw(addr, func(v byte) byte {
		c.setFlag(FlagCarry, v&0x01 != 0)
		r := (v >> 1) | carryIn
		c.updateNZ(r)
		return r
	})
}
func (c *CPU6510) compare(reg, value byte) {
	c.setFlag(FlagCarry, reg >= value)
	c.updateNZ(reg - value)
}
func (c *CPU6510) branch(cond bool) {
	offset := int8(c.readByte(c.PC))
	c.PC++
	if !cond {
		return
	}
	c.Cycles++
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(offset))
	if (old & 0xFF00) != (c.PC & 0xFF00) {
		c.Cycles++
	}
}

// handleInterrupt pushes PC/SR and vectors to the handler. Unlike BRK this
// never sets the Break flag in the pushed copy of SR.
func (c *CPU6510) handleInterrupt(vector uint16, isNMI bool) {
	if !isNMI && c.SR&FlagInterrupt != 0 {
		return
	}
	c.readByte(c.PC) // two cycles spent re-fetching the interrupted opcode
	c.readByte(c.PC) // stream, discarded, before the stack pushes begin
	c.push16(c.PC)
	c.push(c.SR &^ FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(vector)
	c.Cycles += 7
}

// Reset pauses Execute() at an instruction boundary (if running on another
// goroutine), then restores power-up register state and loads PC from the
// reset vector. SP is set to 0xFF on first power-up and decremented by
// three on a warm reset on real hardware; this core always treats Reset as
// the power-up case since no caller distinguishes the two.
func (c *CPU6510) Reset() {
	c.resetting.Store(true)
	if c.executing.Load() {
		for !c.resetAck.Load() {
			if !c.executing.Load() {
				break
			}
			runtime.Gosched()
		}
	}

	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.SR = FlagUnused | FlagInterrupt
	c.PC = c.read16(resetVector)
	c.Cycles = 0
	c.running.Store(true)
	c.nmiLine.Store(false)
	c.nmiLatch.Store(false)
	c.irqLine.Store(false)

	c.resetting.Store(false)
}

// Step executes a single instruction (including any pending interrupt
// dispatch ahead of it) and returns the cycles it consumed.
func (c *CPU6510) Step() uint64 {
	if !c.running.Load() || c.resetting.Load() {
		return 0
	}
	if !c.rdyLine.Load() {
		return 0
	}

	before := c.Cycles
	c.dispatchInterrupts()

	if trap, ok := c.Trap[c.PC]; ok {
		trap(c)
	}

	opcode := c.readByte(c.PC)
	c.PC++
	c.opcodeTable[opcode](c)

	return c.Cycles - before
}

func (c *CPU6510) dispatchInterrupts() {
	if c.nmiLatch.Load() {
		c.handleInterrupt(nmiVector, true)
		c.nmiLatch.Store(false)
	} else if c.irqLine.Load() && c.SR&FlagInterrupt == 0 {
		c.handleInterrupt(irqVector, false)
	}
}

// Execute drives the CPU continuously, honouring Reset()'s pause handshake.
// Intended to run on its own goroutine in a real-time driver; for tests and
// single-threaded callers, Step() is the simpler entry point.
func (c *CPU6510) Execute() {
	c.executing.Store(true)
	defer c.executing.Store(false)

	for c.running.Load() {
		if c.resetting.Load() {
			c.resetAck.Store(true)
			for c.resetting.Load() {
				runtime.Gosched()
			}
			c.resetAck.Store(false)
			continue
		}
		c.Step()
	}
}
