package c64

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCPU wires a CPU to a flat 64KiB RAM-backed bus with no tick
// callback, so instruction semantics can be exercised without a full System.
func newTestCPU() (*CPU6510, *[0x10000]byte) {
	var ram [0x10000]byte
	bus := Bus6510{
		Read:  func(addr uint16) byte { return ram[addr] },
		Write: func(addr uint16, v byte) { ram[addr] = v },
	}
	c := NewCPU6510(bus)
	c.running.Store(true)
	return c, &ram
}

func TestJMPIndirectReproducesPageWrapBug(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0400
	ram[0x0400] = 0x6C // JMP (ind)
	ram[0x0401] = 0xFF
	ram[0x0402] = 0x02 // pointer = $02FF
	ram[0x02FF] = 0x34 // low byte of target
	ram[0x0200] = 0x56 // wrapped high-byte source: same page as the pointer
	ram[0x0300] = 0x12 // correct (unwrapped) high byte, must NOT be used

	c.Step()

	require.Equal(t, uint16(0x5634), c.PC, "expected high byte fetched from $0200 (wrapped within the pointer's page), not $0300: %s", spew.Sdump(c))
}

func TestADCDecimalModeBCDCarryAndResult(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0200
	c.setFlag(FlagDecimal, true)
	c.setFlag(FlagCarry, false)
	c.A = 0x79
	ram[0x0200] = 0x69 // ADC #imm
	ram[0x0201] = 0x01

	c.Step()

	assert.Equal(t, byte(0x80), c.A, "expected BCD-corrected sum 79+01 = 80, got 0x%02X", c.A)
	assert.False(t, c.SR&FlagCarry != 0, "expected no decimal carry out of 79+01")
}

func TestPHPPLPRoundTripPreservesStatusAcrossMutation(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0200
	ram[0x0200] = 0x08 // PHP
	ram[0x0201] = 0x28 // PLP
	c.SR = FlagUnused | FlagCarry | FlagZero
	want := c.SR
	c.Step() // PHP

	c.SR = FlagUnused // mutate live SR between push and pop
	c.Step()          // PLP

	assert.Equal(t, want, c.SR, "expected PLP to restore the pushed status exactly")
}

func TestJSRRTSReturnsToInstructionAfterCall(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0300
	ram[0x0300] = 0x20 // JSR $0400
	ram[0x0301] = 0x00
	ram[0x0302] = 0x04
	ram[0x0400] = 0x60 // RTS

	cycles := c.Step() // JSR
	require.Equal(t, uint16(0x0400), c.PC, "expected JSR to land on the callee")
	require.Equal(t, uint64(6), cycles, "expected JSR to consume 6 real bus cycles")

	cycles = c.Step() // RTS
	assert.Equal(t, uint16(0x0303), c.PC, "expected RTS to resume at the instruction after JSR")
	assert.Equal(t, uint64(6), cycles, "expected RTS to consume 6 real bus cycles")
}

func TestBRKPushesPCPlus2AndRTIRestoresState(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0500
	c.SR = FlagUnused | FlagCarry
	ram[0x0500] = 0x00 // BRK
	ram[0x0501] = 0xEA // signature byte, skipped
	ram[irqVector] = 0x00
	ram[irqVector+1] = 0x06 // vector to $0600
	ram[0x0600] = 0x40      // RTI

	c.Step() // BRK
	require.Equal(t, uint16(0x0600), c.PC, "expected BRK to vector through $FFFE")
	require.True(t, c.SR&FlagInterrupt != 0, "expected BRK to set the live I flag")

	pushedSR := ram[stackBase+uint16(c.SP)+1]
	assert.NotZero(t, pushedSR&FlagBreak, "expected the pushed copy of SR to have Break set")

	c.Step() // RTI
	assert.Equal(t, uint16(0x0502), c.PC, "expected RTI to restore PC to the byte after BRK's signature byte")
	assert.Zero(t, c.SR&FlagBreak, "expected RTI to restore Break cleared, matching the live register before BRK")
	assert.NotZero(t, c.SR&FlagCarry, "expected RTI to restore the carry flag pushed before BRK")
}

func TestSetNMILineLatchesOnRisingEdgeOnly(t *testing.T) {
	c, _ := newTestCPU()

	c.SetNMILine(false)
	assert.False(t, c.nmiLatch.Load(), "expected no latch while the line stays low")

	c.SetNMILine(true)
	assert.True(t, c.nmiLatch.Load(), "expected the rising edge to arm the NMI latch")

	c.nmiLatch.Store(false)
	c.SetNMILine(false)
	assert.False(t, c.nmiLatch.Load(), "expected the falling edge to NOT re-arm the latch")
}

// newCountingTestCPU wires a CPU to RAM like newTestCPU but also returns a
// counter incremented once per real Read/Write call, so a test can assert
// that bus activity (not just the declared Cycles total) matches hardware.
func newCountingTestCPU() (*CPU6510, *[0x10000]byte, *int) {
	var ram [0x10000]byte
	accesses := 0
	bus := Bus6510{
		Read: func(addr uint16) byte {
			accesses++
			return ram[addr]
		},
		Write: func(addr uint16, v byte) {
			accesses++
			ram[addr] = v
		},
	}
	c := NewCPU6510(bus)
	c.running.Store(true)
	return c, &ram, &accesses
}

func TestStackAndInterruptOpcodesChargeOneBusAccessPerDeclaredCycle(t *testing.T) {
	cases := []struct {
		name    string
		opcode  byte
		setup   func(c *CPU6510, ram *[0x10000]byte)
		wantLen uint64
	}{
		{"PHA", 0x48, nil, 3},
		{"PLA", 0x68, func(c *CPU6510, ram *[0x10000]byte) { c.SP = 0xFE }, 4},
		{"PHP", 0x08, nil, 3},
		{"PLP", 0x28, func(c *CPU6510, ram *[0x10000]byte) { c.SP = 0xFE }, 4},
		{"RTS", 0x60, func(c *CPU6510, ram *[0x10000]byte) {
			ram[0x01FE] = 0x99
			ram[0x01FF] = 0x02
			c.SP = 0xFD
		}, 6},
		{"RTI", 0x40, func(c *CPU6510, ram *[0x10000]byte) {
			ram[0x01FD] = 0x00
			ram[0x01FE] = 0x99
			ram[0x01FF] = 0x02
			c.SP = 0xFC
		}, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, ram, accesses := newCountingTestCPU()
			c.PC = 0x0200
			ram[0x0200] = tc.opcode
			if tc.setup != nil {
				tc.setup(c, ram)
			}

			c.Step()

			assert.Equal(t, int(tc.wantLen), *accesses, "expected %s to perform exactly %d real bus accesses (1 opcode fetch + its declared cycles minus 1), got %d: %s", tc.name, tc.wantLen, *accesses, spew.Sdump(c))
		})
	}
}

// Step dispatches a pending interrupt and then immediately fetches and
// executes the handler's first instruction in the same call, so the total
// access count is the interrupt's 7 plus that first instruction's own.
func TestHardwareIRQDispatchChargesSevenBusAccessesPlusHandlerEntry(t *testing.T) {
	c, ram, accesses := newCountingTestCPU()
	c.PC = 0x0300
	ram[0x0300] = 0xEA // never reached: the pending IRQ intercepts first
	ram[irqVector] = 0x00
	ram[irqVector+1] = 0x06
	ram[0x0600] = 0xEA // NOP: the handler's first instruction
	c.SetIRQLine(true)

	c.Step()

	require.Equal(t, uint16(0x0601), c.PC, "expected the pending IRQ to vector to $0600 and execute the NOP there")
	assert.Equal(t, 8, *accesses, "expected 7 real bus accesses for IRQ dispatch plus 1 opcode fetch for the handler's first instruction, got %d: %s", *accesses, spew.Sdump(c))
}

func TestDCPDoesNotReReadMemoryAfterRMW(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x0200
	c.A = 0x05
	ram[0x0200] = 0xC7 // DCP zp
	ram[0x0201] = 0x10
	ram[0x0010] = 0x05

	cycles := c.Step()

	assert.Equal(t, byte(0x04), ram[0x0010], "expected DCP to decrement memory in place")
	assert.Zero(t, c.SR&FlagZero, "expected compare of A=5 against decremented 4 to leave Z clear (not equal)")
	assert.True(t, c.SR&FlagCarry != 0, "expected compare of A=5 against 4 to set carry (A >= operand)")
	assert.Equal(t, uint64(5), cycles, "expected DCP zp to consume exactly 5 real bus cycles, not 6")
}
