package c64

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIATimerAUnderflowSetsICR(t *testing.T) {
	c := NewCIA6526(false, CIAPortLines{})
	c.Write(ciaTALo, 0x02)
	c.Write(ciaTAHi, 0x00)
	c.Write(ciaICR, 0x81) // unmask timer A
	c.Write(ciaCRA, craStart)

	// Two cycles of start-pipeline delay, then two more to count 2->1->0.
	for i := 0; i < 10; i++ {
		c.Tick()
	}

	require.True(t, c.IRQ(), "expected CIA IRQ line asserted after timer A underflow: %s", spew.Sdump(c))
	icr := c.Read(ciaICR)
	assert.NotZero(t, icr&icrIR, "expected ICR bit 7 set on read, got 0x%02X", icr)
	assert.NotZero(t, icr&icrTA, "expected ICR timer-A source bit set, got 0x%02X", icr)
	assert.False(t, c.IRQ(), "expected IRQ line cleared after ICR read")
}

func TestCIAICRSourceBitStickyRegardlessOfMask(t *testing.T) {
	c := NewCIA6526(false, CIAPortLines{})
	c.Write(ciaTALo, 0x01)
	c.Write(ciaTAHi, 0x00)
	c.Write(ciaCRA, craStart) // no IMR bits set

	for i := 0; i < 10; i++ {
		c.Tick()
	}

	assert.False(t, c.IRQ(), "expected IRQ line low: timer A source is masked")
	icr := c.Read(ciaICR)
	assert.NotZero(t, icr&icrTA, "expected source bit recorded even though masked, got 0x%02X", icr)
	assert.Zero(t, icr&icrIR, "expected summary bit clear when source is masked, got 0x%02X", icr)
}

func TestCIATimerBCountsTimerAUnderflow(t *testing.T) {
	c := NewCIA6526(false, CIAPortLines{})
	c.Write(ciaTALo, 0x01)
	c.Write(ciaTAHi, 0x00)
	c.Write(ciaTBLo, 0x02)
	c.Write(ciaTBHi, 0x00)
	c.Write(ciaCRB, crbInMode&0x40) // count Timer-A underflows
	c.Write(ciaCRA, craStart)
	c.Write(ciaCRB, (crbInMode&0x40)|crbStart)
	c.Write(ciaICR, 0x82) // unmask timer B

	for i := 0; i < 40; i++ {
		c.Tick()
	}

	require.True(t, c.IRQ(), "expected timer B to underflow from counting timer A pulses: %s", spew.Sdump(c))
}

func TestCIATODBCDIncrement(t *testing.T) {
	c := NewCIA6526(false, CIAPortLines{})
	c.todFreqCycles = 1
	c.Write(ciaTODTen, 0x09)
	c.tickTOD()
	assert.Equal(t, byte(0x00), c.todTenths, "expected tenths to roll over to 0")
	assert.Equal(t, byte(0x01), c.todSec, "expected seconds BCD-incremented to 0x01")
}

func TestCIAKeyboardPortBReadThroughCallback(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(1, 3)
	c := NewCIA6526(false, CIAPortLines{
		ReadB: func(ddr, latch byte) byte { return kb.ReadColumns(0xFF &^ (1 << 1)) },
	})
	c.ddrb = 0x00 // all input
	v := c.readPortB()
	assert.Zero(t, v&(1<<3), "expected column 3 pulled low for pressed key, got 0x%02X", v)
}
