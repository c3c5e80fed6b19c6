package c64

import "testing"

func newTestBus() *MemoryBus {
	vic := NewVICII()
	sid := NewSIDEngine(985248, 44100)
	cia1 := NewCIA6526(false, CIAPortLines{})
	cia2 := NewCIA6526(true, CIAPortLines{})
	return NewMemoryBus(vic, sid, cia1, cia2, nil)
}

func TestMemoryBusPLABanking(t *testing.T) {
	m := newTestBus()
	m.BasicROM[0] = 0xAA
	m.KernalROM[0] = 0xBB
	m.CharROM[0] = 0xCC
	m.RAM[0xA000] = 0x11
	m.RAM[0xE000] = 0x22
	m.RAM[0xD000] = 0x33

	m.writeInternal(0x0001, 0x35) // HIRAM=1 LORAM=0 CHAREN=1
	if got := m.readInternal(0xA000); got != 0x11 {
		t.Fatalf("expected RAM at $A000 when LORAM=0, got 0x%02X", got)
	}
	if got := m.readInternal(0xE000); got != 0xBB {
		t.Fatalf("expected KERNAL ROM at $E000, got 0x%02X", got)
	}
	if got := m.readInternal(0xD000); got != m.readIO(0xD000) {
		t.Fatalf("expected I/O at $D000 when CHAREN=1")
	}

	m.writeInternal(0x0001, 0x34) // CHAREN=0
	if got := m.readInternal(0xD000); got != 0xCC {
		t.Fatalf("expected CHAR ROM at $D000 when CHAREN=0, got 0x%02X", got)
	}

	m.writeInternal(0x0001, 0x37) // LORAM=1 HIRAM=1
	if got := m.readInternal(0xA000); got != 0xAA {
		t.Fatalf("expected BASIC ROM at $A000, got 0x%02X", got)
	}
}

func TestMemoryBusIODispatch(t *testing.T) {
	m := newTestBus()
	m.writeInternal(0x0001, 0x37)
	m.writeIO(0xD020, 0x06)
	if got := m.readIO(0xD020); got&0x0F != 0x06 {
		t.Fatalf("expected VIC border color round-trip, got 0x%02X", got)
	}
	m.writeIO(0xD800, 0x0F)
	if got := m.readIO(0xD800); got&0x0F != 0x0F {
		t.Fatalf("expected color RAM low-nibble round-trip, got 0x%02X", got)
	}
	if got := m.readIO(0xD800) & 0xF0; got != 0xF0 {
		t.Fatalf("expected color RAM upper nibble to read as 0xF, got 0x%02X", got)
	}
}

func TestMemoryBusCPUPortDefaultBanking(t *testing.T) {
	m := newTestBus()
	if !m.loram() || !m.hiram() || !m.charen() {
		t.Fatalf("expected power-on default of LORAM=HIRAM=CHAREN=1")
	}
}

func TestMemoryBusUnmappedIOFloatingBus(t *testing.T) {
	m := newTestBus()
	m.writeInternal(0x0001, 0x37)
	got := m.readInternal(0xDE34)
	if got != 0xDE {
		t.Fatalf("expected floating-bus approximation to return high address byte, got 0x%02X", got)
	}
}
