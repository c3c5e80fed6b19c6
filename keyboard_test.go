package c64

import "testing"

func TestKeyboardMatrixSingleRowSelect(t *testing.T) {
	k := NewKeyboard()
	k.Press(2, 5)
	got := k.ReadColumns(0xFF &^ (1 << 2))
	if got&(1<<5) != 0 {
		t.Fatalf("expected column 5 pulled low when row 2 selected, got 0x%02X", got)
	}
	if got&(1<<4) == 0 {
		t.Fatalf("expected unpressed column 4 to read high, got 0x%02X", got)
	}
}

func TestKeyboardNoRowsSelectedReadsAllHigh(t *testing.T) {
	k := NewKeyboard()
	k.Press(0, 0)
	got := k.ReadColumns(0xFF)
	if got != 0xFF {
		t.Fatalf("expected all-high columns when no row selected, got 0x%02X", got)
	}
}

func TestKeyboardMultiRowWiredAND(t *testing.T) {
	k := NewKeyboard()
	k.Press(0, 3)
	selectRows0and1 := byte(0xFF &^ 0x03)
	got := k.ReadColumns(selectRows0and1)
	if got&(1<<3) != 0 {
		t.Fatalf("expected wired-AND to pull column 3 low across selected rows, got 0x%02X", got)
	}
}

func TestKeyboardClearReleasesAllKeys(t *testing.T) {
	k := NewKeyboard()
	k.Press(4, 4)
	k.Clear()
	got := k.ReadColumns(0xFF &^ (1 << 4))
	if got != 0xFF {
		t.Fatalf("expected all keys released after Clear, got 0x%02X", got)
	}
}
