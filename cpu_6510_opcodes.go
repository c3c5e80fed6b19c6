// cpu_6510_opcodes.go - opcode dispatch table: all 151 documented opcodes
// across their 13 addressing modes, plus the undocumented subset
// (LAX/SAX/DCP/ISC/SLO/RLA/SRE/RRA and the documented-length NOPs) that
// real C64 software and conformance tests exercise.

package c64

func (c *CPU6510) initOpcodeTable() {
	for i := range c.opcodeTable {
		c.opcodeTable[i] = opUnknown
	}

	// --- LDA ---
	c.opcodeTable[0xA9] = opLDAimm
	c.opcodeTable[0xA5] = opLDAzp
	c.opcodeTable[0xB5] = opLDAzpx
	c.opcodeTable[0xAD] = opLDAabs
	c.opcodeTable[0xBD] = opLDAabsx
	c.opcodeTable[0xB9] = opLDAabsy
	c.opcodeTable[0xA1] = opLDAindx
	c.opcodeTable[0xB1] = opLDAindy

	// --- LDX ---
	c.opcodeTable[0xA2] = opLDXimm
	c.opcodeTable[0xA6] = opLDXzp
	c.opcodeTable[0xB6] = opLDXzpy
	c.opcodeTable[0xAE] = opLDXabs
	c.opcodeTable[0xBE] = opLDXabsy

	// --- LDY ---
	c.opcodeTable[0xA0] = opLDYimm
	c.opcodeTable[0xA4] = opLDYzp
	c.opcodeTable[0xB4] = opLDYzpx
	c.opcodeTable[0xAC] = opLDYabs
	c.opcodeTable[0xBC] = opLDYabsx

	// --- STA ---
	c.opcodeTable[0x85] = opSTAzp
	c.opcodeTable[0x95] = opSTAzpx
	c.opcodeTable[0x8D] = opSTAabs
	c.opcodeTable[0x9D] = opSTAabsx
	c.opcodeTable[0x99] = opSTAabsy
	c.opcodeTable[0x81] = opSTAindx
	c.opcodeTable[0x91] = opSTAindy

	// --- STX / STY ---
	c.opcodeTable[0x86] = opSTXzp
	c.opcodeTable[0x96] = opSTXzpy
	c.opcodeTable[0x8E] = opSTXabs
	c.opcodeTable[0x84] = opSTYzp
	c.opcodeTable[0x94] = opSTYzpx
	c.opcodeTable[0x8C] = opSTYabs

	// --- transfers ---
	c.opcodeTable[0xAA] = opTAX
	c.opcodeTable[0x8A] = opTXA
	c.opcodeTable[0xA8] = opTAY
	c.opcodeTable[0x98] = opTYA
	c.opcodeTable[0xBA] = opTSX
	c.opcodeTable[0x9A] = opTXS

	// --- stack ---
	c.opcodeTable[0x48] = opPHA
	c.opcodeTable[0x68] = opPLA
	c.opcodeTable[0x08] = opPHP
	c.opcodeTable[0x28] = opPLP

	// --- ADC ---
	c.opcodeTable[0x69] = opADCimm
	c.opcodeTable[0x65] = opADCzp
	c.opcodeTable[0x75] = opADCzpx
	c.opcodeTable[0x6D] = opADCabs
	c.opcodeTable[0x7D] = opADCabsx
	c.opcodeTable[0x79] = opADCabsy
	c.opcodeTable[0x61] = opADCindx
	c.opcodeTable[0x71] = opADCindy

	// --- SBC ---
	c.opcodeTable[0xE9] = opSBCimm
	c.opcodeTable[0xE5] = opSBCzp
	c.opcodeTable[0xF5] = opSBCzpx
	c.opcodeTable[0xED] = opSBCabs
	c.opcodeTable[0xFD] = opSBCabsx
	c.opcodeTable[0xF9] = opSBCabsy
	c.opcodeTable[0xE1] = opSBCindx
	c.opcodeTable[0xF1] = opSBCindy

	// --- INC/DEC memory ---
	c.opcodeTable[0xE6] = opINCzp
	c.opcodeTable[0xF6] = opINCzpx
	c.opcodeTable[0xEE] = opINCabs
	c.opcodeTable[0xFE] = opINCabsx
	c.opcodeTable[0xC6] = opDECzp
	c.opcodeTable[0xD6] = opDECzpx
	c.opcodeTable[0xCE] = opDECabs
	c.opcodeTable[0xDE] = opDECabsx

	// --- INX/INY/DEX/DEY ---
	c.opcodeTable[0xE8] = opINX
	c.opcodeTable[0xC8] = opINY
	c.opcodeTable[0xCA] = opDEX
	c.opcodeTable[0x88] = opDEY

	// --- AND ---
	c.opcodeTable[0x29] = opANDimm
	c.opcodeTable[0x25] = opANDzp
	c.opcodeTable[0x35] = opANDzpx
	c.opcodeTable[0x2D] = opANDabs
	c.opcodeTable[0x3D] = opANDabsx
	c.opcodeTable[0x39] = opANDabsy
	c.opcodeTable[0x21] = opANDindx
	c.opcodeTable[0x31] = opANDindy

	// --- ORA ---
	c.opcodeTable[0x09] = opORAimm
	c.opcodeTable[0x05] = opORAzp
	c.opcodeTable[0x15] = opORAzpx
	c.opcodeTable[0x0D] = opORAabs
	c.opcodeTable[0x1D] = opORAabsx
	c.opcodeTable[0x19] = opORAabsy
	c.opcodeTable[0x01] = opORAindx
	c.opcodeTable[0x11] = opORAindy

	// --- EOR ---
	c.opcodeTable[0x49] = opEORimm
	c.opcodeTable[0x45] = opEORzp
	c.opcodeTable[0x55] = opEORzpx
	c.opcodeTable[0x4D] = opEORabs
	c.opcodeTable[0x5D] = opEORabsx
	c.opcodeTable[0x59] = opEORabsy
	c.opcodeTable[0x41] = opEORindx
	c.opcodeTable[0x51] = opEORindy

	// --- shifts/rotates ---
	c.opcodeTable[0x0A] = opASLacc
	c.opcodeTable[0x06] = opASLzp
	c.opcodeTable[0x16] = opASLzpx
	c.opcodeTable[0x0E] = opASLabs
	c.opcodeTable[0x1E] = opASLabsx
	c.opcodeTable[0x4A] = opLSRacc
	c.opcodeTable[0x46] = opLSRzp
	c.opcodeTable[0x56] = opLSRzpx
	c.opcodeTable[0x4E] = opLSRabs
	c.opcodeTable[0x5E] = opLSRabsx
	c.opcodeTable[0x2A] = opROLacc
	c.opcodeTable[0x26] = opROLzp
	c.opcodeTable[0x36] = opROLzpx
	c.opcodeTable[0x2E] = opROLabs
	c.opcodeTable[0x3E] = opROLabsx
	c.opcodeTable[0x6A] = opRORacc
	c.opcodeTable[0x66] = opRORzp
	c.opcodeTable[0x76] = opRORzpx
	c.opcodeTable[0x6E] = opRORabs
	c.opcodeTable[0x7E] = opRORabsx

	// --- BIT ---
	c.opcodeTable[0x24] = opBITzp
	c.opcodeTable[0x2C] = opBITabs

	// --- compares ---
	c.opcodeTable[0xC9] = opCMPimm
	c.opcodeTable[0xC5] = opCMPzp
	c.opcodeTable[0xD5] = opCMPzpx
	c.opcodeTable[0xCD] = opCMPabs
	c.opcodeTable[0xDD] = opCMPabsx
	c.opcodeTable[0xD9] = opCMPabsy
	c.opcodeTable[0xC1] = opCMPindx
	c.opcodeTable[0xD1] = opCMPindy
	c.opcodeTable[0xE0] = opCPXimm
	c.opcodeTable[0xE4] = opCPXzp
	c.opcodeTable[0xEC] = opCPXabs
	c.opcodeTable[0xC0] = opCPYimm
	c.opcodeTable[0xC4] = opCPYzp
	c.opcodeTable[0xCC] = opCPYabs

	// --- branches ---
	c.opcodeTable[0x10] = opBPL
	c.opcodeTable[0x30] = opBMI
	c.opcodeTable[0x50] = opBVC
	c.opcodeTable[0x70] = opBVS
	c.opcodeTable[0x90] = opBCC
	c.opcodeTable[0xB0] = opBCS
	c.opcodeTable[0xD0] = opBNE
	c.opcodeTable[0xF0] = opBEQ

	// --- flags ---
	c.opcodeTable[0x18] = opCLC
	c.opcodeTable[0x38] = opSEC
	c.opcodeTable[0x58] = opCLI
	c.opcodeTable[0x78] = opSEI
	c.opcodeTable[0xB8] = opCLV
	c.opcodeTable[0xD8] = opCLD
	c.opcodeTable[0xF8] = opSED

	// --- control flow ---
	c.opcodeTable[0x4C] = opJMPabs
	c.opcodeTable[0x6C] = opJMPind
	c.opcodeTable[0x20] = opJSR
	c.opcodeTable[0x60] = opRTS
	c.opcodeTable[0x00] = opBRK
	c.opcodeTable[0x40] = opRTI
	c.opcodeTable[0xEA] = opNOP

	c.initOpcodeTableIllegal()
}

func opUnknown(c *CPU6510) { c.Cycles += 2 }

// --- loads ---

func opLDAimm(c *CPU6510) { c.A = c.readByte(c.getImmediate()); c.updateNZ(c.A); c.Cycles += 2 }
func opLDAzp(c *CPU6510)  { c.A = c.readByte(c.getZeroPage()); c.updateNZ(c.A); c.Cycles += 3 }
func opLDAzpx(c *CPU6510) { c.A = c.readByte(c.getZeroPageX()); c.updateNZ(c.A); c.Cycles += 4 }
func opLDAabs(c *CPU6510) { c.A = c.readByte(c.getAbsolute()); c.updateNZ(c.A); c.Cycles += 4 }
func opLDAabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.A = c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opLDAabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.A = c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opLDAindx(c *CPU6510) {
	c.A = c.readByte(c.getIndexedIndirect())
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opLDAindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.A = c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

func opLDXimm(c *CPU6510) { c.X = c.readByte(c.getImmediate()); c.updateNZ(c.X); c.Cycles += 2 }
func opLDXzp(c *CPU6510)  { c.X = c.readByte(c.getZeroPage()); c.updateNZ(c.X); c.Cycles += 3 }
func opLDXzpy(c *CPU6510) { c.X = c.readByte(c.getZeroPageY()); c.updateNZ(c.X); c.Cycles += 4 }
func opLDXabs(c *CPU6510) { c.X = c.readByte(c.getAbsolute()); c.updateNZ(c.X); c.Cycles += 4 }
func opLDXabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.X = c.readByte(addr)
	c.updateNZ(c.X)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}

func opLDYimm(c *CPU6510) { c.Y = c.readByte(c.getImmediate()); c.updateNZ(c.Y); c.Cycles += 2 }
func opLDYzp(c *CPU6510)  { c.Y = c.readByte(c.getZeroPage()); c.updateNZ(c.Y); c.Cycles += 3 }
func opLDYzpx(c *CPU6510) { c.Y = c.readByte(c.getZeroPageX()); c.updateNZ(c.Y); c.Cycles += 4 }
func opLDYabs(c *CPU6510) { c.Y = c.readByte(c.getAbsolute()); c.updateNZ(c.Y); c.Cycles += 4 }
func opLDYabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.Y = c.readByte(addr)
	c.updateNZ(c.Y)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}

// --- stores (no page-cross cycle penalty: stores always pay the extra cycle) ---

func opSTAzp(c *CPU6510)  { c.writeByte(c.getZeroPage(), c.A); c.Cycles += 3 }
func opSTAzpx(c *CPU6510) { c.writeByte(c.getZeroPageX(), c.A); c.Cycles += 4 }
func opSTAabs(c *CPU6510) { c.writeByte(c.getAbsolute(), c.A); c.Cycles += 4 }
func opSTAabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.writeByte(addr, c.A)
	c.Cycles += 5
}
func opSTAabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.writeByte(addr, c.A)
	c.Cycles += 5
}
func opSTAindx(c *CPU6510) { c.writeByte(c.getIndexedIndirect(), c.A); c.Cycles += 6 }
func opSTAindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.writeByte(addr, c.A)
	c.Cycles += 6
}

func opSTXzp(c *CPU6510)  { c.writeByte(c.getZeroPage(), c.X); c.Cycles += 3 }
func opSTXzpy(c *CPU6510) { c.writeByte(c.getZeroPageY(), c.X); c.Cycles += 4 }
func opSTXabs(c *CPU6510) { c.writeByte(c.getAbsolute(), c.X); c.Cycles += 4 }
func opSTYzp(c *CPU6510)  { c.writeByte(c.getZeroPage(), c.Y); c.Cycles += 3 }
func opSTYzpx(c *CPU6510) { c.writeByte(c.getZeroPageX(), c.Y); c.Cycles += 4 }
func opSTYabs(c *CPU6510) { c.writeByte(c.getAbsolute(), c.Y); c.Cycles += 4 }

// --- transfers ---

func opTAX(c *CPU6510) { c.X = c.A; c.updateNZ(c.X); c.Cycles += 2 }
func opTXA(c *CPU6510) { c.A = c.X; c.updateNZ(c.A); c.Cycles += 2 }
func opTAY(c *CPU6510) { c.Y = c.A; c.updateNZ(c.Y); c.Cycles += 2 }
func opTYA(c *CPU6510) { c.A = c.Y; c.updateNZ(c.A); c.Cycles += 2 }
func opTSX(c *CPU6510) { c.X = c.SP; c.updateNZ(c.X); c.Cycles += 2 }
func opTXS(c *CPU6510) { c.SP = c.X; c.Cycles += 2 } // TXS does not affect flags

// --- stack ---

func opPHA(c *CPU6510) {
	c.readByte(c.PC) // dummy read of the next instruction byte
	c.push(c.A)
	c.Cycles += 3
}
func opPLA(c *CPU6510) {
	c.readByte(c.PC)                     // dummy read of the next instruction byte
	c.readByte(stackBase + uint16(c.SP)) // dummy read while incrementing S
	c.A = c.pop()
	c.updateNZ(c.A)
	c.Cycles += 4
}
func opPHP(c *CPU6510) {
	c.readByte(c.PC) // dummy read of the next instruction byte
	c.push(c.SR | FlagBreak | FlagUnused)
	c.Cycles += 3
}
func opPLP(c *CPU6510) {
	c.readByte(c.PC)                     // dummy read of the next instruction byte
	c.readByte(stackBase + uint16(c.SP)) // dummy read while incrementing S
	c.SR = (c.pop() &^ FlagBreak) | FlagUnused
	c.Cycles += 4
}

// --- ADC/SBC ---

func opADCimm(c *CPU6510) { c.adc(c.readByte(c.getImmediate())); c.Cycles += 2 }
func opADCzp(c *CPU6510)  { c.adc(c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opADCzpx(c *CPU6510) { c.adc(c.readByte(c.getZeroPageX())); c.Cycles += 4 }
func opADCabs(c *CPU6510) { c.adc(c.readByte(c.getAbsolute())); c.Cycles += 4 }
func opADCabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.adc(c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opADCabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.adc(c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opADCindx(c *CPU6510) { c.adc(c.readByte(c.getIndexedIndirect())); c.Cycles += 6 }
func opADCindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.adc(c.readByte(addr))
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

func opSBCimm(c *CPU6510) { c.sbc(c.readByte(c.getImmediate())); c.Cycles += 2 }
func opSBCzp(c *CPU6510)  { c.sbc(c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opSBCzpx(c *CPU6510) { c.sbc(c.readByte(c.getZeroPageX())); c.Cycles += 4 }
func opSBCabs(c *CPU6510) { c.sbc(c.readByte(c.getAbsolute())); c.Cycles += 4 }
func opSBCabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.sbc(c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opSBCabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.sbc(c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opSBCindx(c *CPU6510) { c.sbc(c.readByte(c.getIndexedIndirect())); c.Cycles += 6 }
func opSBCindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.sbc(c.readByte(addr))
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

// --- INC/DEC memory ---

func opINCzp(c *CPU6510)   { c.inc(c.getZeroPage()); c.Cycles += 5 }
func opINCzpx(c *CPU6510)  { c.inc(c.getZeroPageX()); c.Cycles += 6 }
func opINCabs(c *CPU6510)  { c.inc(c.getAbsolute()); c.Cycles += 6 }
func opINCabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.inc(addr); c.Cycles += 7 }
func opDECzp(c *CPU6510)   { c.dec(c.getZeroPage()); c.Cycles += 5 }
func opDECzpx(c *CPU6510)  { c.dec(c.getZeroPageX()); c.Cycles += 6 }
func opDECabs(c *CPU6510)  { c.dec(c.getAbsolute()); c.Cycles += 6 }
func opDECabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.dec(addr); c.Cycles += 7 }

func opINX(c *CPU6510) { c.X++; c.updateNZ(c.X); c.Cycles += 2 }
func opINY(c *CPU6510) { c.Y++; c.updateNZ(c.Y); c.Cycles += 2 }
func opDEX(c *CPU6510) { c.X--; c.updateNZ(c.X); c.Cycles += 2 }
func opDEY(c *CPU6510) { c.Y--; c.updateNZ(c.Y); c.Cycles += 2 }

// --- logic ---

func opANDimm(c *CPU6510) { c.A &= c.readByte(c.getImmediate()); c.updateNZ(c.A); c.Cycles += 2 }
func opANDzp(c *CPU6510)  { c.A &= c.readByte(c.getZeroPage()); c.updateNZ(c.A); c.Cycles += 3 }
func opANDzpx(c *CPU6510) { c.A &= c.readByte(c.getZeroPageX()); c.updateNZ(c.A); c.Cycles += 4 }
func opANDabs(c *CPU6510) { c.A &= c.readByte(c.getAbsolute()); c.updateNZ(c.A); c.Cycles += 4 }
func opANDabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.A &= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opANDabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.A &= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opANDindx(c *CPU6510) { c.A &= c.readByte(c.getIndexedIndirect()); c.updateNZ(c.A); c.Cycles += 6 }
func opANDindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.A &= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

func opORAimm(c *CPU6510) { c.A |= c.readByte(c.getImmediate()); c.updateNZ(c.A); c.Cycles += 2 }
func opORAzp(c *CPU6510)  { c.A |= c.readByte(c.getZeroPage()); c.updateNZ(c.A); c.Cycles += 3 }
func opORAzpx(c *CPU6510) { c.A |= c.readByte(c.getZeroPageX()); c.updateNZ(c.A); c.Cycles += 4 }
func opORAabs(c *CPU6510) { c.A |= c.readByte(c.getAbsolute()); c.updateNZ(c.A); c.Cycles += 4 }
func opORAabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.A |= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opORAabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.A |= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opORAindx(c *CPU6510) { c.A |= c.readByte(c.getIndexedIndirect()); c.updateNZ(c.A); c.Cycles += 6 }
func opORAindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.A |= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

func opEORimm(c *CPU6510) { c.A ^= c.readByte(c.getImmediate()); c.updateNZ(c.A); c.Cycles += 2 }
func opEORzp(c *CPU6510)  { c.A ^= c.readByte(c.getZeroPage()); c.updateNZ(c.A); c.Cycles += 3 }
func opEORzpx(c *CPU6510) { c.A ^= c.readByte(c.getZeroPageX()); c.updateNZ(c.A); c.Cycles += 4 }
func opEORabs(c *CPU6510) { c.A ^= c.readByte(c.getAbsolute()); c.updateNZ(c.A); c.Cycles += 4 }
func opEORabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.A ^= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opEORabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.A ^= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opEORindx(c *CPU6510) { c.A ^= c.readByte(c.getIndexedIndirect()); c.updateNZ(c.A); c.Cycles += 6 }
func opEORindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.A ^= c.readByte(addr)
	c.updateNZ(c.A)
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

// --- shifts/rotates ---

func opASLacc(c *CPU6510)  { c.asl(0, true); c.Cycles += 2 }
func opASLzp(c *CPU6510)   { c.asl(c.getZeroPage(), false); c.Cycles += 5 }
func opASLzpx(c *CPU6510)  { c.asl(c.getZeroPageX(), false); c.Cycles += 6 }
func opASLabs(c *CPU6510)  { c.asl(c.getAbsolute(), false); c.Cycles += 6 }
func opASLabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.asl(addr, false); c.Cycles += 7 }

func opLSRacc(c *CPU6510)  { c.lsr(0, true); c.Cycles += 2 }
func opLSRzp(c *CPU6510)   { c.lsr(c.getZeroPage(), false); c.Cycles += 5 }
func opLSRzpx(c *CPU6510)  { c.lsr(c.getZeroPageX(), false); c.Cycles += 6 }
func opLSRabs(c *CPU6510)  { c.lsr(c.getAbsolute(), false); c.Cycles += 6 }
func opLSRabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.lsr(addr, false); c.Cycles += 7 }

func opROLacc(c *CPU6510)  { c.rol(0, true); c.Cycles += 2 }
func opROLzp(c *CPU6510)   { c.rol(c.getZeroPage(), false); c.Cycles += 5 }
func opROLzpx(c *CPU6510)  { c.rol(c.getZeroPageX(), false); c.Cycles += 6 }
func opROLabs(c *CPU6510)  { c.rol(c.getAbsolute(), false); c.Cycles += 6 }
func opROLabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.rol(addr, false); c.Cycles += 7 }

func opRORacc(c *CPU6510)  { c.ror(0, true); c.Cycles += 2 }
func opRORzp(c *CPU6510)   { c.ror(c.getZeroPage(), false); c.Cycles += 5 }
func opRORzpx(c *CPU6510)  { c.ror(c.getZeroPageX(), false); c.Cycles += 6 }
func opRORabs(c *CPU6510)  { c.ror(c.getAbsolute(), false); c.Cycles += 6 }
func opRORabsx(c *CPU6510) { addr, _ := c.getAbsoluteX(); c.ror(addr, false); c.Cycles += 7 }

// --- BIT ---

func (c *CPU6510) bit(value byte) {
	c.setFlag(FlagZero, c.A&value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
	c.setFlag(FlagOverflow, value&0x40 != 0)
}
func opBITzp(c *CPU6510)  { c.bit(c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opBITabs(c *CPU6510) { c.bit(c.readByte(c.getAbsolute())); c.Cycles += 4 }

// --- compares ---

func opCMPimm(c *CPU6510) { c.compare(c.A, c.readByte(c.getImmediate())); c.Cycles += 2 }
func opCMPzp(c *CPU6510)  { c.compare(c.A, c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opCMPzpx(c *CPU6510) { c.compare(c.A, c.readByte(c.getZeroPageX())); c.Cycles += 4 }
func opCMPabs(c *CPU6510) { c.compare(c.A, c.readByte(c.getAbsolute())); c.Cycles += 4 }
func opCMPabsx(c *CPU6510) {
	addr, cross := c.getAbsoluteX()
	c.compare(c.A, c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opCMPabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.compare(c.A, c.readByte(addr))
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opCMPindx(c *CPU6510) { c.compare(c.A, c.readByte(c.getIndexedIndirect())); c.Cycles += 6 }
func opCMPindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.compare(c.A, c.readByte(addr))
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}
func opCPXimm(c *CPU6510) { c.compare(c.X, c.readByte(c.getImmediate())); c.Cycles += 2 }
func opCPXzp(c *CPU6510)  { c.compare(c.X, c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opCPXabs(c *CPU6510) { c.compare(c.X, c.readByte(c.getAbsolute())); c.Cycles += 4 }
func opCPYimm(c *CPU6510) { c.compare(c.Y, c.readByte(c.getImmediate())); c.Cycles += 2 }
func opCPYzp(c *CPU6510)  { c.compare(c.Y, c.readByte(c.getZeroPage())); c.Cycles += 3 }
func opCPYabs(c *CPU6510) { c.compare(c.Y, c.readByte(c.getAbsolute())); c.Cycles += 4 }

// --- branches ---

func opBPL(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagNegative == 0) }
func opBMI(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagNegative != 0) }
func opBVC(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagOverflow == 0) }
func opBVS(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagOverflow != 0) }
func opBCC(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagCarry == 0) }
func opBCS(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagCarry != 0) }
func opBNE(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagZero == 0) }
func opBEQ(c *CPU6510) { c.Cycles += 2; c.branch(c.SR&FlagZero != 0) }

// --- flags ---

func opCLC(c *CPU6510) { c.setFlag(FlagCarry, false); c.Cycles += 2 }
func opSEC(c *CPU6510) { c.setFlag(FlagCarry, true); c.Cycles += 2 }
func opCLI(c *CPU6510) { c.setFlag(FlagInterrupt, false); c.Cycles += 2 }
func opSEI(c *CPU6510) { c.setFlag(FlagInterrupt, true); c.Cycles += 2 }
func opCLV(c *CPU6510) { c.setFlag(FlagOverflow, false); c.Cycles += 2 }
func opCLD(c *CPU6510) { c.setFlag(FlagDecimal, false); c.Cycles += 2 }
func opSED(c *CPU6510) { c.setFlag(FlagDecimal, true); c.Cycles += 2 }

// --- control flow ---

func opJMPabs(c *CPU6510) { c.PC = c.getAbsolute(); c.Cycles += 3 }

// opJMPind reproduces the documented 6502 bug: the high byte of the
// target is fetched from the same page as the pointer, wrapping at a
// page boundary instead of crossing into the next page.
func opJMPind(c *CPU6510) {
	ptr := c.getAbsolute()
	lo := c.readByte(ptr)
	hi := c.readByte((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
	c.PC = uint16(lo) | uint16(hi)<<8
	c.Cycles += 5
}
func opJSR(c *CPU6510) {
	addr := c.getAbsolute()
	c.readByte(stackBase + uint16(c.SP)) // internal delay cycle before pushing
	c.push16(c.PC - 1)
	c.PC = addr
	c.Cycles += 6
}
func opRTS(c *CPU6510) {
	c.readByte(c.PC)                     // dummy read of the next instruction byte
	c.readByte(stackBase + uint16(c.SP)) // dummy read while incrementing S
	addr := c.pop16()
	c.readByte(addr) // dummy read at the return address before the final PC increment
	c.PC = addr + 1
	c.Cycles += 6
}

// opBRK pushes PC+2 (the signature byte following the opcode is skipped),
// sets Break in the pushed copy of SR only; the live register's Break bit
// is left untouched.
func opBRK(c *CPU6510) {
	c.readByte(c.PC) // read (and discard) the signature byte
	c.PC++
	c.push16(c.PC)
	c.push(c.SR | FlagBreak | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(irqVector)
	c.Cycles += 7
}
func opRTI(c *CPU6510) {
	c.readByte(c.PC)                     // dummy read of the next instruction byte
	c.readByte(stackBase + uint16(c.SP)) // dummy read while incrementing S
	c.SR = (c.pop() &^ FlagBreak) | FlagUnused
	c.PC = c.pop16()
	c.Cycles += 6
}
func opNOP(c *CPU6510) { c.Cycles += 2 }
