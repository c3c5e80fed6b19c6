// cpu_6510_opcodes_illegal.go - the undocumented opcode subset needed for
// Lorenz-suite conformance: LAX, SAX, DCP, ISC, SLO, RLA, SRE, RRA and the
// documented-length NOPs. Everything else in the undocumented space keeps
// the opUnknown (NOP-as-2-cycles) stub installed by initOpcodeTable.

package c64

func (c *CPU6510) initOpcodeTableIllegal() {
	// LAX: load A and X from the same fetched byte.
	c.opcodeTable[0xA7] = opLAXzp
	c.opcodeTable[0xB7] = opLAXzpy
	c.opcodeTable[0xAF] = opLAXabs
	c.opcodeTable[0xBF] = opLAXabsy
	c.opcodeTable[0xA3] = opLAXindx
	c.opcodeTable[0xB3] = opLAXindy

	// SAX: store A AND X.
	c.opcodeTable[0x87] = opSAXzp
	c.opcodeTable[0x97] = opSAXzpy
	c.opcodeTable[0x8F] = opSAXabs
	c.opcodeTable[0x83] = opSAXindx

	// DCP: DEC then CMP.
	c.opcodeTable[0xC7] = opDCPzp
	c.opcodeTable[0xD7] = opDCPzpx
	c.opcodeTable[0xCF] = opDCPabs
	c.opcodeTable[0xDF] = opDCPabsx
	c.opcodeTable[0xDB] = opDCPabsy
	c.opcodeTable[0xC3] = opDCPindx
	c.opcodeTable[0xD3] = opDCPindy

	// ISC (aka ISB): INC then SBC.
	c.opcodeTable[0xE7] = opISCzp
	c.opcodeTable[0xF7] = opISCzpx
	c.opcodeTable[0xEF] = opISCabs
	c.opcodeTable[0xFF] = opISCabsx
	c.opcodeTable[0xFB] = opISCabsy
	c.opcodeTable[0xE3] = opISCindx
	c.opcodeTable[0xF3] = opISCindy

	// SLO: ASL then ORA.
	c.opcodeTable[0x07] = opSLOzp
	c.opcodeTable[0x17] = opSLOzpx
	c.opcodeTable[0x0F] = opSLOabs
	c.opcodeTable[0x1F] = opSLOabsx
	c.opcodeTable[0x1B] = opSLOabsy
	c.opcodeTable[0x03] = opSLOindx
	c.opcodeTable[0x13] = opSLOindy

	// RLA: ROL then AND.
	c.opcodeTable[0x27] = opRLAzp
	c.opcodeTable[0x37] = opRLAzpx
	c.opcodeTable[0x2F] = opRLAabs
	c.opcodeTable[0x3F] = opRLAabsx
	c.opcodeTable[0x3B] = opRLAabsy
	c.opcodeTable[0x23] = opRLAindx
	c.opcodeTable[0x33] = opRLAindy

	// SRE: LSR then EOR.
	c.opcodeTable[0x47] = opSREzp
	c.opcodeTable[0x57] = opSREzpx
	c.opcodeTable[0x4F] = opSREabs
	c.opcodeTable[0x5F] = opSREabsx
	c.opcodeTable[0x5B] = opSREabsy
	c.opcodeTable[0x43] = opSREindx
	c.opcodeTable[0x53] = opSREindy

	// RRA: ROR then ADC.
	c.opcodeTable[0x67] = opRRAzp
	c.opcodeTable[0x77] = opRRAzpx
	c.opcodeTable[0x6F] = opRRAabs
	c.opcodeTable[0x7F] = opRRAabsx
	c.opcodeTable[0x7B] = opRRAabsy
	c.opcodeTable[0x63] = opRRAindx
	c.opcodeTable[0x73] = opRRAindy

	// Documented-length unofficial NOPs.
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		c.opcodeTable[op] = opNOPimplied2
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		c.opcodeTable[op] = opNOPimm2
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		c.opcodeTable[op] = opNOPzp3
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		c.opcodeTable[op] = opNOPzpx4
	}
	c.opcodeTable[0x0C] = opNOPabs4
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		c.opcodeTable[op] = opNOPabsx4
	}
}

func opLAXzp(c *CPU6510)  { c.A = c.readByte(c.getZeroPage()); c.X = c.A; c.updateNZ(c.A); c.Cycles += 3 }
func opLAXzpy(c *CPU6510) { c.A = c.readByte(c.getZeroPageY()); c.X = c.A; c.updateNZ(c.A); c.Cycles += 4 }
func opLAXabs(c *CPU6510) { c.A = c.readByte(c.getAbsolute()); c.X = c.A; c.updateNZ(c.A); c.Cycles += 4 }
func opLAXabsy(c *CPU6510) {
	addr, cross := c.getAbsoluteY()
	c.A = c.readByte(addr)
	c.X = c.A
	c.updateNZ(c.A)
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
func opLAXindx(c *CPU6510) {
	c.A = c.readByte(c.getIndexedIndirect())
	c.X = c.A
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opLAXindy(c *CPU6510) {
	addr, cross := c.getIndirectIndexed()
	c.A = c.readByte(addr)
	c.X = c.A
	c.updateNZ(c.A)
	c.Cycles += 5
	if cross {
		c.Cycles++
	}
}

func opSAXzp(c *CPU6510)   { c.writeByte(c.getZeroPage(), c.A&c.X); c.Cycles += 3 }
func opSAXzpy(c *CPU6510)  { c.writeByte(c.getZeroPageY(), c.A&c.X); c.Cycles += 4 }
func opSAXabs(c *CPU6510)  { c.writeByte(c.getAbsolute(), c.A&c.X); c.Cycles += 4 }
func opSAXindx(c *CPU6510) { c.writeByte(c.getIndexedIndirect(), c.A&c.X); c.Cycles += 6 }

func opDCPzp(c *CPU6510) { addr := c.getZeroPage(); c.compare(c.A, c.dec(addr)); c.Cycles += 5 }
func opDCPzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 6
}
func opDCPabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 6
}
func opDCPabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 7
}
func opDCPabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 7
}
func opDCPindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 8
}
func opDCPindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.compare(c.A, c.dec(addr))
	c.Cycles += 8
}

func opISCzp(c *CPU6510) { addr := c.getZeroPage(); c.sbc(c.inc(addr)); c.Cycles += 5 }
func opISCzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.sbc(c.inc(addr))
	c.Cycles += 6
}
func opISCabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.sbc(c.inc(addr))
	c.Cycles += 6
}
func opISCabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.sbc(c.inc(addr))
	c.Cycles += 7
}
func opISCabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.sbc(c.inc(addr))
	c.Cycles += 7
}
func opISCindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.sbc(c.inc(addr))
	c.Cycles += 8
}
func opISCindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.sbc(c.inc(addr))
	c.Cycles += 8
}

func opSLOzp(c *CPU6510) { addr := c.getZeroPage(); c.A |= c.asl(addr, false); c.updateNZ(c.A); c.Cycles += 5 }
func opSLOzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opSLOabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opSLOabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opSLOabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opSLOindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}
func opSLOindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.A |= c.asl(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}

func opRLAzp(c *CPU6510) { addr := c.getZeroPage(); c.A &= c.rol(addr, false); c.updateNZ(c.A); c.Cycles += 5 }
func opRLAzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opRLAabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opRLAabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opRLAabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opRLAindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}
func opRLAindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.A &= c.rol(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}

func opSREzp(c *CPU6510) { addr := c.getZeroPage(); c.A ^= c.lsr(addr, false); c.updateNZ(c.A); c.Cycles += 5 }
func opSREzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opSREabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 6
}
func opSREabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opSREabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 7
}
func opSREindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}
func opSREindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.A ^= c.lsr(addr, false)
	c.updateNZ(c.A)
	c.Cycles += 8
}

func opRRAzp(c *CPU6510) { addr := c.getZeroPage(); c.adc(c.ror(addr, false)); c.Cycles += 5 }
func opRRAzpx(c *CPU6510) {
	addr := c.getZeroPageX()
	c.adc(c.ror(addr, false))
	c.Cycles += 6
}
func opRRAabs(c *CPU6510) {
	addr := c.getAbsolute()
	c.adc(c.ror(addr, false))
	c.Cycles += 6
}
func opRRAabsx(c *CPU6510) {
	addr, _ := c.getAbsoluteX()
	c.adc(c.ror(addr, false))
	c.Cycles += 7
}
func opRRAabsy(c *CPU6510) {
	addr, _ := c.getAbsoluteY()
	c.adc(c.ror(addr, false))
	c.Cycles += 7
}
func opRRAindx(c *CPU6510) {
	addr := c.getIndexedIndirect()
	c.adc(c.ror(addr, false))
	c.Cycles += 8
}
func opRRAindy(c *CPU6510) {
	addr, _ := c.getIndirectIndexed()
	c.adc(c.ror(addr, false))
	c.Cycles += 8
}

func opNOPimplied2(c *CPU6510) { c.Cycles += 2 }
func opNOPimm2(c *CPU6510)     { c.getImmediate(); c.Cycles += 2 }
func opNOPzp3(c *CPU6510)      { c.getZeroPage(); c.Cycles += 3 }
func opNOPzpx4(c *CPU6510)     { c.getZeroPageX(); c.Cycles += 4 }
func opNOPabs4(c *CPU6510)     { c.getAbsolute(); c.Cycles += 4 }
func opNOPabsx4(c *CPU6510) {
	_, cross := c.getAbsoluteX()
	c.Cycles += 4
	if cross {
		c.Cycles++
	}
}
