// Package vm implements the single-cycle MIPS datapath: register file,
// data memory, ALU, control unit, and the Simulator that drives one fetch
// -decode-execute-memory-writeback cycle per Step call.
package vm

import (
	"fmt"

	"github.com/suarvid-edu/mips-simulator/encoder"
)

// RunResult is the outcome of one Step call.
type RunResult int

const (
	// Success means the cycle completed and the program should continue.
	Success RunResult = iota
	// Completed means the program halted normally (via exit, or because
	// fetch ran past the last assembled instruction).
	Completed
	// Failure means the cycle could not complete; Simulator.Err holds why.
	Failure
)

func (r RunResult) String() string {
	switch r {
	case Success:
		return "Success"
	case Completed:
		return "Completed"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Simulator is the single-cycle MIPS datapath. It owns the register file,
// data memory, PC, ALU, control, and multiplexors; the instruction list is
// held immutably for the simulator's lifetime.
type Simulator struct {
	instructions []*encoder.Instruction
	pc           uint32
	cycles       int

	Registers *RegisterFile
	Memory    *DataMemory
	alu       *ALU

	writeRegMux  Mux
	aluInputMux  Mux
	shiftFstMux  Mux
	shiftSndMux  Mux
	memToRegMux  Mux
	branchMux    Mux
	jumpMux      Mux
	jrMux        Mux

	lastErr error
}

// NewSimulator loads instructions into a freshly reset simulator.
func NewSimulator(instructions []*encoder.Instruction) *Simulator {
	return &Simulator{
		instructions: instructions,
		Registers:    NewRegisterFile(),
		Memory:       NewDataMemory(),
		alu:          NewALU(),
	}
}

// PC returns the current program counter.
func (s *Simulator) PC() uint32 { return s.pc }

// Cycles returns the number of Step calls completed since the last Reset.
func (s *Simulator) Cycles() int { return s.cycles }

// Err returns the error from the most recent Failure result, if any.
func (s *Simulator) Err() error { return s.lastErr }

// Reset restores PC to 0 and zeroes the register file and data memory. The
// instruction list is not affected.
func (s *Simulator) Reset() {
	s.pc = 0
	s.cycles = 0
	s.Registers.Reset()
	s.Memory.Reset()
	s.lastErr = nil
}

// Step performs exactly one fetch-decode-execute-memory-writeback-next-PC
// cycle.
func (s *Simulator) Step() RunResult {
	s.cycles++

	// 1. Fetch
	index := s.pc / 4
	if int(index) >= len(s.instructions) {
		s.pc += 4
		if int(index) == len(s.instructions) {
			return Completed
		}
		s.lastErr = fmt.Errorf("fetch past end of program at pc=%d (have %d instructions)", index*4, len(s.instructions))
		return Failure
	}
	instr := s.instructions[index]
	pcAfterFetch := s.pc + 4

	// 2. Decode
	signals, err := DecodeControl(instr.Op, instr.Funct)
	if err != nil {
		s.lastErr = err
		return Failure
	}

	s.writeRegMux.Select(signals.RegDest)
	s.aluInputMux.Select(signals.AluSrc)
	s.shiftFstMux.Select(signals.Shift)
	s.shiftSndMux.Select(signals.Shift)
	s.memToRegMux.Select(signals.MemToReg)
	s.jumpMux.Select(signals.Jump)
	s.jrMux.Select(signals.JumpReg)

	// 3. Register reads and field extraction
	rsVal, rtVal := s.Registers.ReadPair(instr.RS, instr.RT)
	imm := int32(instr.Imm)
	shamt := int32(instr.Shamt)
	jumpTargetBytes := shiftLeft2(instr.Target >> 2)

	aluOp, err := DecodeALUOp(signals.AluOp0, signals.AluOp1, instr.Funct)
	if err != nil {
		s.lastErr = err
		return Failure
	}

	// 4. ALU inputs
	fstOperand := s.shiftFstMux.Choose(rtVal, rsVal)
	sndOperand := s.aluInputMux.Choose(imm, rtVal)
	sndOperand = s.shiftSndMux.Choose(shamt, sndOperand)

	// 5. Execute
	aluOut, err := s.alu.Execute(fstOperand, sndOperand, aluOp)
	if err != nil {
		s.lastErr = err
		return Failure
	}

	// 6. Memory
	if err := s.Memory.WriteWord(uint32(aluOut), rtVal, signals.MemWrite); err != nil {
		s.lastErr = fmt.Errorf("memory write failed: %w", err)
		return Failure
	}
	memData, _ := s.Memory.ReadWord(uint32(aluOut), signals.MemRead)

	// 7. Write-back
	writeData := s.memToRegMux.Choose(memData, aluOut)
	destReg := uint8(s.writeRegMux.Choose(int32(instr.RD), int32(instr.RT)))
	s.Registers.Write(destReg, writeData, signals.RegWrite)

	// 8. Next PC
	branchTarget := addPC(pcAfterFetch, shiftLeft2(uint32(imm)))
	s.branchMux.Select(signals.Branch && s.alu.Zero())
	afterBranch := s.branchMux.Choose(int32(branchTarget), int32(pcAfterFetch))
	afterJump := s.jumpMux.Choose(int32(jumpTargetBytes), afterBranch)
	final := s.jrMux.Choose(rsVal, afterJump)
	s.pc = uint32(final)

	if signals.Exit {
		return Completed
	}
	return Success
}
