package vm

import "fmt"

// ALU performs the operation selected by an ALU control signal and latches
// whether the result was zero, for the branch comparison path.
type ALU struct {
	zero bool
}

// NewALU returns an ALU with its zero flag cleared.
func NewALU() *ALU {
	return &ALU{}
}

// Execute applies the operation selected by signal to the two operands and
// records whether the result is zero.
func (a *ALU) Execute(op1, op2 int32, signal uint8) (int32, error) {
	result, err := aluOperation(op1, op2, signal)
	if err != nil {
		return 0, err
	}
	a.zero = result == 0
	return result, nil
}

// Zero reports whether the most recent Execute produced a zero result.
func (a *ALU) Zero() bool {
	return a.zero
}

func aluOperation(x, y int32, signal uint8) (int32, error) {
	switch signal {
	case aluAnd:
		return x & y, nil
	case aluOr:
		return x | y, nil
	case aluAdd:
		return x + y, nil
	case aluSub:
		return x - y, nil
	case aluSlt:
		if x < y {
			return 1, nil
		}
		return 0, nil
	case aluNor:
		return ^(x | y), nil
	case aluSra:
		return x >> uint32(y), nil
	case aluSrl:
		return int32(uint32(x) >> uint32(y)), nil
	default:
		return 0, fmt.Errorf("invalid ALU control signal %d", signal)
	}
}
