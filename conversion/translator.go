package conversion

import (
	"fmt"
	"sort"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

// Gate names of core.GateOperation mapped to Braket gate names.
var nonParameterizedGates = map[string]string{
	"I":     braket.GateI,
	"X":     braket.GateX,
	"Y":     braket.GateY,
	"Z":     braket.GateZ,
	"H":     braket.GateH,
	"S":     braket.GateS,
	"T":     braket.GateT,
	"CZ":    braket.GateCZ,
	"CNOT":  braket.GateCNot,
	"ISWAP": braket.GateISwap,
	"SWAP":  braket.GateSwap,
}

var parameterizedGates = map[string]string{
	"XX":     braket.GateXX,
	"XY":     braket.GateXY,
	"YY":     braket.GateYY,
	"ZZ":     braket.GateZZ,
	"PHASE":  braket.GatePhaseShift,
	"RX":     braket.GateRx,
	"RY":     braket.GateRy,
	"RZ":     braket.GateRz,
	"CPHASE": braket.GateCPhaseShift,
}

func IsSupportedGate(name string) bool {
	if _, ok := nonParameterizedGates[name]; ok {
		return true
	}
	_, ok := parameterizedGates[name]
	return ok
}

func SupportedGates() []string {
	names := make([]string, 0, len(nonParameterizedGates)+len(parameterizedGates))
	for n := range nonParameterizedGates {
		names = append(names, n)
	}
	for n := range parameterizedGates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TranslateOperation maps op onto a Braket instruction with the same qubit indices.
// Parameterized gates use only the first parameter.
func TranslateOperation(op core.GateOperation) (braket.Instruction, error) {
	var (
		g   braket.Gate
		err error
	)
	if name, ok := nonParameterizedGates[op.Name]; ok {
		g, err = braket.NewGate(name)
	} else if name, ok := parameterizedGates[op.Name]; ok {
		if len(op.Params) == 0 {
			return braket.Instruction{}, errors.Errorf("%w: %s needs an angle", core.ErrMissingParameter, op.Name)
		}
		g, err = braket.NewAngledGate(name, op.Params[0])
	} else {
		zap.L().Error(fmt.Sprintf("gate %s is not supported in Braket circuits", op.Name))
		return braket.Instruction{}, errors.Errorf("%w: gate %s is not supported in Braket circuits",
			core.ErrUnsupportedGate, op.Name)
	}
	if err != nil {
		return braket.Instruction{}, errors.Wrapf(err, "translate %s", op)
	}
	if len(op.QubitIndices) != g.Qubits {
		return braket.Instruction{}, errors.Errorf("%w: %s acts on %d qubits but %d were given",
			core.ErrInvalidCircuit, op.Name, g.Qubits, len(op.QubitIndices))
	}
	return braket.NewGateInstruction(g, op.QubitIndices...), nil
}
