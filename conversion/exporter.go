package conversion

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

// ExportToBraket converts c into a Braket circuit. An identity is appended on
// every qubit so that the Braket circuit spans all c.NQubits qubits even when
// some of them are idle. c is not modified.
func ExportToBraket(c *core.Circuit) (*braket.Circuit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	padded := c.Clone()
	for q := 0; q < padded.NQubits; q++ {
		padded.Add(core.NewOperation("I", q))
	}
	bc := braket.NewCircuit()
	for i, op := range padded.Operations {
		inst, err := TranslateOperation(op)
		if err != nil {
			return nil, err
		}
		if err := bc.Add(inst); err != nil {
			zap.L().Error(fmt.Sprintf("failed to add operation %d (%s)/reason:%s", i, op, err))
			return nil, errors.Errorf("%w: %s", core.ErrInvalidCircuit, err)
		}
	}
	zap.L().Debug(fmt.Sprintf("exported %s", bc))
	return bc, nil
}
