package core

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/mohae/deepcopy"
	"github.com/oqtopus-team/oqtopus-braket/common"
	"go.uber.org/zap"
)

// GateOperation is a named gate applied to an ordered list of qubits.
// Only the first element of Params is used by parameterized gates.
type GateOperation struct {
	Name         string    `json:"gate"`
	QubitIndices []int     `json:"qubits"`
	Params       []float64 `json:"params,omitempty"`
}

func NewOperation(name string, qubits ...int) GateOperation {
	return GateOperation{
		Name:         name,
		QubitIndices: qubits,
	}
}

func NewParameterizedOperation(name string, param float64, qubits ...int) GateOperation {
	return GateOperation{
		Name:         name,
		QubitIndices: qubits,
		Params:       []float64{param},
	}
}

func (o GateOperation) String() string {
	qs := make([]string, len(o.QubitIndices))
	for i, q := range o.QubitIndices {
		qs[i] = fmt.Sprint(q)
	}
	if len(o.Params) == 0 {
		return fmt.Sprintf("%s(%s)", o.Name, strings.Join(qs, ","))
	}
	return fmt.Sprintf("%s[%g](%s)", o.Name, o.Params[0], strings.Join(qs, ","))
}

type Circuit struct {
	NQubits    int             `json:"n_qubits"`
	Operations []GateOperation `json:"operations"`
}

func NewCircuit(nQubits int, ops ...GateOperation) *Circuit {
	return &Circuit{
		NQubits:    nQubits,
		Operations: ops,
	}
}

func (c *Circuit) Add(ops ...GateOperation) *Circuit {
	c.Operations = append(c.Operations, ops...)
	return c
}

func (c *Circuit) Clone() *Circuit {
	return deepcopy.Copy(c).(*Circuit)
}

// Validate checks that every operation stays within [0, NQubits).
func (c *Circuit) Validate() error {
	if c == nil {
		return errors.Wrap(ErrInvalidCircuit, "circuit is nil")
	}
	if c.NQubits < 0 {
		return errors.Errorf("%w: negative qubit count %d", ErrInvalidCircuit, c.NQubits)
	}
	for i, op := range c.Operations {
		if len(op.QubitIndices) == 0 {
			return errors.Errorf("%w: operation %d (%s) has no qubits", ErrInvalidCircuit, i, op.Name)
		}
		for _, q := range op.QubitIndices {
			if q < 0 || q >= c.NQubits {
				return errors.Errorf("%w: operation %d (%s) uses qubit %d outside of %d qubits",
					ErrInvalidCircuit, i, op, q, c.NQubits)
			}
		}
	}
	return nil
}

func (c *Circuit) String() string {
	ops := make([]string, len(c.Operations))
	for i, op := range c.Operations {
		ops[i] = op.String()
	}
	return fmt.Sprintf("Circuit(n_qubits=%d, [%s])", c.NQubits, strings.Join(ops, ", "))
}

func UnmarshalCircuit(blob []byte) (*Circuit, error) {
	c := &Circuit{}
	if err := jsonIter.Unmarshal(blob, c); err != nil {
		zap.L().Error(fmt.Sprintf("failed to unmarshal circuit/reason:%s", err))
		return nil, errors.Wrap(err, "unmarshal circuit")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadCircuit(path string) (*Circuit, error) {
	blob, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read circuit file:%s/reason:%s", path, err))
		return nil, err
	}
	return UnmarshalCircuit([]byte(blob))
}
