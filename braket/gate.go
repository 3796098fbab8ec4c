package braket

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/common"
)

// Gate names as they appear in OpenQASM programs accepted by Braket.
const (
	GateI           = "i"
	GateX           = "x"
	GateY           = "y"
	GateZ           = "z"
	GateH           = "h"
	GateS           = "s"
	GateT           = "t"
	GateCZ          = "cz"
	GateCNot        = "cnot"
	GateISwap       = "iswap"
	GateSwap        = "swap"
	GateXX          = "xx"
	GateXY          = "xy"
	GateYY          = "yy"
	GateZZ          = "zz"
	GatePhaseShift  = "phaseshift"
	GateRx          = "rx"
	GateRy          = "ry"
	GateRz          = "rz"
	GateCPhaseShift = "cphaseshift"
)

type gateSpec struct {
	qubits int
	angled bool
}

var gateSpecs = map[string]gateSpec{
	GateI:           {qubits: 1},
	GateX:           {qubits: 1},
	GateY:           {qubits: 1},
	GateZ:           {qubits: 1},
	GateH:           {qubits: 1},
	GateS:           {qubits: 1},
	GateT:           {qubits: 1},
	GateCZ:          {qubits: 2},
	GateCNot:        {qubits: 2},
	GateISwap:       {qubits: 2},
	GateSwap:        {qubits: 2},
	GateXX:          {qubits: 2, angled: true},
	GateXY:          {qubits: 2, angled: true},
	GateYY:          {qubits: 2, angled: true},
	GateZZ:          {qubits: 2, angled: true},
	GatePhaseShift:  {qubits: 1, angled: true},
	GateRx:          {qubits: 1, angled: true},
	GateRy:          {qubits: 1, angled: true},
	GateRz:          {qubits: 1, angled: true},
	GateCPhaseShift: {qubits: 2, angled: true},
}

var ErrUnknownGate = errors.New("unknown braket gate")

// Gate is a Braket-native gate. Angle is set only for angled gates.
type Gate struct {
	Name   string
	Angle  *float64
	Qubits int
}

// NewGate accepts the SDK spelling of a name as well, e.g. "CNot" or "PhaseShift".
func NewGate(name string) (Gate, error) {
	name = common.NormalizeName(name)
	gs, ok := gateSpecs[name]
	if !ok {
		return Gate{}, errors.Wrapf(ErrUnknownGate, "%q", name)
	}
	if gs.angled {
		return Gate{}, errors.Errorf("%w: %q requires an angle", ErrUnknownGate, name)
	}
	return Gate{Name: name, Qubits: gs.qubits}, nil
}

func NewAngledGate(name string, angle float64) (Gate, error) {
	name = common.NormalizeName(name)
	gs, ok := gateSpecs[name]
	if !ok {
		return Gate{}, errors.Wrapf(ErrUnknownGate, "%q", name)
	}
	if !gs.angled {
		return Gate{}, errors.Errorf("%w: %q takes no angle", ErrUnknownGate, name)
	}
	return Gate{Name: name, Angle: &angle, Qubits: gs.qubits}, nil
}

func (g Gate) IsAngled() bool {
	return g.Angle != nil
}

func (g Gate) String() string {
	if g.Angle == nil {
		return g.Name
	}
	return fmt.Sprintf("%s(%s)", g.Name, formatFloat(*g.Angle))
}

// GateNames returns the names of all gates this package can express, sorted.
func GateNames() []string {
	names := make([]string, 0, len(gateSpecs))
	for n := range gateSpecs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
