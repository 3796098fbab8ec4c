package braket

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

type ResultType string

const (
	ResultStateVector   ResultType = "statevector"
	ResultDensityMatrix ResultType = "densitymatrix"
)

var ErrInvalidInstruction = errors.New("invalid instruction")

// Instruction applies either a gate or a noise channel to its targets.
type Instruction struct {
	Gate    *Gate
	Noise   *Noise
	Targets []int
}

func NewGateInstruction(g Gate, targets ...int) Instruction {
	return Instruction{Gate: &g, Targets: targets}
}

func NewNoiseInstruction(n Noise, target int) Instruction {
	return Instruction{Noise: &n, Targets: []int{target}}
}

func (i Instruction) IsNoise() bool {
	return i.Noise != nil
}

func (i Instruction) String() string {
	ts := make([]string, len(i.Targets))
	for k, t := range i.Targets {
		ts[k] = fmt.Sprint(t)
	}
	if i.Noise != nil {
		return fmt.Sprintf("%s[%s]", i.Noise, strings.Join(ts, ","))
	}
	return fmt.Sprintf("%s[%s]", i.Gate, strings.Join(ts, ","))
}

func (i Instruction) validate() error {
	if (i.Gate == nil) == (i.Noise == nil) {
		return errors.Wrap(ErrInvalidInstruction, "exactly one of gate and noise must be set")
	}
	if i.Noise != nil {
		if err := i.Noise.Validate(); err != nil {
			return err
		}
	}
	want := 1
	if i.Gate != nil {
		want = i.Gate.Qubits
	}
	if len(i.Targets) != want {
		return errors.Errorf("%w: %s needs %d targets, got %d", ErrInvalidInstruction, i, want, len(i.Targets))
	}
	seen := make(map[int]struct{}, len(i.Targets))
	for _, t := range i.Targets {
		if t < 0 {
			return errors.Errorf("%w: negative target in %s", ErrInvalidInstruction, i)
		}
		if _, ok := seen[t]; ok {
			return errors.Errorf("%w: repeated target in %s", ErrInvalidInstruction, i)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// Circuit is a Braket-native circuit: an ordered list of instructions plus
// the result types requested from a zero-shot run.
type Circuit struct {
	instructions []Instruction
	resultTypes  []ResultType
}

func NewCircuit() *Circuit {
	return &Circuit{}
}

func (c *Circuit) Add(inst Instruction) error {
	if err := inst.validate(); err != nil {
		return err
	}
	inst.Targets = append([]int(nil), inst.Targets...)
	c.instructions = append(c.instructions, inst)
	return nil
}

func (c *Circuit) Instructions() []Instruction {
	return append([]Instruction(nil), c.instructions...)
}

func (c *Circuit) ResultTypes() []ResultType {
	return append([]ResultType(nil), c.resultTypes...)
}

func (c *Circuit) HasNoise() bool {
	for _, inst := range c.instructions {
		if inst.IsNoise() {
			return true
		}
	}
	return false
}

// QubitCount is one past the highest target used by any instruction.
func (c *Circuit) QubitCount() int {
	n := 0
	for _, inst := range c.instructions {
		for _, t := range inst.Targets {
			if t+1 > n {
				n = t + 1
			}
		}
	}
	return n
}

func (c *Circuit) Copy() *Circuit {
	cp := &Circuit{
		instructions: make([]Instruction, len(c.instructions)),
		resultTypes:  c.ResultTypes(),
	}
	for i, inst := range c.instructions {
		inst.Targets = append([]int(nil), inst.Targets...)
		cp.instructions[i] = inst
	}
	return cp
}

// AddResultType returns a copy of c that also requests rt. Duplicates are ignored.
func (c *Circuit) AddResultType(rt ResultType) *Circuit {
	cp := c.Copy()
	for _, r := range cp.resultTypes {
		if r == rt {
			return cp
		}
	}
	cp.resultTypes = append(cp.resultTypes, rt)
	return cp
}

// ApplyGateNoise returns a copy of c with n inserted on every target after each gate.
func (c *Circuit) ApplyGateNoise(n Noise) (*Circuit, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	cp := &Circuit{resultTypes: c.ResultTypes()}
	for _, inst := range c.instructions {
		inst.Targets = append([]int(nil), inst.Targets...)
		cp.instructions = append(cp.instructions, inst)
		if inst.IsNoise() {
			continue
		}
		for _, t := range inst.Targets {
			cp.instructions = append(cp.instructions, NewNoiseInstruction(n, t))
		}
	}
	return cp, nil
}

func (c *Circuit) String() string {
	is := make([]string, len(c.instructions))
	for i, inst := range c.instructions {
		is[i] = inst.String()
	}
	return fmt.Sprintf("Circuit(qubits=%d, [%s])", c.QubitCount(), strings.Join(is, ", "))
}
