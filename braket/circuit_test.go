//go:build unit
// +build unit

package braket

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGate(t *testing.T, name string) Gate {
	g, err := NewGate(name)
	require.Nil(t, err)
	return g
}

func mustAngledGate(t *testing.T, name string, angle float64) Gate {
	g, err := NewAngledGate(name, angle)
	require.Nil(t, err)
	return g
}

func xCNotCircuit(t *testing.T) *Circuit {
	c := NewCircuit()
	require.Nil(t, c.Add(NewGateInstruction(mustGate(t, GateX), 0)))
	require.Nil(t, c.Add(NewGateInstruction(mustGate(t, GateCNot), 1, 2)))
	return c
}

func TestNewGate(t *testing.T) {
	g, err := NewGate(GateCNot)
	assert.Nil(t, err)
	assert.Equal(t, 2, g.Qubits)
	assert.False(t, g.IsAngled())

	_, err = NewGate(GateRx)
	assert.True(t, errors.Is(err, ErrUnknownGate))
	_, err = NewGate("ccnot")
	assert.True(t, errors.Is(err, ErrUnknownGate))

	rx, err := NewAngledGate(GateRx, 0.5)
	assert.Nil(t, err)
	assert.Equal(t, "rx(0.5)", rx.String())
	_, err = NewAngledGate(GateH, 0.5)
	assert.True(t, errors.Is(err, ErrUnknownGate))

	ps, err := NewAngledGate("Phase_Shift", 0.25)
	assert.Nil(t, err)
	assert.Equal(t, GatePhaseShift, ps.Name)
	cn, err := NewGate("CNot")
	assert.Nil(t, err)
	assert.Equal(t, GateCNot, cn.Name)

	assert.Equal(t, 20, len(GateNames()))
}

func TestCircuitAdd(t *testing.T) {
	tests := []struct {
		name    string
		inst         Instruction
		wantErr      bool
		wantNoiseErr bool
	}{
		{name: "single qubit gate", inst: NewGateInstruction(mustGate(t, GateH), 0)},
		{name: "two qubit gate", inst: NewGateInstruction(mustGate(t, GateSwap), 3, 1)},
		{name: "noise", inst: NewNoiseInstruction(Noise{Kind: NoiseBitFlip, Probability: 0.1}, 2)},
		{name: "too few targets", inst: NewGateInstruction(mustGate(t, GateCZ), 0), wantErr: true},
		{name: "too many targets", inst: NewGateInstruction(mustGate(t, GateX), 0, 1), wantErr: true},
		{name: "repeated target", inst: NewGateInstruction(mustGate(t, GateCZ), 1, 1), wantErr: true},
		{name: "negative target", inst: NewGateInstruction(mustGate(t, GateX), -1), wantErr: true},
		{name: "empty instruction", inst: Instruction{Targets: []int{0}}, wantErr: true},
		{name: "noise of unknown kind", inst: NewNoiseInstruction(Noise{Kind: "thermal", Probability: 0.1}, 0), wantNoiseErr: true},
		{name: "noise out of range", inst: NewNoiseInstruction(Noise{Kind: NoiseBitFlip, Probability: 0.9}, 0), wantNoiseErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCircuit().Add(tt.inst)
			switch {
			case tt.wantErr:
				assert.True(t, errors.Is(err, ErrInvalidInstruction))
			case tt.wantNoiseErr:
				assert.True(t, errors.Is(err, ErrInvalidNoise))
			default:
				assert.Nil(t, err)
			}
		})
	}
}

func TestQubitCount(t *testing.T) {
	assert.Equal(t, 0, NewCircuit().QubitCount())
	assert.Equal(t, 3, xCNotCircuit(t).QubitCount())
}

func TestApplyGateNoise(t *testing.T) {
	c := xCNotCircuit(t)
	noisy, err := c.ApplyGateNoise(Noise{Kind: NoiseDepolarizing, Probability: 0.1})
	require.Nil(t, err)

	assert.False(t, c.HasNoise())
	assert.Equal(t, 2, len(c.Instructions()))

	assert.True(t, noisy.HasNoise())
	got := []string{}
	for _, inst := range noisy.Instructions() {
		got = append(got, inst.String())
	}
	assert.Equal(t, []string{
		"x[0]",
		"depolarizing(0.1)[0]",
		"cnot[1,2]",
		"depolarizing(0.1)[1]",
		"depolarizing(0.1)[2]",
	}, got)
}

func TestApplyGateNoiseRejectsInvalidNoise(t *testing.T) {
	c := xCNotCircuit(t)
	for _, n := range []Noise{
		{Kind: "thermal", Probability: 0.1},
		{Kind: NoiseDepolarizing, Probability: 0.8},
		{Kind: NoiseAmplitudeDamping, Probability: -0.1},
	} {
		_, err := c.ApplyGateNoise(n)
		assert.True(t, errors.Is(err, ErrInvalidNoise), n.String())
	}
	assert.False(t, c.HasNoise())
}

func TestAddResultType(t *testing.T) {
	c := xCNotCircuit(t)
	sv := c.AddResultType(ResultStateVector).AddResultType(ResultStateVector)
	assert.Equal(t, []ResultType(nil), c.ResultTypes())
	assert.Equal(t, []ResultType{ResultStateVector}, sv.ResultTypes())
}

func TestToOpenQASM(t *testing.T) {
	tests := []struct {
		name    string
		circuit func(t *testing.T) *Circuit
		want    string
	}{
		{
			name:    "measured",
			circuit: xCNotCircuit,
			want: heredoc.Doc(`
				OPENQASM 3.0;
				bit[3] b;
				qubit[3] q;
				x q[0];
				cnot q[1], q[2];
				b[0] = measure q[0];
				b[1] = measure q[1];
				b[2] = measure q[2];
			`),
		},
		{
			name: "noisy density matrix",
			circuit: func(t *testing.T) *Circuit {
				noisy, err := xCNotCircuit(t).ApplyGateNoise(Noise{Kind: NoiseBitFlip, Probability: 0.25})
				require.Nil(t, err)
				return noisy.AddResultType(ResultDensityMatrix)
			},
			want: heredoc.Doc(`
				OPENQASM 3.0;
				qubit[3] q;
				x q[0];
				#pragma braket noise bit_flip(0.25) q[0]
				cnot q[1], q[2];
				#pragma braket noise bit_flip(0.25) q[1]
				#pragma braket noise bit_flip(0.25) q[2]
				#pragma braket result density_matrix
			`),
		},
		{
			name: "angled gates and state vector",
			circuit: func(t *testing.T) *Circuit {
				c := NewCircuit()
				require.Nil(t, c.Add(NewGateInstruction(mustAngledGate(t, GateRx, 1.5), 0)))
				require.Nil(t, c.Add(NewGateInstruction(mustAngledGate(t, GateCPhaseShift, -0.125), 0, 1)))
				return c.AddResultType(ResultStateVector)
			},
			want: heredoc.Doc(`
				OPENQASM 3.0;
				qubit[2] q;
				rx(1.5) q[0];
				cphaseshift(-0.125) q[0], q[1];
				#pragma braket result state_vector
			`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.circuit(t)
			assert.Equal(t, tt.want, c.ToOpenQASM())
			assert.Equal(t, c.ToOpenQASM(), c.Copy().ToOpenQASM())
		})
	}
}

func TestActionDocument(t *testing.T) {
	c := xCNotCircuit(t).AddResultType(ResultStateVector)
	doc := ActionDocument(c)

	got := struct {
		Header struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"braketSchemaHeader"`
		Source string                 `json:"source"`
		Inputs map[string]interface{} `json:"inputs"`
	}{}
	require.Nil(t, jsonIter.Unmarshal([]byte(doc), &got))
	assert.Equal(t, OPENQASM_PROGRAM_HEADER, got.Header.Name)
	assert.Equal(t, OPENQASM_PROGRAM_VERSION, got.Header.Version)
	assert.Equal(t, c.ToOpenQASM(), got.Source)
	assert.Equal(t, map[string]interface{}{}, got.Inputs)
}
