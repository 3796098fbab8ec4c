//go:build unit
// +build unit

package conversion

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportToBraket(t *testing.T) {
	c := core.NewCircuit(3, core.NewOperation("X", 0), core.NewOperation("CNOT", 1, 2))
	bc, err := ExportToBraket(c)
	require.Nil(t, err)

	want := heredoc.Doc(`
		OPENQASM 3.0;
		bit[3] b;
		qubit[3] q;
		x q[0];
		cnot q[1], q[2];
		i q[0];
		i q[1];
		i q[2];
		b[0] = measure q[0];
		b[1] = measure q[1];
		b[2] = measure q[2];
	`)
	assert.Equal(t, want, bc.ToOpenQASM())
	assert.Equal(t, 5, len(bc.Instructions()))
	assert.Equal(t, 2, len(c.Operations))
}

func TestExportIsDeterministic(t *testing.T) {
	c := core.NewCircuit(4,
		core.NewOperation("H", 0),
		core.NewParameterizedOperation("XX", 0.5, 0, 3),
		core.NewParameterizedOperation("CPHASE", -1.5, 2, 1),
		core.NewOperation("ISWAP", 1, 3),
	)
	first, err := ExportToBraket(c)
	require.Nil(t, err)
	for i := 0; i < 10; i++ {
		again, err := ExportToBraket(c)
		require.Nil(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, first.ToOpenQASM(), again.ToOpenQASM())
	}
}

func TestExportIdleQubitsAreKept(t *testing.T) {
	bc, err := ExportToBraket(core.NewCircuit(5, core.NewOperation("H", 0)))
	require.Nil(t, err)
	assert.Equal(t, 5, bc.QubitCount())
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name    string
		circuit *core.Circuit
		wantErr error
	}{
		{name: "unsupported gate", circuit: core.NewCircuit(3, core.NewOperation("CCNOT", 0, 1, 2)), wantErr: core.ErrUnsupportedGate},
		{name: "qubit out of range", circuit: core.NewCircuit(1, core.NewOperation("CNOT", 0, 1)), wantErr: core.ErrInvalidCircuit},
		{name: "repeated qubit", circuit: core.NewCircuit(2, core.NewOperation("CNOT", 1, 1)), wantErr: core.ErrInvalidCircuit},
		{name: "missing parameter", circuit: core.NewCircuit(1, core.NewOperation("RY", 0)), wantErr: core.ErrMissingParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExportToBraket(tt.circuit)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
