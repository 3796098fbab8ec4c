//go:build unit
// +build unit

package core

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
)

func TestMeasurementsCounts(t *testing.T) {
	m := NewMeasurements([][]int{{0, 0}, {1, 1}, {1, 1}, {0, 1}})
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, Counts{"00": 1, "11": 2, "01": 1}, m.Counts())
	assert.Equal(t, []string{"00", "01", "11"}, m.Counts().Bitstrings())
}

func TestMeasurementsAreNotAliased(t *testing.T) {
	src := [][]int{{0, 1}}
	m := NewMeasurements(src)
	src[0][0] = 1
	assert.Equal(t, []int{0, 1}, m.At(0))

	got := m.Bitstrings()
	got[0][1] = 0
	assert.Equal(t, []int{0, 1}, m.At(0))
}

func TestMeasurementsToString(t *testing.T) {
	m := NewMeasurements([][]int{{1, 0}, {1, 0}})
	want := heredoc.Doc(`
		{
		  "shots": 2,
		  "counts": {
		    "10": 2
		  }
		}
	`)
	assert.Equal(t, want, m.ToString())
}

func TestMeasurementsMarshalJSON(t *testing.T) {
	m := NewMeasurements([][]int{{1, 0}, {0, 1}})
	blob, err := m.MarshalJSON()
	assert.Nil(t, err)
	assert.Equal(t, "[[1,0],[0,1]]", string(blob))
}

func TestCountsString(t *testing.T) {
	assert.Equal(t, `{"01":3}`, Counts{"01": 3}.String())
}

func TestNewWavefunction(t *testing.T) {
	tests := []struct {
		name    string
		in      []complex128
		wantN   int
		wantErr error
	}{
		{name: "one qubit", in: []complex128{1, 0}, wantN: 1},
		{name: "two qubits", in: []complex128{0, 0, 0, 1}, wantN: 2},
		{name: "empty", in: []complex128{}, wantErr: ErrInvalidResult},
		{name: "not a power of two", in: []complex128{1, 0, 0}, wantErr: ErrInvalidResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWavefunction(tt.in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.wantN, w.NQubits())
		})
	}
}

func TestZeroState(t *testing.T) {
	w := ZeroState(3)
	assert.Equal(t, 8, len(w.Amplitudes))
	assert.Equal(t, 3, w.NQubits())
	assert.True(t, w.IsZeroState())
	assert.Equal(t, 1.0, w.Probabilities()[0])

	one, _ := NewWavefunction([]complex128{0, 1})
	assert.False(t, one.IsZeroState())
}

func TestExpectationValues(t *testing.T) {
	e := NewExpectationValues([]float64{1, -0.5, 0.25})
	assert.InDelta(t, 0.75, e.Total(), 1e-12)
	want := heredoc.Doc(`
		{
		  "values": [1, -0.5, 0.25],
		  "total": 0.75
		}
	`)
	assert.Equal(t, want, e.ToString())
}
