package core

import (
	"context"

	"github.com/go-faster/errors"
)

// CircuitRunner runs circuits on a single device and returns vendor-agnostic results.
// Implementations are not safe for concurrent use.
type CircuitRunner interface {
	RunAndMeasure(ctx context.Context, c *Circuit, nSamples int) (*Measurements, error)
	RunBatchAndMeasure(ctx context.Context, cs []*Circuit, nSamples []int) ([]*Measurements, error)
	GetWavefunction(ctx context.Context, c *Circuit, initialState *Wavefunction) (*Wavefunction, error)
	GetExactExpectationValues(ctx context.Context, c *Circuit, op *Operator, initialState *Wavefunction) (*ExpectationValues, error)
	GetExactNoisyExpectationValues(ctx context.Context, c *Circuit, op *Operator, initialState *Wavefunction) (*ExpectationValues, error)
}

func ValidateShots(nSamples int) error {
	if nSamples < 1 {
		return errors.Errorf("%w: %d, at least one shot is required", ErrInvalidShots, nSamples)
	}
	return nil
}

// ValidateInitialState accepts only nil (meaning |0...0>) or the zero state on nQubits qubits.
func ValidateInitialState(initialState *Wavefunction, nQubits int) error {
	if initialState == nil {
		return nil
	}
	if len(initialState.Amplitudes) != 1<<nQubits {
		return errors.Errorf("%w: %d amplitudes given for %d qubits",
			ErrUnsupportedInitialState, len(initialState.Amplitudes), nQubits)
	}
	if !initialState.IsZeroState() {
		return errors.Wrap(ErrUnsupportedInitialState,
			"AWS Braket simulators can be initialized only in the zero state")
	}
	return nil
}
