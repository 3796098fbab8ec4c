package conversion

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
)

// MeasurementsFromResult maps every measured row to one bit tuple, keeping the order.
func MeasurementsFromResult(r *braket.TaskResult) (*core.Measurements, error) {
	if r == nil {
		return nil, errors.Wrap(core.ErrInvalidResult, "no task result")
	}
	width := -1
	for i, row := range r.Measurements {
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Errorf("%w: shot %d has %d bits, expected %d", core.ErrInvalidResult, i, len(row), width)
		}
		for _, b := range row {
			if b != 0 && b != 1 {
				return nil, errors.Errorf("%w: shot %d has bit value %d", core.ErrInvalidResult, i, b)
			}
		}
	}
	return core.NewMeasurements(r.Measurements), nil
}

func WavefunctionFromResult(r *braket.TaskResult) (*core.Wavefunction, error) {
	if r == nil || r.StateVector == nil {
		return nil, errors.Wrap(core.ErrInvalidResult, "no statevector in the task result")
	}
	return core.NewWavefunction(r.StateVector)
}

func DensityMatrixFromResult(r *braket.TaskResult) ([][]complex128, error) {
	if r == nil || r.DensityMatrix == nil {
		return nil, errors.Wrap(core.ErrInvalidResult, "no density matrix in the task result")
	}
	n := len(r.DensityMatrix)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.Errorf("%w: density matrix of dimension %d", core.ErrInvalidResult, n)
	}
	rho := make([][]complex128, n)
	for i, row := range r.DensityMatrix {
		if len(row) != n {
			return nil, errors.Errorf("%w: density matrix row %d has %d entries, expected %d",
				core.ErrInvalidResult, i, len(row), n)
		}
		rho[i] = append([]complex128(nil), row...)
	}
	return rho, nil
}
