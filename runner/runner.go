package runner

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/conversion"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

const (
	KIND_RUN            = "run"
	KIND_BATCH          = "batch"
	KIND_WAVEFUNCTION   = "wavefunction"
	KIND_DENSITY_MATRIX = "density_matrix"
)

// BraketRunner runs core circuits on one Braket device. The device and the
// noise model are fixed at construction. It is not safe for concurrent use.
type BraketRunner struct {
	device braket.Device
	noise  *braket.Noise
}

var _ core.CircuitRunner = (*BraketRunner)(nil)

func newBraketRunner(device braket.Device, noise *braket.Noise) *BraketRunner {
	r := &BraketRunner{device: device}
	if noise != nil {
		n := *noise
		r.noise = &n
	}
	return r
}

func (r *BraketRunner) Device() braket.Device {
	return r.device
}

// NoiseModel returns a copy of the noise model, nil when the runner is noiseless.
func (r *BraketRunner) NoiseModel() *braket.Noise {
	if r.noise == nil {
		return nil
	}
	n := *r.noise
	return &n
}

func (r *BraketRunner) export(c *core.Circuit, withNoise bool) (*braket.Circuit, error) {
	bc, err := conversion.ExportToBraket(c)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to export circuit/reason:%s", err))
		return nil, err
	}
	if withNoise && r.noise != nil {
		bc, err = bc.ApplyGateNoise(*r.noise)
		if err != nil {
			zap.L().Error(fmt.Sprintf("failed to apply noise %s/reason:%s", r.noise, err))
			return nil, err
		}
	}
	return bc, nil
}

func (r *BraketRunner) RunAndMeasure(ctx context.Context, c *core.Circuit, nSamples int) (*core.Measurements, error) {
	if err := core.ValidateShots(nSamples); err != nil {
		return nil, err
	}
	bc, err := r.export(c, true)
	if err != nil {
		return nil, err
	}
	res, err := dispatch(ctx, r.device, KIND_RUN, c.NQubits, nSamples,
		func(ctx context.Context) (*braket.TaskResult, error) {
			return r.device.Run(ctx, bc, nSamples)
		})
	if err != nil {
		return nil, err
	}
	return measurementsOf(res, c.NQubits)
}

// RunBatchAndMeasure validates every circuit and shot count before anything is dispatched.
// Devices implementing braket.BatchDevice get a single batch submission.
func (r *BraketRunner) RunBatchAndMeasure(ctx context.Context, cs []*core.Circuit, nSamples []int) ([]*core.Measurements, error) {
	if len(cs) != len(nSamples) {
		return nil, errors.Errorf("%w: %d circuits but %d sample counts", core.ErrInvalidShots, len(cs), len(nSamples))
	}
	bcs := make([]*braket.Circuit, len(cs))
	for i, c := range cs {
		if err := core.ValidateShots(nSamples[i]); err != nil {
			return nil, errors.Wrapf(err, "circuit %d", i)
		}
		bc, err := r.export(c, true)
		if err != nil {
			return nil, errors.Wrapf(err, "circuit %d", i)
		}
		bcs[i] = bc
	}

	bd, ok := r.device.(braket.BatchDevice)
	if !ok {
		zap.L().Debug(fmt.Sprintf("%s has no batch support, running %d circuits one by one", r.device.Name(), len(cs)))
		ms := make([]*core.Measurements, len(cs))
		for i, c := range cs {
			m, err := r.RunAndMeasure(ctx, c, nSamples[i])
			if err != nil {
				return nil, errors.Wrapf(err, "circuit %d", i)
			}
			ms[i] = m
		}
		return ms, nil
	}

	total := 0
	for _, n := range nSamples {
		total += n
	}
	var results []*braket.TaskResult
	_, err := dispatch(ctx, r.device, KIND_BATCH, maxQubits(cs), total,
		func(ctx context.Context) (*braket.TaskResult, error) {
			var err error
			results, err = bd.RunBatch(ctx, bcs, nSamples)
			return nil, err
		})
	if err != nil {
		return nil, err
	}
	if len(results) != len(cs) {
		return nil, errors.Errorf("%w: %d results for %d circuits", core.ErrInvalidResult, len(results), len(cs))
	}
	ms := make([]*core.Measurements, len(cs))
	for i, res := range results {
		m, err := measurementsOf(res, cs[i].NQubits)
		if err != nil {
			return nil, errors.Wrapf(err, "circuit %d", i)
		}
		ms[i] = m
	}
	return ms, nil
}

// GetWavefunction runs c without noise and returns the final state vector.
// Only the zero state is accepted as the initial state.
func (r *BraketRunner) GetWavefunction(ctx context.Context, c *core.Circuit, initialState *core.Wavefunction) (*core.Wavefunction, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateInitialState(initialState, c.NQubits); err != nil {
		return nil, err
	}
	if !r.device.SupportsResultType(braket.ResultStateVector) {
		return nil, errors.Wrapf(core.ErrStatevectorUnsupported, "device %s", r.device.Name())
	}
	bc, err := r.export(c, false)
	if err != nil {
		return nil, err
	}
	bc = bc.AddResultType(braket.ResultStateVector)
	res, err := dispatch(ctx, r.device, KIND_WAVEFUNCTION, c.NQubits, 0,
		func(ctx context.Context) (*braket.TaskResult, error) {
			return r.device.Run(ctx, bc, 0)
		})
	if err != nil {
		return nil, err
	}
	return conversion.WavefunctionFromResult(res)
}

func (r *BraketRunner) GetExactExpectationValues(ctx context.Context, c *core.Circuit, op *core.Operator, initialState *core.Wavefunction) (*core.ExpectationValues, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := op.Validate(c.NQubits); err != nil {
		return nil, err
	}
	w, err := r.GetWavefunction(ctx, c, initialState)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(op.Terms))
	for i, term := range op.Terms {
		values[i] = term.ExpectationInState(w)
	}
	return core.NewExpectationValues(values), nil
}

// GetExactNoisyExpectationValues evaluates op on the density matrix of c with the
// runner's noise applied after every gate. The density matrix is computed once
// and shared by all terms.
func (r *BraketRunner) GetExactNoisyExpectationValues(ctx context.Context, c *core.Circuit, op *core.Operator, initialState *core.Wavefunction) (*core.ExpectationValues, error) {
	if r.noise == nil {
		return nil, errors.Wrap(core.ErrNoiseModelRequired,
			"noisy expectation values need a runner created with a noise model")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateInitialState(initialState, c.NQubits); err != nil {
		return nil, err
	}
	if err := op.Validate(c.NQubits); err != nil {
		return nil, err
	}

	values := make([]float64, len(op.Terms))
	var rho [][]complex128
	for i, term := range op.Terms {
		if term.IsIdentity() {
			values[i] = term.Coefficient
			continue
		}
		if rho == nil {
			var err error
			if rho, err = r.densityMatrix(ctx, c); err != nil {
				return nil, err
			}
		}
		values[i] = term.ExpectationInDensityMatrix(rho)
	}
	return core.NewExpectationValues(values), nil
}

func (r *BraketRunner) densityMatrix(ctx context.Context, c *core.Circuit) ([][]complex128, error) {
	if !r.device.SupportsResultType(braket.ResultDensityMatrix) {
		return nil, errors.Wrapf(core.ErrDensityMatrixUnsupported, "device %s", r.device.Name())
	}
	bc, err := r.export(c, true)
	if err != nil {
		return nil, err
	}
	bc = bc.AddResultType(braket.ResultDensityMatrix)
	res, err := dispatch(ctx, r.device, KIND_DENSITY_MATRIX, c.NQubits, 0,
		func(ctx context.Context) (*braket.TaskResult, error) {
			return r.device.Run(ctx, bc, 0)
		})
	if err != nil {
		return nil, err
	}
	rho, err := conversion.DensityMatrixFromResult(res)
	if err != nil {
		return nil, err
	}
	if len(rho) != 1<<c.NQubits {
		return nil, errors.Errorf("%w: density matrix of dimension %d for %d qubits",
			core.ErrInvalidResult, len(rho), c.NQubits)
	}
	return rho, nil
}

func measurementsOf(res *braket.TaskResult, nQubits int) (*core.Measurements, error) {
	m, err := conversion.MeasurementsFromResult(res)
	if err != nil {
		return nil, err
	}
	if m.Len() > 0 && len(m.At(0)) != nQubits {
		return nil, errors.Errorf("%w: %d bits per shot for %d qubits", core.ErrInvalidResult, len(m.At(0)), nQubits)
	}
	return m, nil
}

func maxQubits(cs []*core.Circuit) int {
	n := 0
	for _, c := range cs {
		if c.NQubits > n {
			n = c.NQubits
		}
	}
	return n
}
