package localsim

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-braket/braket"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

const (
	BACKEND_SV = "braket_sv"
	BACKEND_DM = "braket_dm"

	// Width limits; the state vector keeps 2^n amplitudes and the density matrix 4^n.
	MAX_SV_QUBITS = 26
	MAX_DM_QUBITS = 12
)

// Simulator is a local Braket device. The state vector backend runs noiseless
// circuits; the density matrix backend also applies noise channels.
type Simulator struct {
	backend string
	rng     *rand.Rand
}

type Option func(*Simulator)

func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func New(backend string, opts ...Option) (*Simulator, error) {
	if backend != BACKEND_SV && backend != BACKEND_DM {
		return nil, errors.Errorf("%w: local simulator backend %q, expected %s or %s",
			core.ErrUnknownDevice, backend, BACKEND_SV, BACKEND_DM)
	}
	s := &Simulator{
		backend: backend,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func MaxQubits(backend string) int {
	if backend == BACKEND_DM {
		return MAX_DM_QUBITS
	}
	return MAX_SV_QUBITS
}

func Backends() []string {
	return []string{BACKEND_DM, BACKEND_SV}
}

func (s *Simulator) Name() string {
	return s.backend
}

func (s *Simulator) Type() braket.DeviceType {
	return braket.DeviceTypeSimulator
}

func (s *Simulator) SupportsResultType(rt braket.ResultType) bool {
	switch s.backend {
	case BACKEND_SV:
		return rt == braket.ResultStateVector
	case BACKEND_DM:
		return rt == braket.ResultDensityMatrix
	}
	return false
}

func (s *Simulator) Run(ctx context.Context, c *braket.Circuit, shots int) (*braket.TaskResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shots < 0 {
		return nil, errors.Errorf("%w: %d", core.ErrInvalidShots, shots)
	}
	if c.HasNoise() && s.backend != BACKEND_DM {
		return nil, errors.Wrapf(core.ErrIncompatibleNoiseModel, "%s cannot simulate noise", s.backend)
	}
	resultTypes := c.ResultTypes()
	if shots > 0 && len(resultTypes) > 0 {
		return nil, errors.Errorf("%w: result types %v need a zero-shot run", core.ErrInvalidShots, resultTypes)
	}
	if shots == 0 && len(resultTypes) == 0 {
		return nil, errors.Wrap(core.ErrInvalidShots, "zero-shot runs need at least one result type")
	}
	for _, rt := range resultTypes {
		if !s.SupportsResultType(rt) {
			switch rt {
			case braket.ResultStateVector:
				return nil, errors.Wrapf(core.ErrStatevectorUnsupported, "local simulator %s", s.backend)
			default:
				return nil, errors.Wrapf(core.ErrDensityMatrixUnsupported, "local simulator %s", s.backend)
			}
		}
	}
	n := c.QubitCount()
	if limit := MaxQubits(s.backend); n > limit {
		return nil, errors.Errorf("%w: %d qubits exceed the %d qubit limit of %s",
			core.ErrInvalidCircuit, n, limit, s.backend)
	}

	started := time.Now()
	result := &braket.TaskResult{
		TaskMetadata: braket.TaskMetadata{
			ID:        uuid.New().String(),
			Shots:     shots,
			DeviceID:  s.backend,
			CreatedAt: strfmt.DateTime(started),
		},
	}
	var probs []float64
	switch s.backend {
	case BACKEND_SV:
		state, err := simulateStateVector(c, n)
		if err != nil {
			return nil, err
		}
		if shots == 0 {
			result.StateVector = state
		}
		probs = make([]float64, len(state))
		for i, a := range state {
			probs[i] = real(a)*real(a) + imag(a)*imag(a)
		}
	case BACKEND_DM:
		rho, err := simulateDensityMatrix(c, n)
		if err != nil {
			return nil, err
		}
		dim := 1 << n
		if shots == 0 {
			result.DensityMatrix = make([][]complex128, dim)
			for i := 0; i < dim; i++ {
				result.DensityMatrix[i] = append([]complex128(nil), rho[i*dim:(i+1)*dim]...)
			}
		}
		probs = make([]float64, dim)
		for i := 0; i < dim; i++ {
			probs[i] = real(rho[i*dim+i])
		}
	}
	if shots > 0 {
		result.Measurements = s.sample(probs, n, shots)
		result.MeasuredQubits = make([]int, n)
		for q := range result.MeasuredQubits {
			result.MeasuredQubits[q] = q
		}
	}
	result.TaskMetadata.EndedAt = strfmt.DateTime(time.Now())
	zap.L().Debug(fmt.Sprintf("local simulation finished/backend:%s/qubits:%d/shots:%d/elapsed:%s",
		s.backend, n, shots, time.Since(started)))
	return result, nil
}

func simulateStateVector(c *braket.Circuit, n int) ([]complex128, error) {
	state := make([]complex128, 1<<n)
	state[0] = 1
	for _, inst := range c.Instructions() {
		u, err := unitary(*inst.Gate)
		if err != nil {
			return nil, err
		}
		apply(state, n, u, inst.Targets)
	}
	return state, nil
}

// simulateDensityMatrix keeps rho as a state on 2n qubits: row qubits first,
// then column qubits. U rho U^dagger applies U on the rows and conj(U) on the columns.
func simulateDensityMatrix(c *braket.Circuit, n int) ([]complex128, error) {
	rho := make([]complex128, 1<<(2*n))
	rho[0] = 1
	// next and term are allocated on the first noise channel and reused afterwards.
	var next, term []complex128
	for _, inst := range c.Instructions() {
		cols := make([]int, len(inst.Targets))
		for i, t := range inst.Targets {
			cols[i] = t + n
		}
		if inst.IsNoise() {
			if next == nil {
				next = make([]complex128, len(rho))
				term = make([]complex128, len(rho))
			}
			clear(next)
			for _, k := range krausMatrices(*inst.Noise) {
				copy(term, rho)
				apply(term, 2*n, k, inst.Targets)
				apply(term, 2*n, conjugate(k), cols)
				for i, v := range term {
					next[i] += v
				}
			}
			rho, next = next, rho
			continue
		}
		u, err := unitary(*inst.Gate)
		if err != nil {
			return nil, err
		}
		apply(rho, 2*n, u, inst.Targets)
		apply(rho, 2*n, conjugate(u), cols)
	}
	return rho, nil
}

func (s *Simulator) sample(probs []float64, n, shots int) [][]int {
	cumulative := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		if p > 0 {
			total += p
		}
		cumulative[i] = total
	}
	rows := make([][]int, shots)
	for k := range rows {
		r := s.rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, r)
		// SearchFloat64s returns the first index with cumulative >= r; skip zero-probability entries
		for idx < len(probs)-1 && (probs[idx] <= 0 || cumulative[idx] <= r) {
			idx++
		}
		row := make([]int, n)
		for q := 0; q < n; q++ {
			row[q] = (idx >> (n - 1 - q)) & 1
		}
		rows[k] = row
	}
	return rows
}
