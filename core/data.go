package core

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

type Counts map[string]uint32

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

func (c Counts) String() string {
	st, err := jsonIter.Marshal(c)
	if err != nil {
		zap.L().Error("Failed to marshal core.Counts")
		return ""
	}
	return string(st)
}

// Bitstrings returns the keys of the counts in lexical order.
func (c Counts) Bitstrings() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Measurements is the ordered set of bit tuples produced by a run, one per shot.
// It is not modified after construction.
type Measurements struct {
	bitstrings [][]int
}

func NewMeasurements(bitstrings [][]int) *Measurements {
	cp := make([][]int, len(bitstrings))
	for i, b := range bitstrings {
		cp[i] = append([]int(nil), b...)
	}
	return &Measurements{bitstrings: cp}
}

func (m *Measurements) Len() int {
	return len(m.bitstrings)
}

func (m *Measurements) Bitstrings() [][]int {
	return NewMeasurements(m.bitstrings).bitstrings
}

func (m *Measurements) At(i int) []int {
	return append([]int(nil), m.bitstrings[i]...)
}

func (m *Measurements) Counts() Counts {
	counts := make(Counts)
	for _, b := range m.bitstrings {
		counts[bitstringKey(b)]++
	}
	return counts
}

func (m *Measurements) MarshalJSON() ([]byte, error) {
	return jsonIter.Marshal(m.bitstrings)
}

func (m *Measurements) ToString() string {
	st, err := jsonIter.Marshal(struct {
		Shots  int    `json:"shots"`
		Counts Counts `json:"counts"`
	}{
		Shots:  m.Len(),
		Counts: m.Counts(),
	})
	if err != nil {
		zap.L().Error("Failed to marshal core.Measurements")
		return ""
	}
	return string(pretty.Pretty(st))
}

func bitstringKey(b []int) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(fmt.Sprint(v))
	}
	return sb.String()
}

// Wavefunction holds big-endian amplitudes: qubit 0 is the most significant bit.
type Wavefunction struct {
	Amplitudes []complex128
}

func NewWavefunction(amplitudes []complex128) (*Wavefunction, error) {
	n := len(amplitudes)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.Errorf("%w: %d amplitudes is not a power of two", ErrInvalidResult, n)
	}
	return &Wavefunction{Amplitudes: append([]complex128(nil), amplitudes...)}, nil
}

// ZeroState returns |0...0> on nQubits qubits.
func ZeroState(nQubits int) *Wavefunction {
	amps := make([]complex128, 1<<nQubits)
	amps[0] = 1
	return &Wavefunction{Amplitudes: amps}
}

func (w *Wavefunction) NQubits() int {
	n := 0
	for (1 << n) < len(w.Amplitudes) {
		n++
	}
	return n
}

func (w *Wavefunction) Probabilities() []float64 {
	probs := make([]float64, len(w.Amplitudes))
	for i, a := range w.Amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// IsZeroState reports whether the first amplitude is 1, which implies |0...0>
// for a normalized state.
func (w *Wavefunction) IsZeroState() bool {
	if len(w.Amplitudes) == 0 {
		return false
	}
	return cmplx.Abs(w.Amplitudes[0]-1) < 1e-9
}

type ExpectationValues struct {
	Values []float64 `json:"values"`
}

func NewExpectationValues(values []float64) *ExpectationValues {
	return &ExpectationValues{Values: append([]float64(nil), values...)}
}

func (e *ExpectationValues) Total() float64 {
	total := 0.0
	for _, v := range e.Values {
		total += v
	}
	return total
}

func (e *ExpectationValues) ToString() string {
	st, err := jsonIter.Marshal(struct {
		Values []float64 `json:"values"`
		Total  float64   `json:"total"`
	}{
		Values: e.Values,
		Total:  e.Total(),
	})
	if err != nil {
		zap.L().Error("Failed to marshal core.ExpectationValues")
		return ""
	}
	return string(pretty.Pretty(st))
}
