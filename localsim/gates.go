package localsim

import (
	"math"
	"math/cmplx"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/braket"
)

// unitary returns the matrix of g. The first target is the most significant
// bit of the row and column index.
func unitary(g braket.Gate) ([][]complex128, error) {
	if g.IsAngled() {
		return angledUnitary(g.Name, *g.Angle)
	}
	switch g.Name {
	case braket.GateI:
		return [][]complex128{{1, 0}, {0, 1}}, nil
	case braket.GateX:
		return [][]complex128{{0, 1}, {1, 0}}, nil
	case braket.GateY:
		return [][]complex128{{0, -1i}, {1i, 0}}, nil
	case braket.GateZ:
		return [][]complex128{{1, 0}, {0, -1}}, nil
	case braket.GateH:
		h := complex(1/math.Sqrt2, 0)
		return [][]complex128{{h, h}, {h, -h}}, nil
	case braket.GateS:
		return [][]complex128{{1, 0}, {0, 1i}}, nil
	case braket.GateT:
		return [][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}, nil
	case braket.GateCZ:
		return diag(1, 1, 1, -1), nil
	case braket.GateCNot:
		return [][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}, nil
	case braket.GateISwap:
		return [][]complex128{
			{1, 0, 0, 0},
			{0, 0, 1i, 0},
			{0, 1i, 0, 0},
			{0, 0, 0, 1},
		}, nil
	case braket.GateSwap:
		return [][]complex128{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}, nil
	}
	return nil, errors.Wrapf(braket.ErrUnknownGate, "no matrix for %s", g)
}

func angledUnitary(name string, theta float64) ([][]complex128, error) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	is := 1i * s
	switch name {
	case braket.GateRx:
		return [][]complex128{{c, -is}, {-is, c}}, nil
	case braket.GateRy:
		return [][]complex128{{c, -s}, {s, c}}, nil
	case braket.GateRz:
		return diag(phase(-theta/2), phase(theta/2)), nil
	case braket.GatePhaseShift:
		return diag(1, phase(theta)), nil
	case braket.GateCPhaseShift:
		return diag(1, 1, 1, phase(theta)), nil
	case braket.GateXX:
		return [][]complex128{
			{c, 0, 0, -is},
			{0, c, -is, 0},
			{0, -is, c, 0},
			{-is, 0, 0, c},
		}, nil
	case braket.GateYY:
		return [][]complex128{
			{c, 0, 0, is},
			{0, c, -is, 0},
			{0, -is, c, 0},
			{is, 0, 0, c},
		}, nil
	case braket.GateZZ:
		return diag(phase(-theta/2), phase(theta/2), phase(theta/2), phase(-theta/2)), nil
	case braket.GateXY:
		return [][]complex128{
			{1, 0, 0, 0},
			{0, c, is, 0},
			{0, is, c, 0},
			{0, 0, 0, 1},
		}, nil
	}
	return nil, errors.Wrapf(braket.ErrUnknownGate, "no matrix for %s(%g)", name, theta)
}

func phase(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}

func diag(entries ...complex128) [][]complex128 {
	m := make([][]complex128, len(entries))
	for i, e := range entries {
		m[i] = make([]complex128, len(entries))
		m[i][i] = e
	}
	return m
}

func krausMatrices(n braket.Noise) [][][]complex128 {
	ks := n.Kraus()
	out := make([][][]complex128, len(ks))
	for i, k := range ks {
		out[i] = [][]complex128{{k[0][0], k[0][1]}, {k[1][0], k[1][1]}}
	}
	return out
}

func conjugate(m [][]complex128) [][]complex128 {
	out := make([][]complex128, len(m))
	for i, row := range m {
		out[i] = make([]complex128, len(row))
		for j, v := range row {
			out[i][j] = cmplx.Conj(v)
		}
	}
	return out
}

// apply multiplies the amplitudes of the target qubits of state by m in place.
// Qubit 0 is the most significant bit of a state index.
func apply(state []complex128, nQubits int, m [][]complex128, targets []int) {
	k := len(targets)
	dim := 1 << k
	all := 0
	masks := make([]int, k)
	for i, t := range targets {
		masks[i] = 1 << (nQubits - 1 - t)
		all |= masks[i]
	}
	offsets := make([]int, dim)
	for local := 0; local < dim; local++ {
		off := 0
		for i := 0; i < k; i++ {
			if (local>>(k-1-i))&1 == 1 {
				off |= masks[i]
			}
		}
		offsets[local] = off
	}
	buf := make([]complex128, dim)
	for base := range state {
		if base&all != 0 {
			continue
		}
		for l := 0; l < dim; l++ {
			buf[l] = state[base|offsets[l]]
		}
		for r := 0; r < dim; r++ {
			var acc complex128
			for l := 0; l < dim; l++ {
				acc += m[r][l] * buf[l]
			}
			state[base|offsets[r]] = acc
		}
	}
}
