package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-braket/common"
	"go.uber.org/zap"
)

type PauliFactor struct {
	Qubit int
	Op    byte
}

// PauliTerm is a real coefficient times a tensor product of Pauli matrices.
// A term without factors is the identity.
type PauliTerm struct {
	Coefficient float64
	Factors     []PauliFactor
}

func (t PauliTerm) IsIdentity() bool {
	return len(t.Factors) == 0
}

func (t PauliTerm) String() string {
	if t.IsIdentity() {
		return fmt.Sprintf("%g I", t.Coefficient)
	}
	fs := make([]string, len(t.Factors))
	for i, f := range t.Factors {
		fs[i] = fmt.Sprintf("%c%d", f.Op, f.Qubit)
	}
	return fmt.Sprintf("%g %s", t.Coefficient, strings.Join(fs, " "))
}

// MaxQubit returns the highest qubit index the term acts on, -1 for the identity.
func (t PauliTerm) MaxQubit() int {
	m := -1
	for _, f := range t.Factors {
		if f.Qubit > m {
			m = f.Qubit
		}
	}
	return m
}

// Apply maps the basis state |index> on nQubits qubits to phase * |target>.
func (t PauliTerm) Apply(index, nQubits int) (target int, phase complex128) {
	target = index
	phase = 1
	for _, f := range t.Factors {
		pos := nQubits - 1 - f.Qubit
		bit := (index >> pos) & 1
		switch f.Op {
		case 'X':
			target ^= 1 << pos
		case 'Y':
			target ^= 1 << pos
			if bit == 0 {
				phase *= 1i
			} else {
				phase *= -1i
			}
		case 'Z':
			if bit == 1 {
				phase *= -1
			}
		}
	}
	return target, phase
}

// ExpectationInState returns Re <psi|term|psi>.
func (t PauliTerm) ExpectationInState(w *Wavefunction) float64 {
	if t.IsIdentity() {
		return t.Coefficient
	}
	n := w.NQubits()
	var acc complex128
	for j, amp := range w.Amplitudes {
		if amp == 0 {
			continue
		}
		target, phase := t.Apply(j, n)
		acc += conj(w.Amplitudes[target]) * phase * amp
	}
	return t.Coefficient * real(acc)
}

// ExpectationInDensityMatrix returns Re tr(rho * term).
func (t PauliTerm) ExpectationInDensityMatrix(rho [][]complex128) float64 {
	if t.IsIdentity() {
		return t.Coefficient
	}
	n := 0
	for (1 << n) < len(rho) {
		n++
	}
	var acc complex128
	for k := range rho {
		target, phase := t.Apply(k, n)
		acc += rho[k][target] * phase
	}
	return t.Coefficient * real(acc)
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

type Operator struct {
	Terms []PauliTerm
}

func NewOperator(terms ...PauliTerm) *Operator {
	return &Operator{Terms: terms}
}

// Validate checks that every term fits into nQubits qubits.
func (o *Operator) Validate(nQubits int) error {
	if o == nil || len(o.Terms) == 0 {
		return errors.Wrap(ErrInvalidOperator, "operator has no terms")
	}
	for _, t := range o.Terms {
		if m := t.MaxQubit(); m >= nQubits {
			return errors.Errorf("%w: term %s acts on qubit %d but the circuit has %d qubits",
				ErrInvalidOperator, t, m, nQubits)
		}
	}
	return nil
}

func (o *Operator) String() string {
	ts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		ts[i] = t.String()
	}
	return strings.Join(ts, " + ")
}

type operatorTerm struct {
	Pauli string  `json:"pauli"`
	CoEff float64 `json:"coeff"`
}

// ParsePauliTerm parses strings such as "X0 Y2 Z3". "I" and "" are the identity.
func ParsePauliTerm(pauli string, coeff float64) (PauliTerm, error) {
	term := PauliTerm{Coefficient: coeff}
	seen := make(map[int]struct{})
	for _, tok := range strings.Fields(pauli) {
		tok = strings.ToUpper(tok)
		if tok == "I" {
			continue
		}
		op := tok[0]
		if op != 'X' && op != 'Y' && op != 'Z' && op != 'I' {
			return PauliTerm{}, errors.Errorf("%w: unknown pauli %q in %q", ErrInvalidOperator, tok, pauli)
		}
		q, err := strconv.Atoi(tok[1:])
		if err != nil || q < 0 {
			return PauliTerm{}, errors.Errorf("%w: invalid qubit in %q", ErrInvalidOperator, tok)
		}
		if _, ok := seen[q]; ok {
			return PauliTerm{}, errors.Errorf("%w: qubit %d appears twice in %q", ErrInvalidOperator, q, pauli)
		}
		seen[q] = struct{}{}
		if op == 'I' {
			continue
		}
		term.Factors = append(term.Factors, PauliFactor{Qubit: q, Op: op})
	}
	sort.Slice(term.Factors, func(i, j int) bool {
		return term.Factors[i].Qubit < term.Factors[j].Qubit
	})
	return term, nil
}

// UnmarshalOperator reads the operator list format
// [{"pauli":"X0 X1","coeff":1.5},{"pauli":"Y0 Z1","coeff":1.2}].
func UnmarshalOperator(blob []byte) (*Operator, error) {
	terms := []operatorTerm{}
	if err := jsonIter.Unmarshal(blob, &terms); err != nil {
		zap.L().Error(fmt.Sprintf("failed to unmarshal operators from :%s/reason:%s",
			string(blob), err.Error()))
		return nil, errors.Errorf("%w: %s", ErrInvalidOperator, err)
	}
	op := &Operator{}
	for _, t := range terms {
		pt, err := ParsePauliTerm(t.Pauli, t.CoEff)
		if err != nil {
			return nil, err
		}
		op.Terms = append(op.Terms, pt)
	}
	return op, nil
}

func LoadOperator(path string) (*Operator, error) {
	blob, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read operator file:%s/reason:%s", path, err))
		return nil, err
	}
	return UnmarshalOperator([]byte(blob))
}
