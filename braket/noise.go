package braket

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

type NoiseKind string

const (
	NoiseBitFlip          NoiseKind = "bit_flip"
	NoisePhaseFlip        NoiseKind = "phase_flip"
	NoiseDepolarizing     NoiseKind = "depolarizing"
	NoiseAmplitudeDamping NoiseKind = "amplitude_damping"
	NoisePhaseDamping     NoiseKind = "phase_damping"
)

var ErrInvalidNoise = errors.New("invalid noise")

var noiseMaxProbability = map[NoiseKind]float64{
	NoiseBitFlip:          0.5,
	NoisePhaseFlip:        0.5,
	NoiseDepolarizing:     0.75,
	NoiseAmplitudeDamping: 1,
	NoisePhaseDamping:     1,
}

// Noise is a single-qubit noise channel. For the damping channels Probability is gamma.
type Noise struct {
	Kind        NoiseKind
	Probability float64
}

func NewNoise(kind NoiseKind, probability float64) (*Noise, error) {
	limit, ok := noiseMaxProbability[kind]
	if !ok {
		return nil, errors.Errorf("%w: unknown kind %q", ErrInvalidNoise, kind)
	}
	if math.IsNaN(probability) || probability < 0 || probability > limit {
		return nil, errors.Errorf("%w: %s probability %g must be in [0, %g]",
			ErrInvalidNoise, kind, probability, limit)
	}
	return &Noise{Kind: kind, Probability: probability}, nil
}

// Validate reports noise built as a literal with an unknown kind or an out of range probability.
func (n Noise) Validate() error {
	_, err := NewNoise(n.Kind, n.Probability)
	return err
}

func BitFlip(p float64) (*Noise, error)          { return NewNoise(NoiseBitFlip, p) }
func PhaseFlip(p float64) (*Noise, error)        { return NewNoise(NoisePhaseFlip, p) }
func Depolarizing(p float64) (*Noise, error)     { return NewNoise(NoiseDepolarizing, p) }
func AmplitudeDamping(g float64) (*Noise, error) { return NewNoise(NoiseAmplitudeDamping, g) }
func PhaseDamping(g float64) (*Noise, error)     { return NewNoise(NoisePhaseDamping, g) }

// ParseNoise reads "<kind>:<probability>", e.g. "depolarizing:0.1". An empty string is no noise.
func ParseNoise(s string) (*Noise, error) {
	if s == "" {
		return nil, nil
	}
	kind, prob, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Errorf("%w: %q is not <kind>:<probability>", ErrInvalidNoise, s)
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(prob), 64)
	if err != nil {
		return nil, errors.Errorf("%w: %q: %s", ErrInvalidNoise, s, err)
	}
	return NewNoise(NoiseKind(strings.TrimSpace(kind)), p)
}

func (n Noise) String() string {
	return fmt.Sprintf("%s(%s)", n.Kind, formatFloat(n.Probability))
}

// Kraus returns the Kraus operators of the channel.
func (n Noise) Kraus() [][2][2]complex128 {
	p := n.Probability
	switch n.Kind {
	case NoiseBitFlip:
		return [][2][2]complex128{
			scale(identity2, math.Sqrt(1-p)),
			scale(pauliX, math.Sqrt(p)),
		}
	case NoisePhaseFlip:
		return [][2][2]complex128{
			scale(identity2, math.Sqrt(1-p)),
			scale(pauliZ, math.Sqrt(p)),
		}
	case NoiseDepolarizing:
		return [][2][2]complex128{
			scale(identity2, math.Sqrt(1-p)),
			scale(pauliX, math.Sqrt(p/3)),
			scale(pauliY, math.Sqrt(p/3)),
			scale(pauliZ, math.Sqrt(p/3)),
		}
	case NoiseAmplitudeDamping:
		return [][2][2]complex128{
			{{1, 0}, {0, complex(math.Sqrt(1-p), 0)}},
			{{0, complex(math.Sqrt(p), 0)}, {0, 0}},
		}
	case NoisePhaseDamping:
		return [][2][2]complex128{
			{{1, 0}, {0, complex(math.Sqrt(1-p), 0)}},
			{{0, 0}, {0, complex(math.Sqrt(p), 0)}},
		}
	}
	return nil
}

var (
	identity2 = [2][2]complex128{{1, 0}, {0, 1}}
	pauliX    = [2][2]complex128{{0, 1}, {1, 0}}
	pauliY    = [2][2]complex128{{0, -1i}, {1i, 0}}
	pauliZ    = [2][2]complex128{{1, 0}, {0, -1}}
)

func scale(m [2][2]complex128, f float64) [2][2]complex128 {
	c := complex(f, 0)
	return [2][2]complex128{
		{m[0][0] * c, m[0][1] * c},
		{m[1][0] * c, m[1][1] * c},
	}
}
