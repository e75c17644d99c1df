package axis

import "fmt"

// Mapper linearly rescales values from [InMin, InMax] to [OutMin, OutMax].
type Mapper struct {
	InMin, InMax   float64
	OutMin, OutMax float64
}

func NewMapper(inMin, inMax, outMin, outMax float64) (*Mapper, error) {
	if inMin == inMax {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, inMin, inMax)
	}
	return &Mapper{
		InMin:  inMin,
		InMax:  inMax,
		OutMin: outMin,
		OutMax: outMax,
	}, nil
}

// Symmetric maps [inMin, inMax] onto [-limit, +limit].
func Symmetric(inMin, inMax, limit float64) (*Mapper, error) {
	return NewMapper(inMin, inMax, -limit, limit)
}

func (m *Mapper) Map(v float64) float64 {
	return (v-m.InMin)*(m.OutMax-m.OutMin)/(m.InMax-m.InMin) + m.OutMin
}

// Centered maps [inMin, center] onto [-limit, 0] and [center, inMax] onto
// [0, +limit]. A sample at center always maps to 0.
type Centered struct {
	Center    float64
	low, high *Mapper
}

func NewCentered(inMin, center, inMax, limit float64) (*Centered, error) {
	if center <= inMin || center >= inMax {
		return nil, fmt.Errorf("%w: center %g outside (%g, %g)", ErrDegenerateRange, center, inMin, inMax)
	}
	low, err := NewMapper(inMin, center, -limit, 0)
	if err != nil {
		return nil, err
	}
	high, err := NewMapper(center, inMax, 0, limit)
	if err != nil {
		return nil, err
	}
	return &Centered{Center: center, low: low, high: high}, nil
}

func (c *Centered) Map(v float64) float64 {
	if v < c.Center {
		return c.low.Map(v)
	}
	return c.high.Map(v)
}

func (c *Centered) String() string {
	return fmt.Sprintf("%s | %s", c.low, c.high)
}

// Map is the one-shot form of Mapper.Map.
func Map(v, inMin, inMax, outMin, outMax float64) (float64, error) {
	m, err := NewMapper(inMin, inMax, outMin, outMax)
	if err != nil {
		return 0, err
	}
	return m.Map(v), nil
}

// Truncate converts a mapped value to a whole pixel delta, rounding
// toward zero.
func Truncate(v float64) int {
	return int(v)
}

func (m *Mapper) String() string {
	return fmt.Sprintf("[%g, %g] -> [%g, %g]", m.InMin, m.InMax, m.OutMin, m.OutMax)
}
