package melodine

// Query parameter ranges accepted by the Web API.
const (
	// MinLimit and MaxLimit bound the page size of every paginated endpoint.
	MinLimit = 1
	MaxLimit = 50

	// MinVolume and MaxVolume bound the playback volume percentage.
	MinVolume = 0
	MaxVolume = 100
)

// Bounded is an integer confined to a closed range. The value is clamped to
// the nearest bound at construction, never rejected, so a Bounded observable
// outside its constructor always satisfies min <= value <= max.
type Bounded struct {
	value    int
	min, max int
}

// NewBounded clamps v into [min, max].
func NewBounded(v, min, max int) Bounded {
	if min > max {
		min, max = max, min
	}
	switch {
	case v < min:
		v = min
	case v > max:
		v = max
	}
	return Bounded{value: v, min: min, max: max}
}

// NewLimit clamps v into the page-size range [MinLimit, MaxLimit].
func NewLimit(v int) Bounded {
	return NewBounded(v, MinLimit, MaxLimit)
}

// NewVolume clamps v into the volume range [MinVolume, MaxVolume].
func NewVolume(v int) Bounded {
	return NewBounded(v, MinVolume, MaxVolume)
}

// Value returns the clamped value.
func (b Bounded) Value() int { return b.value }

// Min returns the lower bound.
func (b Bounded) Min() int { return b.min }

// Max returns the upper bound.
func (b Bounded) Max() int { return b.max }
