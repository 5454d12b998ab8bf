package decimal

import "fmt"

const (
	// DefaultPrecision and DefaultScale are what Hive uses for a bare `decimal`.
	DefaultPrecision int32 = 10
	DefaultScale     int32 = 0

	MaxPrecision int32 = 38
	MaxScale     int32 = 38
)

type Details struct {
	precision int32
	scale     int32
}

func NewDetails(precision, scale int32) Details {
	return Details{
		precision: precision,
		scale:     scale,
	}
}

func DefaultDetails() Details {
	return NewDetails(DefaultPrecision, DefaultScale)
}

func (d Details) Precision() int32 {
	return d.precision
}

func (d Details) Scale() int32 {
	return d.scale
}

// Validate - precision has to be within [1, 38] and scale within [0, precision].
func (d Details) Validate() error {
	if d.precision < 1 || d.precision > MaxPrecision {
		return fmt.Errorf("decimal precision must be between 1 and %d, got: %d", MaxPrecision, d.precision)
	}

	if d.scale < 0 || d.scale > MaxScale {
		return fmt.Errorf("decimal scale must be between 0 and %d, got: %d", MaxScale, d.scale)
	}

	if d.scale > d.precision {
		return fmt.Errorf("decimal scale (%d) must be less than or equal to precision (%d)", d.scale, d.precision)
	}

	return nil
}

func (d Details) HiveKind() string {
	return fmt.Sprintf("decimal(%d,%d)", d.precision, d.scale)
}
