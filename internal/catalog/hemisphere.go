package catalog

import "time"

// Hemisphere selects northern or southern seasonal timing.
type Hemisphere string

const (
	North Hemisphere = "north"
	South Hemisphere = "south"
)

// Valid reports whether h is one of the two known values.
func (h Hemisphere) Valid() bool { return h == North || h == South }

// DetectHemisphere derives a hemisphere from a latitude. Unknown or
// non-negative latitudes default to north.
func DetectHemisphere(latitude *float64) Hemisphere {
	if latitude != nil && *latitude < 0 {
		return South
	}
	return North
}

// OffsetMonth shifts a catalog month by six for the southern hemisphere,
// mapping Jan->Jul, Mar->Sep, Sep->Mar and so on. It is its own inverse:
// applying it twice yields the original month.
func OffsetMonth(m time.Month, h Hemisphere) time.Month {
	if h != South {
		return m
	}
	return time.Month((int(m)-1+6)%12 + 1)
}
