package design

import "github.com/structcalc/beamcheck/internal/code"

// Designer runs the calculation engines against one code profile.
// The zero value is not usable; construct with New. All methods are
// pure functions over their arguments and the profile.
type Designer struct {
	Profile code.Profile
}

// New returns a Designer bound to a code profile.
func New(p code.Profile) Designer {
	return Designer{Profile: p}
}
