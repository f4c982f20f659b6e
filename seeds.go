package cssfilter

import "slices"

// Seed is a starting point for one local search.
type Seed struct {
	// Region names the part of the color wheel the seed was tuned for.
	Region string
	Params Params
}

// defaultSeeds come first neutral, then by hue in 30 degree steps. Each hue
// seed is a converged solution for the fully saturated color of its region.
var defaultSeeds = []Seed{
	{"black", Params{0, 0, 100, 0, 100, 100}},
	{"white", Params{100, 0, 100, 0, 100, 100}},
	{"red", Params{11, 42, 6013, 97, 158, 97}},
	{"orange", Params{56, 31, 4295, 99, 97, 75}},
	{"yellow", Params{96, 21, 1872, 99, 87, 96}},
	{"chartreuse", Params{76, 47, 1585, 11, 104, 77}},
	{"green", Params{44, 21, 5690, 25, 139, 74}},
	{"spring", Params{89, 92, 6061, 19, 90, 87}},
	{"cyan", Params{92, 68, 5347, 38, 79, 123}},
	{"azure", Params{53, 53, 1896, 52, 79, 123}},
	{"blue", Params{36, 70, 814, 58, 74, 177}},
	{"violet", Params{38, 94, 7344, 74, 85, 101}},
	{"magenta", Params{70, 61, 6031, 73, 73, 155}},
	{"rose", Params{37, 31, 6234, 86, 81, 112}},
	{"classic", Params{50, 20, 3750, 50, 100, 100}},
}

// DefaultSeeds returns a copy of the built-in seed table in search order.
func DefaultSeeds() []Seed {
	return slices.Clone(defaultSeeds)
}
