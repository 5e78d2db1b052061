package landunit

// System names of the built-in table.
const (
	SystemStandard     = "Standard"
	SystemUttarPradesh = "Uttar Pradesh"
	SystemBihar        = "Bihar"
	SystemWestBengal   = "West Bengal"
)

var defaultTable = mustNew(
	System{
		Name: SystemStandard,
		Units: Units{
			{Name: "Sq. Ft", Factor: 1},
			{Name: "Sq. Meter", Factor: 10.764},
			{Name: "Acre", Factor: 43560},
			{Name: "Hectare", Factor: 107639},
		},
	},
	System{
		Name: SystemUttarPradesh,
		Units: Units{
			{Name: "Bigha", Factor: 27000},
			{Name: "Biswa", Factor: 1350},
		},
	},
	System{
		Name: SystemBihar,
		Units: Units{
			{Name: "Bigha", Factor: 27220},
			{Name: "Katha", Factor: 1361},
		},
	},
	System{
		Name: SystemWestBengal,
		Units: Units{
			{Name: "Bigha", Factor: 14400},
			{Name: "Katha", Factor: 720},
		},
	},
)

// Default returns the built-in conversion table.
func Default() *Table {
	return defaultTable
}

func mustNew(systems ...System) *Table {
	t, err := New(systems...)
	if err != nil {
		panic(err)
	}
	return t
}
