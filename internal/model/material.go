package model

// ConcreteGrade identifies a standard concrete strength class.
// Grades are a closed set; anything else is rejected at validation.
type ConcreteGrade string

// SteelGrade identifies a standard reinforcing steel grade.
type SteelGrade string

const (
	ConcreteC21 ConcreteGrade = "C21"
	ConcreteC28 ConcreteGrade = "C28"
	ConcreteC35 ConcreteGrade = "C35"
	ConcreteC42 ConcreteGrade = "C42"

	SteelG275 SteelGrade = "G275"
	SteelG415 SteelGrade = "G415"
	SteelG520 SteelGrade = "G520"
)

// concreteStrengths maps each grade to its characteristic compressive
// strength f'c (MPa).
var concreteStrengths = map[ConcreteGrade]float64{
	ConcreteC21: 21,
	ConcreteC28: 28,
	ConcreteC35: 35,
	ConcreteC42: 42,
}

// steelStrengths maps each grade to its yield strength fy (MPa).
var steelStrengths = map[SteelGrade]float64{
	SteelG275: 275,
	SteelG415: 415,
	SteelG520: 520,
}

// MaterialGrade pairs the concrete and steel grades for one section.
type MaterialGrade struct {
	Concrete ConcreteGrade `json:"concrete"`
	Steel    SteelGrade    `json:"steel"`
}

// Fc returns the concrete compressive strength f'c (MPa).
// The second return is false for a grade outside the standard set.
func (m MaterialGrade) Fc() (float64, bool) {
	fc, ok := concreteStrengths[m.Concrete]
	return fc, ok
}

// Fy returns the steel yield strength fy (MPa).
func (m MaterialGrade) Fy() (float64, bool) {
	fy, ok := steelStrengths[m.Steel]
	return fy, ok
}

// ConcreteGrades returns the standard concrete grades in ascending strength order.
func ConcreteGrades() []ConcreteGrade {
	return []ConcreteGrade{ConcreteC21, ConcreteC28, ConcreteC35, ConcreteC42}
}

// SteelGrades returns the standard steel grades in ascending strength order.
func SteelGrades() []SteelGrade {
	return []SteelGrade{SteelG275, SteelG415, SteelG520}
}

// ParseConcreteGrade resolves a grade name, accepting the bare strength
// value ("28") as an alias for the grade ("C28").
func ParseConcreteGrade(s string) (ConcreteGrade, bool) {
	g := ConcreteGrade(s)
	if _, ok := concreteStrengths[g]; ok {
		return g, true
	}
	g = ConcreteGrade("C" + s)
	if _, ok := concreteStrengths[g]; ok {
		return g, true
	}
	return "", false
}

// ParseSteelGrade resolves a grade name, accepting the bare yield
// strength ("415") as an alias for the grade ("G415").
func ParseSteelGrade(s string) (SteelGrade, bool) {
	g := SteelGrade(s)
	if _, ok := steelStrengths[g]; ok {
		return g, true
	}
	g = SteelGrade("G" + s)
	if _, ok := steelStrengths[g]; ok {
		return g, true
	}
	return "", false
}
