package model

// Subspecialty is the closed set of medical subspecialties an article can be
// classified into. It is determined once per article and afterwards used only
// as a styling key.
type Subspecialty string

const (
	SportsMedicine     Subspecialty = "sportsMedicine"
	JointReplacement   Subspecialty = "jointReplacement"
	Trauma             Subspecialty = "trauma"
	Spine              Subspecialty = "spine"
	HandUpperExtremity Subspecialty = "handUpperExtremity"
	FootAnkle          Subspecialty = "footAnkle"
	ShoulderElbow      Subspecialty = "shoulderElbow"
	Pediatrics         Subspecialty = "pediatrics"
	Oncology           Subspecialty = "oncology"
)

// Subspecialties is the canonical declaration order. Classification ties
// break in favor of the earlier entry; SportsMedicine is the zero-score
// default.
var Subspecialties = []Subspecialty{
	SportsMedicine,
	JointReplacement,
	Trauma,
	Spine,
	HandUpperExtremity,
	FootAnkle,
	ShoulderElbow,
	Pediatrics,
	Oncology,
}

// Valid reports whether s is one of the declared subspecialties.
func (s Subspecialty) Valid() bool {
	for _, known := range Subspecialties {
		if s == known {
			return true
		}
	}
	return false
}
