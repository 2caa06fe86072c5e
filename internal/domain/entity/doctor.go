package entity

// Doctor is a provider record as fetched from the directory endpoint.
// Speciality is nil when the source record did not carry one.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Speciality   []string `json:"speciality"`
	Experience   float64  `json:"experience"`
	Fee          float64  `json:"fee"`
	VideoConsult bool     `json:"videoConsult"`
	InClinic     bool     `json:"inClinic"`
}

// HasSpeciality reports whether the doctor is tagged with any of the given specialties.
func (d Doctor) HasSpeciality(specialties []string) bool {
	for _, own := range d.Speciality {
		for _, wanted := range specialties {
			if own == wanted {
				return true
			}
		}
	}
	return false
}
