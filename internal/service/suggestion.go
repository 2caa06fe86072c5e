package service

import (
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// SuggestDoctors returns up to limit doctors whose name contains term, ignoring case,
// in directory order. An empty term suggests nothing.
func SuggestDoctors(doctors []entity.Doctor, term string, limit int) []entity.Doctor {
	if term == "" || limit <= 0 {
		return []entity.Doctor{}
	}

	term = strings.ToLower(term)
	out := make([]entity.Doctor, 0, limit)
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), term) {
			out = append(out, d)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// SearchSpecialties filters the specialty vocabulary by its display label.
func SearchSpecialties(query string) []string {
	query = strings.ToLower(query)
	out := make([]string, 0, len(entity.Specialties))
	for _, s := range entity.Specialties {
		if strings.Contains(strings.ToLower(entity.SpecialtyLabel(s)), query) {
			out = append(out, s)
		}
	}
	return out
}
