package service

import (
	"cmp"
	"slices"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// ApplyFilters runs the search, consultation, specialty and sort stages in that order.
// Stages whose filter is empty are skipped. The input slice is never modified and the
// result is always a fresh slice, so equal inputs give equal outputs.
func ApplyFilters(doctors []entity.Doctor, filters entity.FilterState) []entity.Doctor {
	if len(doctors) == 0 {
		return []entity.Doctor{}
	}

	result := slices.Clone(doctors)

	if filters.Search != "" {
		term := strings.ToLower(filters.Search)
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !strings.Contains(strings.ToLower(d.Name), term)
		})
	}

	switch filters.ConsultationType {
	case entity.ConsultationVideo:
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool { return !d.VideoConsult })
	case entity.ConsultationClinic:
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool { return !d.InClinic })
	}

	// OR across the selected specialties
	if len(filters.Specialties) > 0 {
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !d.HasSpeciality(filters.Specialties)
		})
	}

	switch filters.Sort {
	case entity.SortFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(a.Fee, b.Fee)
		})
	case entity.SortExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}
