package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
)

// ConsultationLabel returns the chip label for a consultation mode.
func ConsultationLabel(c entity.ConsultationType) string {
	switch c {
	case entity.ConsultationVideo:
		return "Video Consult"
	case entity.ConsultationClinic:
		return "In Clinic"
	}
	return ""
}

func SortLabel(s entity.SortOption) string {
	switch s {
	case entity.SortFees:
		return "Fees (Low to High)"
	case entity.SortExperience:
		return "Experience (High to Low)"
	}
	return ""
}

// FilterChips lists the active filters in display order, each with the query that removes it.
func FilterChips(filters entity.FilterState) []dto.FilterChip {
	chips := []dto.FilterChip{}

	if filters.Search != "" {
		chips = append(chips, dto.FilterChip{
			Field:       string(entity.FieldSearch),
			Value:       filters.Search,
			Label:       filters.Search,
			RemoveQuery: service.EncodeFilters(filters.Without(entity.FieldSearch, "")),
		})
	}

	if filters.ConsultationType != entity.ConsultationNone {
		chips = append(chips, dto.FilterChip{
			Field:       string(entity.FieldConsultation),
			Value:       string(filters.ConsultationType),
			Label:       ConsultationLabel(filters.ConsultationType),
			RemoveQuery: service.EncodeFilters(filters.Without(entity.FieldConsultation, "")),
		})
	}

	for _, s := range filters.Specialties {
		chips = append(chips, dto.FilterChip{
			Field:       string(entity.FieldSpecialties),
			Value:       s,
			Label:       entity.SpecialtyLabel(s),
			RemoveQuery: service.EncodeFilters(filters.Without(entity.FieldSpecialties, s)),
		})
	}

	if filters.Sort != entity.SortNone {
		chips = append(chips, dto.FilterChip{
			Field:       string(entity.FieldSort),
			Value:       string(filters.Sort),
			Label:       SortLabel(filters.Sort),
			RemoveQuery: service.EncodeFilters(filters.Without(entity.FieldSort, "")),
		})
	}

	return chips
}

func FilterStateToResponse(filters entity.FilterState) dto.FilterStateResponse {
	specialties := filters.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.FilterStateResponse{
		Search:       filters.Search,
		Consultation: string(filters.ConsultationType),
		Specialties:  specialties,
		Sort:         string(filters.Sort),
	}
}

// SuggestionsToResponse converts autocomplete matches. Selecting one searches by the full name.
func SuggestionsToResponse(doctors []entity.Doctor, filters entity.FilterState) *dto.SuggestionListResponse {
	suggestions := make([]dto.DoctorSuggestionResponse, len(doctors))
	for i, d := range doctors {
		suggestions[i] = dto.DoctorSuggestionResponse{
			ID:           d.ID,
			Name:         DoctorName(d),
			Specialities: SpecialityLabels(d),
			SelectQuery:  service.EncodeFilters(filters.WithSearch(d.Name)),
		}
	}
	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}
}

func SpecialtiesToResponse(names []string) *dto.SpecialtyListResponse {
	specialties := make([]dto.SpecialtyResponse, len(names))
	for i, n := range names {
		specialties[i] = dto.SpecialtyResponse{
			Name:  n,
			Label: entity.SpecialtyLabel(n),
		}
	}
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}
}
