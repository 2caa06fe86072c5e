package converter

import (
	"fmt"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	UnnamedDoctorLabel    = "Unnamed doctor"
	MissingSpecialtyLabel = "Specialty not listed"
	currencySymbol        = "₹"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            DoctorName(doctor),
		Specialities:    SpecialityLabels(doctor),
		Experience:      doctor.Experience,
		ExperienceLabel: ExperienceLabel(doctor.Experience),
		Fee:             doctor.Fee,
		FeeLabel:        FeeLabel(doctor.Fee),
		VideoConsult:    doctor.VideoConsult,
		InClinic:        doctor.InClinic,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor)
	}
	return responses
}

func DoctorName(doctor entity.Doctor) string {
	if doctor.Name == "" {
		return UnnamedDoctorLabel
	}
	return doctor.Name
}

// SpecialityLabels returns display labels, or a single placeholder when the record has none.
func SpecialityLabels(doctor entity.Doctor) []string {
	if len(doctor.Speciality) == 0 {
		return []string{MissingSpecialtyLabel}
	}
	labels := make([]string, len(doctor.Speciality))
	for i, s := range doctor.Speciality {
		labels[i] = entity.SpecialtyLabel(s)
	}
	return labels
}

func FeeLabel(fee float64) string {
	return fmt.Sprintf("%s %s", currencySymbol, decimal.NewFromFloat(fee).Round(2).String())
}

func ExperienceLabel(years float64) string {
	value := decimal.NewFromFloat(years).Round(1)
	if value.Equal(decimal.NewFromInt(1)) {
		return "1 year of experience"
	}
	return fmt.Sprintf("%s years of experience", value.String())
}
