package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_SettersDoNotMutateReceiver(t *testing.T) {
	base := FilterState{Specialties: []string{"Dentist"}}

	next := base.AddSpecialty("ENT").WithSearch("lee").WithSort(SortFees)

	assert.Equal(t, []string{"Dentist"}, base.Specialties)
	assert.Empty(t, base.Search)
	assert.Equal(t, []string{"Dentist", "ENT"}, next.Specialties)
	assert.Equal(t, "lee", next.Search)
	assert.Equal(t, SortFees, next.Sort)
}

func TestFilterState_SpecialtiesStayUnique(t *testing.T) {
	f := FilterState{}.WithSpecialties([]string{"Dentist", "ENT", "Dentist", ""})
	assert.Equal(t, []string{"Dentist", "ENT"}, f.Specialties)

	f = f.AddSpecialty("ENT")
	assert.Equal(t, []string{"Dentist", "ENT"}, f.Specialties)
}

func TestFilterState_ToggleSpecialty(t *testing.T) {
	f := FilterState{}.ToggleSpecialty("Dentist")
	assert.True(t, f.HasSpecialty("Dentist"))

	f = f.ToggleSpecialty("Dentist")
	assert.False(t, f.HasSpecialty("Dentist"))
	assert.Empty(t, f.Specialties)
}

func TestFilterState_Without(t *testing.T) {
	f := FilterState{
		Search:           "lee",
		ConsultationType: ConsultationVideo,
		Specialties:      []string{"Dentist", "ENT"},
		Sort:             SortExperience,
	}

	assert.Empty(t, f.Without(FieldSearch, "").Search)
	assert.Equal(t, ConsultationNone, f.Without(FieldConsultation, "").ConsultationType)
	assert.Equal(t, SortNone, f.Without(FieldSort, "").Sort)
	assert.Equal(t, []string{"ENT"}, f.Without(FieldSpecialties, "Dentist").Specialties)
	assert.Empty(t, f.Without(FieldSpecialties, "").Specialties)
}

func TestFilterState_ClearFiltersKeepsSearch(t *testing.T) {
	f := FilterState{
		Search:           "lee",
		ConsultationType: ConsultationClinic,
		Specialties:      []string{"Dentist"},
		Sort:             SortFees,
	}

	cleared := f.ClearFilters()

	assert.Equal(t, FilterState{Search: "lee"}, cleared)
	assert.False(t, cleared.HasActiveFilters())
	assert.False(t, cleared.IsEmpty())
}

func TestFilterState_MergeLeavesAbsentFieldsAlone(t *testing.T) {
	current := FilterState{
		Search:           "lee",
		ConsultationType: ConsultationVideo,
		Specialties:      []string{"Dentist"},
		Sort:             SortFees,
	}
	sort := SortExperience

	merged := current.Merge(FilterPatch{Sort: &sort})

	assert.Equal(t, "lee", merged.Search)
	assert.Equal(t, ConsultationVideo, merged.ConsultationType)
	assert.Equal(t, []string{"Dentist"}, merged.Specialties)
	assert.Equal(t, SortExperience, merged.Sort)
}

func TestFilterState_Equal(t *testing.T) {
	a := FilterState{Search: "x", Specialties: []string{"A", "B"}}
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(a.WithSpecialties([]string{"B", "A"})))
	assert.True(t, FilterState{}.Equal(FilterState{Specialties: []string{}}))
}

func TestDoctor_HasSpeciality(t *testing.T) {
	d := Doctor{Speciality: []string{"Dentist", "ENT"}}
	assert.True(t, d.HasSpeciality([]string{"Cardiologist", "ENT"}))
	assert.False(t, d.HasSpeciality([]string{"Cardiologist"}))
	assert.False(t, Doctor{}.HasSpeciality([]string{"Dentist"}))
}

func TestSpecialtyLabel(t *testing.T) {
	assert.Equal(t, "General/Physician", SpecialtyLabel("General-Physician"))
	assert.Equal(t, "ENT", SpecialtyLabel("ENT"))
}
