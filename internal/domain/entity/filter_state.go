package entity

import "slices"

type ConsultationType string

const (
	ConsultationNone   ConsultationType = ""
	ConsultationVideo  ConsultationType = "video"
	ConsultationClinic ConsultationType = "clinic"
)

// Valid reports whether c is one of the known consultation modes.
func (c ConsultationType) Valid() bool {
	return c == ConsultationVideo || c == ConsultationClinic
}

type SortOption string

const (
	SortNone       SortOption = ""
	SortFees       SortOption = "fees"
	SortExperience SortOption = "experience"
)

func (s SortOption) Valid() bool {
	return s == SortFees || s == SortExperience
}

// FilterField names one removable part of a FilterState.
type FilterField string

const (
	FieldSearch       FilterField = "search"
	FieldConsultation FilterField = "consultation"
	FieldSpecialties  FilterField = "specialties"
	FieldSort         FilterField = "sort"
)

// FilterState describes the user's current search, filter and sort choices.
// It is a value: every setter returns a modified copy and never touches the receiver.
// Specialties never holds duplicates.
type FilterState struct {
	Search           string           `json:"search"`
	ConsultationType ConsultationType `json:"consultation_type"`
	Specialties      []string         `json:"specialties"`
	Sort             SortOption       `json:"sort"`
}

// FilterPatch is a partial FilterState. Nil fields are left untouched by Merge.
type FilterPatch struct {
	Search           *string
	ConsultationType *ConsultationType
	Specialties      []string
	Sort             *SortOption
}

func (f FilterState) Clone() FilterState {
	f.Specialties = slices.Clone(f.Specialties)
	return f
}

func (f FilterState) WithSearch(search string) FilterState {
	out := f.Clone()
	out.Search = search
	return out
}

func (f FilterState) WithConsultationType(c ConsultationType) FilterState {
	out := f.Clone()
	out.ConsultationType = c
	return out
}

func (f FilterState) WithSort(s SortOption) FilterState {
	out := f.Clone()
	out.Sort = s
	return out
}

// WithSpecialties replaces the selected specialties, dropping empty names and duplicates.
func (f FilterState) WithSpecialties(specialties []string) FilterState {
	out := f.Clone()
	out.Specialties = uniqueSpecialties(specialties)
	return out
}

func (f FilterState) AddSpecialty(name string) FilterState {
	if name == "" || slices.Contains(f.Specialties, name) {
		return f.Clone()
	}
	out := f.Clone()
	out.Specialties = append(out.Specialties, name)
	return out
}

func (f FilterState) RemoveSpecialty(name string) FilterState {
	out := f.Clone()
	out.Specialties = slices.DeleteFunc(out.Specialties, func(s string) bool { return s == name })
	return out
}

func (f FilterState) ToggleSpecialty(name string) FilterState {
	if f.HasSpecialty(name) {
		return f.RemoveSpecialty(name)
	}
	return f.AddSpecialty(name)
}

func (f FilterState) HasSpecialty(name string) bool {
	return slices.Contains(f.Specialties, name)
}

// Without clears one field. For specialties a non-empty value removes only that specialty.
func (f FilterState) Without(field FilterField, value string) FilterState {
	switch field {
	case FieldSearch:
		return f.WithSearch("")
	case FieldConsultation:
		return f.WithConsultationType(ConsultationNone)
	case FieldSort:
		return f.WithSort(SortNone)
	case FieldSpecialties:
		if value != "" {
			return f.RemoveSpecialty(value)
		}
		return f.WithSpecialties(nil)
	}
	return f.Clone()
}

// ClearFilters resets the panel filters. The search text is kept.
func (f FilterState) ClearFilters() FilterState {
	return FilterState{Search: f.Search}
}

// HasActiveFilters reports whether any panel filter (not search) is set.
func (f FilterState) HasActiveFilters() bool {
	return f.ConsultationType != ConsultationNone || len(f.Specialties) > 0 || f.Sort != SortNone
}

func (f FilterState) IsEmpty() bool {
	return f.Search == "" && !f.HasActiveFilters()
}

func (f FilterState) Equal(other FilterState) bool {
	return f.Search == other.Search &&
		f.ConsultationType == other.ConsultationType &&
		f.Sort == other.Sort &&
		slices.Equal(f.Specialties, other.Specialties)
}

// Merge applies the fields present in p onto a copy of f.
func (f FilterState) Merge(p FilterPatch) FilterState {
	out := f.Clone()
	if p.Search != nil {
		out.Search = *p.Search
	}
	if p.ConsultationType != nil {
		out.ConsultationType = *p.ConsultationType
	}
	if p.Specialties != nil {
		out.Specialties = uniqueSpecialties(p.Specialties)
	}
	if p.Sort != nil {
		out.Sort = *p.Sort
	}
	return out
}

func (p FilterPatch) IsEmpty() bool {
	return p.Search == nil && p.ConsultationType == nil && p.Specialties == nil && p.Sort == nil
}

func uniqueSpecialties(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
