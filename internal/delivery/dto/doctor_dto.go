package dto

// Request DTOs

type ListDoctorsQuery struct {
	Search       string `json:"search" validate:"omitempty,max=100"`
	Consultation string `json:"consultation" validate:"omitempty,oneof=video clinic"`
	Specialties  string `json:"specialties" validate:"omitempty,max=1000"`
	Sort         string `json:"sort" validate:"omitempty,oneof=fees experience"`
	Page         int    `json:"page" validate:"gte=1"`
}

type SuggestDoctorsQuery struct {
	Term string `json:"q" validate:"omitempty,max=100"`
}

type SearchSpecialtiesQuery struct {
	Term string `json:"q" validate:"omitempty,max=50"`
}

// Response DTOs

type DoctorResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialities    []string `json:"specialities"`
	Experience      float64  `json:"experience"`
	ExperienceLabel string   `json:"experience_label"`
	Fee             float64  `json:"fee"`
	FeeLabel        string   `json:"fee_label"`
	VideoConsult    bool     `json:"video_consult"`
	InClinic        bool     `json:"in_clinic"`
}

// FilterChip is one active filter. RemoveQuery is the query string with that filter removed.
type FilterChip struct {
	Field       string `json:"field"`
	Value       string `json:"value,omitempty"`
	Label       string `json:"label"`
	RemoveQuery string `json:"remove_query"`
}

type FilterStateResponse struct {
	Search       string   `json:"search,omitempty"`
	Consultation string   `json:"consultation,omitempty"`
	Specialties  []string `json:"specialties"`
	Sort         string   `json:"sort,omitempty"`
}

type DoctorListResponse struct {
	Doctors       []DoctorResponse    `json:"doctors"`
	Total         int                 `json:"total"`
	Page          int                 `json:"page"`
	TotalPages    int                 `json:"total_pages"`
	PageNumbers   []int               `json:"page_numbers"`
	Filters       FilterStateResponse `json:"filters"`
	Query         string              `json:"query"`
	ActiveFilters []FilterChip        `json:"active_filters"`
	Empty         bool                `json:"empty"`
	Expanded      bool                `json:"expanded"`
	EmptyMessage  string              `json:"empty_message,omitempty"`
	// ClearFiltersQuery is set only on an empty result with active filters.
	ClearFiltersQuery *string `json:"clear_filters_query,omitempty"`
}

type DoctorSuggestionResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialities []string `json:"specialities"`
	SelectQuery  string   `json:"select_query"`
}

type SuggestionListResponse struct {
	Suggestions []DoctorSuggestionResponse `json:"suggestions"`
	Total       int                        `json:"total"`
}

type SpecialtyResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

type LoadStatusResponse struct {
	Status     string `json:"status"`
	Generation uint64 `json:"generation"`
	Total      int    `json:"total"`
	Error      string `json:"error,omitempty"`
}
