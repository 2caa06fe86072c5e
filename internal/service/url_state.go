package service

import (
	"net/url"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Query parameter names shared by the HTTP API and the browse history.
const (
	ParamSearch       = "search"
	ParamConsultation = "consultation"
	ParamSpecialties  = "specialties"
	ParamSort         = "sort"
)

const specialtyDelimiter = ","

// EncodeFilters renders filters as a query string without the leading '?'.
// Empty fields are omitted. Keys come out sorted, so equal states encode identically.
func EncodeFilters(filters entity.FilterState) string {
	return FilterValues(filters).Encode()
}

// FilterValues is EncodeFilters before serialisation, for callers adding their own keys.
func FilterValues(filters entity.FilterState) url.Values {
	params := url.Values{}
	if filters.Search != "" {
		params.Set(ParamSearch, filters.Search)
	}
	if filters.ConsultationType != entity.ConsultationNone {
		params.Set(ParamConsultation, string(filters.ConsultationType))
	}
	if len(filters.Specialties) > 0 {
		params.Set(ParamSpecialties, strings.Join(filters.Specialties, specialtyDelimiter))
	}
	if filters.Sort != entity.SortNone {
		params.Set(ParamSort, string(filters.Sort))
	}
	return params
}

// DecodeFilters reads the filter parameters out of a query string (a leading '?' is
// allowed). Parameters that are missing, empty or carry an unknown value stay nil in
// the patch, so merging it never resets a field the query does not mention.
func DecodeFilters(query string) entity.FilterPatch {
	params, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil && len(params) == 0 {
		return entity.FilterPatch{}
	}
	return DecodeFilterValues(params)
}

func DecodeFilterValues(params url.Values) entity.FilterPatch {
	var patch entity.FilterPatch

	if search := params.Get(ParamSearch); search != "" {
		patch.Search = &search
	}

	if c := entity.ConsultationType(params.Get(ParamConsultation)); c.Valid() {
		patch.ConsultationType = &c
	}

	if raw := params.Get(ParamSpecialties); raw != "" {
		var specialties []string
		for _, s := range strings.Split(raw, specialtyDelimiter) {
			if s != "" {
				specialties = append(specialties, s)
			}
		}
		patch.Specialties = specialties
	}

	if s := entity.SortOption(params.Get(ParamSort)); s.Valid() {
		patch.Sort = &s
	}

	return patch
}

// Location is the externally visible address holding the encoded filters.
type Location interface {
	Query() string
	Navigate(query string)
}

// URLSynchronizer mirrors a FilterState into a Location and back.
type URLSynchronizer struct {
	location Location
}

func NewURLSynchronizer(location Location) *URLSynchronizer {
	return &URLSynchronizer{location: location}
}

// Push navigates to the encoding of filters. It reports false, and leaves the
// location alone, when the encoding equals the current query.
func (s *URLSynchronizer) Push(filters entity.FilterState) bool {
	encoded := EncodeFilters(filters)
	if encoded == strings.TrimPrefix(s.location.Query(), "?") {
		return false
	}
	s.location.Navigate(encoded)
	return true
}

// Pull merges the current location onto current. Call it once per external
// location change, not after every filter mutation.
func (s *URLSynchronizer) Pull(current entity.FilterState) entity.FilterState {
	return current.Merge(DecodeFilters(s.location.Query()))
}
