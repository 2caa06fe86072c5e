package service

import (
	"testing"

	"go-doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFilters_OmitsEmptyFields(t *testing.T) {
	assert.Equal(t, "", EncodeFilters(entity.FilterState{}))
	assert.Equal(t, "sort=fees", EncodeFilters(entity.FilterState{Sort: entity.SortFees}))
}

func TestEncodeFilters_AllFields(t *testing.T) {
	f := entity.FilterState{
		Search:           "dr lee",
		ConsultationType: entity.ConsultationVideo,
		Specialties:      []string{"Dentist", "ENT"},
		Sort:             entity.SortExperience,
	}

	assert.Equal(t, "consultation=video&search=dr+lee&sort=experience&specialties=Dentist%2CENT", EncodeFilters(f))
}

func TestEncodeFilters_Deterministic(t *testing.T) {
	f := entity.FilterState{Search: "a", Specialties: []string{"B", "A"}, Sort: entity.SortFees}
	assert.Equal(t, EncodeFilters(f), EncodeFilters(f.Clone()))
}

func TestDecodeFilters_ReadsAllParameters(t *testing.T) {
	patch := DecodeFilters("?search=dr+lee&consultation=clinic&specialties=Dentist,ENT&sort=fees")

	require.NotNil(t, patch.Search)
	assert.Equal(t, "dr lee", *patch.Search)
	require.NotNil(t, patch.ConsultationType)
	assert.Equal(t, entity.ConsultationClinic, *patch.ConsultationType)
	assert.Equal(t, []string{"Dentist", "ENT"}, patch.Specialties)
	require.NotNil(t, patch.Sort)
	assert.Equal(t, entity.SortFees, *patch.Sort)
}

func TestDecodeFilters_EmptyAndUnknownValuesAreAbsent(t *testing.T) {
	patch := DecodeFilters("search=&specialties=&consultation=phone&sort=rating")
	assert.True(t, patch.IsEmpty())
}

func TestDecodeFilters_SpecialtiesDropEmptyItems(t *testing.T) {
	patch := DecodeFilters("specialties=,Dentist,,ENT,")
	assert.Equal(t, []string{"Dentist", "ENT"}, patch.Specialties)
}

func TestDecodeFilters_MalformedQuery(t *testing.T) {
	patch := DecodeFilters("%zz")
	assert.True(t, patch.IsEmpty())
}

func TestDecodeFilters_MergeDoesNotResetUnmentionedFields(t *testing.T) {
	current := entity.FilterState{
		Search:           "lee",
		ConsultationType: entity.ConsultationVideo,
		Specialties:      []string{"Dentist"},
	}

	merged := current.Merge(DecodeFilters("sort=experience"))

	assert.Equal(t, "lee", merged.Search)
	assert.Equal(t, entity.ConsultationVideo, merged.ConsultationType)
	assert.Equal(t, []string{"Dentist"}, merged.Specialties)
	assert.Equal(t, entity.SortExperience, merged.Sort)
}

func TestURLState_RoundTrip(t *testing.T) {
	states := []entity.FilterState{
		{},
		{Search: "Dr. Lee & Sons"},
		{ConsultationType: entity.ConsultationClinic},
		{Specialties: []string{"Dietitian-Nutritionist", "General-Physician", "ENT"}},
		{Sort: entity.SortFees},
		{
			Search:           "ä ö ü?",
			ConsultationType: entity.ConsultationVideo,
			Specialties:      []string{"Dentist"},
			Sort:             entity.SortExperience,
		},
	}

	for _, f := range states {
		got := entity.FilterState{}.Merge(DecodeFilters(EncodeFilters(f)))
		assert.Equal(t, f, got)
	}
}

type fakeLocation struct {
	query     string
	navigated []string
}

func (l *fakeLocation) Query() string { return l.query }

func (l *fakeLocation) Navigate(query string) {
	l.query = query
	l.navigated = append(l.navigated, query)
}

func TestURLSynchronizer_PushSkipsIdenticalQuery(t *testing.T) {
	loc := &fakeLocation{query: "?sort=fees"}
	sync := NewURLSynchronizer(loc)

	assert.False(t, sync.Push(entity.FilterState{Sort: entity.SortFees}))
	assert.Empty(t, loc.navigated)

	assert.True(t, sync.Push(entity.FilterState{Sort: entity.SortExperience}))
	assert.Equal(t, []string{"sort=experience"}, loc.navigated)

	assert.False(t, sync.Push(entity.FilterState{Sort: entity.SortExperience}))
	assert.Len(t, loc.navigated, 1)
}

func TestURLSynchronizer_PushEmptyState(t *testing.T) {
	loc := &fakeLocation{query: ""}
	sync := NewURLSynchronizer(loc)

	assert.False(t, sync.Push(entity.FilterState{}))
	assert.Empty(t, loc.navigated)
}

func TestURLSynchronizer_PullMerges(t *testing.T) {
	loc := &fakeLocation{query: "consultation=video"}
	sync := NewURLSynchronizer(loc)

	got := sync.Pull(entity.FilterState{Search: "lee"})

	assert.Equal(t, entity.FilterState{Search: "lee", ConsultationType: entity.ConsultationVideo}, got)
	assert.Empty(t, loc.navigated)
}
