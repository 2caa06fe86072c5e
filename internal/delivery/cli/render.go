package cli

import (
	"fmt"
	"strconv"
	"strings"

	"go-doctor-directory/internal/delivery/dto"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Width(60)

	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	feeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))
	chipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	currentStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func renderList(view *dto.DoctorListResponse) string {
	var b strings.Builder

	if chips := renderChips(view.ActiveFilters); chips != "" {
		b.WriteString(chips)
		b.WriteString("\n")
	}

	if view.Empty {
		b.WriteString(renderEmpty(view))
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("%d doctors found", view.Total)))
	for _, d := range view.Doctors {
		b.WriteString(renderCard(d))
		b.WriteString("\n")
	}
	if view.Expanded {
		b.WriteString(mutedStyle.Render("Showing all doctors"))
	} else {
		b.WriteString(renderPager(view))
	}
	b.WriteString("\n")

	return b.String()
}

func renderCard(d dto.DoctorResponse) string {
	modes := make([]string, 0, 2)
	if d.VideoConsult {
		modes = append(modes, "Video Consult")
	}
	if d.InClinic {
		modes = append(modes, "In Clinic")
	}

	lines := []string{
		nameStyle.Render(d.Name),
		strings.Join(d.Specialities, ", "),
		mutedStyle.Render(d.ExperienceLabel),
		feeStyle.Render(d.FeeLabel),
	}
	if len(modes) > 0 {
		lines = append(lines, strings.Join(modes, " · "))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderChips(chips []dto.FilterChip) string {
	if len(chips) == 0 {
		return ""
	}
	parts := make([]string, len(chips))
	for i, c := range chips {
		parts[i] = chipStyle.Render("[" + c.Label + " ×]")
	}
	return strings.Join(parts, " ")
}

func renderPager(view *dto.DoctorListResponse) string {
	parts := make([]string, len(view.PageNumbers))
	for i, n := range view.PageNumbers {
		label := strconv.Itoa(n)
		if n == view.Page {
			label = currentStyle.Render(label)
		}
		parts[i] = label
	}
	return fmt.Sprintf("Page %d of %d  %s", view.Page, view.TotalPages, strings.Join(parts, " "))
}

func renderEmpty(view *dto.DoctorListResponse) string {
	msg := view.EmptyMessage
	if view.ClearFiltersQuery != nil {
		msg += mutedStyle.Render(" (type 'clear' or 'reset' to remove filters)")
	}
	return msg + "\n"
}

func renderLoadFailure() string {
	return errorStyle.Render("Failed to fetch doctors. Try 'reload'.")
}

func renderSuggestions(suggestions []dto.DoctorSuggestionResponse) string {
	if len(suggestions) == 0 {
		return mutedStyle.Render("No suggestions") + "\n"
	}
	var b strings.Builder
	for i, s := range suggestions {
		fmt.Fprintf(&b, "  %d) %s %s\n", i+1, s.Name, mutedStyle.Render(strings.Join(s.Specialities, ", ")))
	}
	return b.String()
}

func renderSpecialties(specialties []dto.SpecialtyResponse, selected func(string) bool) string {
	var b strings.Builder
	for _, s := range specialties {
		mark := "[ ]"
		if selected(s.Name) {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, s.Label)
	}
	return b.String()
}
