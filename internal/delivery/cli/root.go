// Package cli provides the doctor-directory command line: an HTTP server and a
// terminal browser over the same filtering pipeline.
package cli

import (
	"context"
	"fmt"
	"strings"

	"go-doctor-directory/cmd/bootstrap"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doctor-directory",
	Short: "Browse a directory of doctors",
	Long: `Fetches the doctor directory once and lets you search, filter by consultation
mode and specialty, sort by fees or experience, and page through the results.`,
	SilenceUsage: true,
}

// newApp builds the application for a command. Tests replace it.
var newApp = func(cmd *cobra.Command) (*bootstrap.App, error) {
	return bootstrap.New(cmd.ErrOrStderr())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// filterFlags are the filter options shared by list and browse.
type filterFlags struct {
	query        string
	search       string
	consultation string
	specialties  []string
	sort         string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.query, "query", "", "initial filters as a query string, e.g. 'sort=fees&consultation=video'")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search doctors by name")
	cmd.Flags().StringVar(&f.consultation, "consultation", "", "consultation mode: video or clinic")
	cmd.Flags().StringSliceVar(&f.specialties, "specialty", nil, "specialty to include (repeatable)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort order: fees or experience")
}

// initialQuery merges the flags over --query and returns the encoded result.
func (f *filterFlags) initialQuery() (string, error) {
	filters := entity.FilterState{}.Merge(service.DecodeFilters(f.query))

	if f.search != "" {
		filters = filters.WithSearch(f.search)
	}
	if f.consultation != "" {
		c := entity.ConsultationType(strings.ToLower(f.consultation))
		if !c.Valid() {
			return "", fmt.Errorf("invalid consultation %q: must be video or clinic", f.consultation)
		}
		filters = filters.WithConsultationType(c)
	}
	if len(f.specialties) > 0 {
		filters = filters.WithSpecialties(f.specialties)
	}
	if f.sort != "" {
		s := entity.SortOption(strings.ToLower(f.sort))
		if !s.Valid() {
			return "", fmt.Errorf("invalid sort %q: must be fees or experience", f.sort)
		}
		filters = filters.WithSort(s)
	}

	return service.EncodeFilters(filters), nil
}
