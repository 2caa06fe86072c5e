package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-doctor-directory/internal/service"

	"github.com/spf13/cobra"
)

var (
	listFilters filterFlags
	listPage    int
	listJSON    bool
	listAll     bool
	listTimeout time.Duration
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of doctors",
	Long: `Fetches the directory, applies the given filters and prints one page of doctor
cards. Filters may be given as flags, as a query string with --query, or both.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listFilters.register(listCmd)
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page to print")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the page as JSON")
	listCmd.Flags().BoolVar(&listAll, "all", false, "print every matching doctor instead of one page")
	listCmd.Flags().DurationVar(&listTimeout, "timeout", 30*time.Second, "how long to wait for the directory")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	query, err := listFilters.initialQuery()
	if err != nil {
		return err
	}

	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), listTimeout)
	defer cancel()

	session := app.NewBrowseSession(service.NewHistory(query))
	if err := session.Start(ctx); err != nil {
		cmd.PrintErrln(renderLoadFailure())
		return fmt.Errorf("failed to fetch doctors: %w", err)
	}

	session.SetExpanded(listAll)
	if !listAll && listPage != 1 && !session.GoToPage(listPage) {
		return fmt.Errorf("page %d out of range (1-%d)", listPage, session.View().TotalPages)
	}

	view := session.View()
	if listJSON {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal doctors: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Print(renderList(view))
	return nil
}
