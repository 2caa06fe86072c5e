package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	browseFilters filterFlags
	browseTimeout time.Duration
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse doctors interactively",
	Long: `Starts an interactive session reading commands from stdin. Every filter change
is recorded in a navigation history that 'back' and 'forward' walk through.
Type 'help' for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseFilters.register(browseCmd)
	browseCmd.Flags().DurationVar(&browseTimeout, "timeout", 30*time.Second, "how long to wait for the directory")
	rootCmd.AddCommand(browseCmd)
}

const browseHelp = `Commands:
  search [text]            search by name (no text clears the search)
  suggest <text>           show name suggestions
  select <n>               search by the n-th suggestion
  video | clinic | anymode set the consultation mode
  spec <name>              toggle a specialty
  unspec [name]            drop a specialty (no name drops all)
  specs [text]             list specialties
  sort fees|experience|none
  remove <field> [value]   remove one filter (search, consultation, specialties, sort)
  clear                    clear consultation, specialties and sort
  reset                    clear every filter including search
  page <n> | next | prev   move between pages
  all | less               list every match, or go back to pages
  back | forward           walk the navigation history
  url                      print the current query string
  reload                   fetch the directory again
  quit                     leave`

func runBrowse(cmd *cobra.Command, _ []string) error {
	query, err := browseFilters.initialQuery()
	if err != nil {
		return err
	}

	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	b := &browser{
		cmd:     cmd,
		history: service.NewHistory(query),
		timeout: browseTimeout,
	}
	b.session = app.NewBrowseSession(b.history)

	ctx, cancel := context.WithTimeout(cmd.Context(), browseTimeout)
	err = b.session.Start(ctx)
	cancel()
	if err != nil {
		cmd.PrintErrln(renderLoadFailure())
	} else {
		cmd.Print(renderList(b.session.View()))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	cmd.Print("> ")
	for scanner.Scan() {
		quit, err := b.exec(cmd.Context(), scanner.Text())
		if err != nil {
			cmd.PrintErrln(errorStyle.Render(err.Error()))
		}
		if quit {
			return nil
		}
		cmd.Print("> ")
	}
	return scanner.Err()
}

// browser executes one command line at a time against a session.
type browser struct {
	cmd         *cobra.Command
	session     *usecase.BrowseSession
	history     *service.History
	timeout     time.Duration
	suggestions []entity.Doctor
}

func (b *browser) exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch name {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		b.cmd.Println(browseHelp)
		return false, nil
	case "url":
		b.cmd.Println("?" + b.history.Query())
		return false, nil
	case "suggest":
		b.suggestions = b.session.Suggestions(arg)
		resp := converter.SuggestionsToResponse(b.suggestions, b.session.Filters())
		b.cmd.Print(renderSuggestions(resp.Suggestions))
		return false, nil
	case "specs":
		resp := converter.SpecialtiesToResponse(service.SearchSpecialties(arg))
		b.cmd.Print(renderSpecialties(resp.Specialties, b.session.Filters().HasSpecialty))
		return false, nil
	case "search":
		b.session.SetSearch(arg)
	case "select":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(b.suggestions) {
			return false, fmt.Errorf("no suggestion %q, run 'suggest <text>' first", arg)
		}
		b.session.SelectDoctor(b.suggestions[n-1])
		b.suggestions = nil
	case "video":
		b.session.SetConsultationType(entity.ConsultationVideo)
	case "clinic":
		b.session.SetConsultationType(entity.ConsultationClinic)
	case "anymode":
		b.session.SetConsultationType(entity.ConsultationNone)
	case "spec":
		if arg == "" {
			return false, fmt.Errorf("usage: spec <name>")
		}
		b.session.ToggleSpecialty(resolveSpecialty(arg))
	case "unspec":
		if arg != "" {
			arg = resolveSpecialty(arg)
		}
		b.session.RemoveFilter(entity.FieldSpecialties, arg)
	case "sort":
		switch strings.ToLower(arg) {
		case "fees":
			b.session.SetSort(entity.SortFees)
		case "experience":
			b.session.SetSort(entity.SortExperience)
		case "none", "":
			b.session.SetSort(entity.SortNone)
		default:
			return false, fmt.Errorf("unknown sort %q", arg)
		}
	case "remove":
		field, value, _ := strings.Cut(arg, " ")
		switch f := entity.FilterField(strings.ToLower(field)); f {
		case entity.FieldSearch, entity.FieldConsultation, entity.FieldSort:
			b.session.RemoveFilter(f, "")
		case entity.FieldSpecialties:
			if value != "" {
				value = resolveSpecialty(strings.TrimSpace(value))
			}
			b.session.RemoveFilter(f, value)
		default:
			return false, fmt.Errorf("unknown filter %q", field)
		}
	case "clear":
		b.session.ClearFilters()
	case "reset":
		b.session.ResetFilters()
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil || !b.session.GoToPage(n) {
			return false, fmt.Errorf("no page %q", arg)
		}
	case "all":
		b.session.SetExpanded(true)
	case "less":
		b.session.SetExpanded(false)
	case "next":
		if !b.session.NextPage() {
			return false, fmt.Errorf("already on the last page")
		}
	case "prev":
		if !b.session.PrevPage() {
			return false, fmt.Errorf("already on the first page")
		}
	case "back":
		if !b.history.Back() {
			return false, fmt.Errorf("nothing to go back to")
		}
		b.session.LocationChanged()
	case "forward":
		if !b.history.Forward() {
			return false, fmt.Errorf("nothing to go forward to")
		}
		b.session.LocationChanged()
	case "reload":
		rctx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		if err := b.session.Reload(rctx); err != nil {
			b.cmd.PrintErrln(renderLoadFailure())
			return false, nil
		}
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", name)
	}

	b.cmd.Print(renderList(b.session.View()))
	return false, nil
}

// resolveSpecialty maps user input onto the vocabulary by name or display label,
// ignoring case. Unknown input is used as typed.
func resolveSpecialty(input string) string {
	for _, s := range entity.Specialties {
		if strings.EqualFold(s, input) || strings.EqualFold(entity.SpecialtyLabel(s), input) {
			return s
		}
	}
	return input
}
