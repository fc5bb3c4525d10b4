package cmd

import (
	"fmt"
	"strings"

	"github.com/Bryne19/deanza-course-planner/pkg/config"
	"github.com/Bryne19/deanza-course-planner/pkg/ratings"
	"github.com/Bryne19/deanza-course-planner/pkg/schedule"
	"github.com/Bryne19/deanza-course-planner/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackTerm = "W2026"

var searchCmd = &cobra.Command{
	Use:   "search <department> <course>",
	Short: "Search the De Anza listings for a course",
	Long: `Search the public class listings for all sections of a course,
look up each professor on RateMyProfessors, and print the sections
sorted by rating (e.g. 'deanza-planner search MATH 1A').`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		department := args[0]
		courseCode := strings.Join(args[1:], " ")

		term, _ := cmd.Flags().GetString("term")
		noRatings, _ := cmd.Flags().GetBool("no-ratings")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if term == "" {
			term = cfg.DefaultTerm
		}
		if term == "" {
			term = fallbackTerm
		}

		sections, err := searchSections(department, courseCode, term)
		if err != nil {
			return err
		}

		if len(sections) == 0 {
			fmt.Printf("No sections found for %s %s in term %s.\n",
				strings.ToUpper(department), strings.ToUpper(courseCode), term)
			return nil
		}

		if !noRatings {
			attachRatings(sections, cfg.SchoolID)
			scraper.SortByRating(sections)
		}

		printSections(sections, cfg.AccentColor)
		return nil
	},
}

// searchSections fetches and parses the listings, attaching parsed meeting
// times to every section.
func searchSections(department, courseCode, term string) ([]scraper.CourseSection, error) {
	client := scraper.NewClient()

	var sections []scraper.CourseSection
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching %s %s (%s)...", strings.ToUpper(department), strings.ToUpper(courseCode), term)).
		Action(func() {
			sections, err = client.SearchCourse(department, courseCode, term)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}

	for i := range sections {
		sections[i].TimeData = schedule.ParseClassTime(sections[i].ClassTime)
	}
	return sections, nil
}

// attachRatings looks up each distinct professor once and shares the result
// across their sections. Lookup misses leave the rating nil.
func attachRatings(sections []scraper.CourseSection, schoolID string) {
	if schoolID == "" {
		schoolID = ratings.DefaultSchoolID
	}
	client := ratings.NewClient(schoolID)

	byProfessor := make(map[string]*ratings.Rating)
	var order []string
	for _, s := range sections {
		if s.Professor == "TBA" {
			continue
		}
		if _, ok := byProfessor[s.Professor]; !ok {
			byProfessor[s.Professor] = nil
			order = append(order, s.Professor)
		}
	}

	_ = spinner.New().
		Title(fmt.Sprintf("Looking up %d professors on RateMyProfessors...", len(order))).
		Action(func() {
			for _, name := range order {
				byProfessor[name] = client.Lookup(name)
			}
		}).
		Run()

	for i := range sections {
		sections[i].Ratings = byProfessor[sections[i].Professor]
	}
}

// displayName title-cases professor names the page shipped in all caps.
func displayName(name string) string {
	if name == "TBA" || name != strings.ToUpper(name) {
		return name
	}
	return cases.Title(language.AmericanEnglish).String(strings.ToLower(name))
}

func printSections(sections []scraper.CourseSection, accentColor string) {
	accent := "99"
	if accentColor != "" {
		accent = accentColor
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true).Padding(1, 0)
	crnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ratingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	header := sections[0].Course
	for _, s := range sections[1:] {
		if s.Course != header {
			header = "Saved schedule"
			break
		}
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s — %d sections", header, len(sections))))

	for _, s := range sections {
		fmt.Printf("• %s %s\n", crnStyle.Render(fmt.Sprintf("[%s]", s.CRN)), displayName(s.Professor))

		ratingStr := dimStyle.Render("no rating found")
		if s.Ratings != nil && s.Ratings.Score != nil {
			count := 0
			if s.Ratings.NumRatings != nil {
				count = *s.Ratings.NumRatings
			}
			ratingStr = ratingStyle.Render(fmt.Sprintf("%.1f/5 (%d ratings)", *s.Ratings.Score, count))
			if s.Ratings.Difficulty != nil {
				ratingStr += dimStyle.Render(fmt.Sprintf(" · difficulty %.1f", *s.Ratings.Difficulty))
			}
		}

		fmt.Printf("  %s | %s | %s\n\n", s.ClassTime, s.Format, ratingStr)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("term", "t", "", "Term code (e.g. W2026), defaults to the configured term")
	searchCmd.Flags().Bool("no-ratings", false, "Skip the RateMyProfessors lookups")
}
