package runs

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/article-analytics/pkg/db"
)

// RunsAction lists recorded analysis runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-12s %-8s %-10s %-12s %-8s\n",
		"ID", "Created", "Interactions", "Users", "Articles", "Most Viewed", "Views")
	fmt.Println(strings.Repeat("-", 84))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-12d %-8d %-10d %-12d %-8d\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.InteractionCount,
			r.UniqueUsers,
			r.UniqueArticles,
			r.MostViewedArticleID,
			r.MostViewedArticleViews,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))

	return nil
}
