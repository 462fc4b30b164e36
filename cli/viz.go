// ABOUTME: Visualization CLI commands
// ABOUTME: Terminal dashboard and graphviz outcome graph output
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/viz"
)

// DashboardCommand prints the ASCII overview of all calling activity.
func DashboardCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats, err := viz.GenerateDashboardStats(database)
	if err != nil {
		return fmt.Errorf("failed to generate dashboard: %w", err)
	}

	fmt.Print(viz.RenderDashboard(stats))
	return nil
}

// OutcomeGraphCommand renders the outcome graph as DOT source.
func OutcomeGraphCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	var profileID *uuid.UUID
	if fs.NArg() > 0 {
		profile, err := resolveProfile(database, fs.Arg(0))
		if err != nil {
			return err
		}
		profileID = &profile.ID
	}

	generator := viz.NewGraphGenerator(database)
	dot, err := generator.GenerateOutcomeGraph(profileID)
	if err != nil {
		return fmt.Errorf("failed to generate graph: %w", err)
	}

	if *output == "" {
		fmt.Print(dot)
		return nil
	}

	if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	fmt.Printf("✓ Graph written to %s\n", *output)
	return nil
}
