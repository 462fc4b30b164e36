// ABOUTME: Graphviz outcome graph generation
// ABOUTME: Renders profiles fanning out to their call outcome counts
package viz

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
)

type GraphGenerator struct {
	db *sql.DB
}

func NewGraphGenerator(database *sql.DB) *GraphGenerator {
	return &GraphGenerator{db: database}
}

// GenerateOutcomeGraph renders profiles and their call outcomes as a
// graph. With a profileID only that profile is drawn; otherwise every
// profile fans out to its outcome counts.
func (g *GraphGenerator) GenerateOutcomeGraph(profileID *uuid.UUID) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLabel("Call Outcomes")
	graph.SetRankDir(cgraph.LRRank)

	var profiles []models.Profile
	if profileID != nil {
		profile, err := db.GetProfile(g.db, *profileID)
		if err != nil {
			return "", err
		}
		profiles = []models.Profile{*profile}
	} else {
		profiles, err = db.ListProfiles(g.db)
		if err != nil {
			return "", fmt.Errorf("failed to fetch profiles: %w", err)
		}
	}

	for _, profile := range profiles {
		entries, err := db.ListHistoryForProfile(g.db, profile.ID)
		if err != nil {
			return "", fmt.Errorf("failed to fetch history: %w", err)
		}

		counts := make(map[models.Status]int)
		for _, entry := range entries {
			counts[entry.Status]++
		}

		profileNode, _ := graph.CreateNodeByName(profile.Name)
		profileNode.SetShape(cgraph.BoxShape)

		for _, status := range models.AllStatuses {
			count, exists := counts[status]
			if !exists {
				continue
			}

			statusNode, _ := graph.CreateNodeByName(fmt.Sprintf("%s: %s", profile.Name, status))
			statusNode.SetLabel(string(status))

			edge, _ := graph.CreateEdgeByName("", profileNode, statusNode)
			edge.SetLabel(fmt.Sprintf("%d", count))
		}
	}

	// Generate DOT source
	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
