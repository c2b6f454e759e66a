package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coachos/pitchpilot/internal/adapters/store"
)

var highlightsCmd = &cobra.Command{
	Use:   "highlights",
	Short: "Top moments across the whole match",
	Args:  cobra.NoArgs,
	RunE:  runHighlights,
}

// runHighlights ranks the match's best moments across every player.
func runHighlights(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	moments, err := svc.MatchHighlights(cmd.Context(), matchID, topN)
	if err != nil {
		return fmt.Errorf("analyze match: %w", err)
	}

	snap, err := svc.GameState(cmd.Context(), matchID)
	if err == nil {
		fmt.Fprintf(os.Stdout, "\n%s %d – %d %s (xG diff %+.2f)\n",
			snap.Home, snap.HomeGoals, snap.AwayGoals, snap.Away, snap.QualityDiff)
	}
	printMoments(os.Stdout, "MATCH HIGHLIGHTS", moments, svc.VideoURL)

	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()
		if err := db.SaveMatchHighlights(matchID, moments); err != nil {
			return fmt.Errorf("save highlights: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nSaved highlights to %s\n", dbPath)
	}
	return nil
}
