package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coachos/pitchpilot/internal/adapters/store"
	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

var playerID int

var playerCmd = &cobra.Command{
	Use:   "player [name...]",
	Short: "Highlight and lowlight analysis for one player",
	Long:  "Replay the match and rank the player's best and worst moments. Identify the player by name or --id.",
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().IntVar(&playerID, "id", 0, "numeric player id (preferred over name)")
}

// runPlayer analyzes one player and prints summary plus moment tables.
func runPlayer(cmd *cobra.Command, args []string) error {
	query := analysis.PlayerQuery{ID: playerID, Name: strings.Join(args, " ")}
	if query.ID == 0 && query.Name == "" {
		return fmt.Errorf("a player name or --id is required")
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	report, err := svc.PlayerAnalysis(cmd.Context(), matchID, query, topN)
	if err != nil {
		return fmt.Errorf("analyze player: %w", err)
	}

	switch report.Summary.Outcome {
	case analysis.OutcomeNotFound:
		fmt.Fprintf(os.Stderr, "No player matching %q found in match %d\n", query.Name, matchID)
		return nil
	case analysis.OutcomeDidNotPlay:
		fmt.Fprintf(os.Stdout, "%s was in the squad but recorded no events in match %d\n",
			report.Summary.Player, matchID)
		return nil
	}

	printSummary(os.Stdout, report.Summary)
	printMoments(os.Stdout, "HIGHLIGHTS", report.Highlights, svc.VideoURL)
	printMoments(os.Stdout, "LOWLIGHTS", report.Lowlights, svc.VideoURL)

	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()
		if err := db.SaveReport(matchID, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nSaved report to %s\n", dbPath)
	}
	return nil
}
