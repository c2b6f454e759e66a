package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

var advancedID int

var advancedCmd = &cobra.Command{
	Use:   "advanced [name...]",
	Short: "Progression and pressure metrics",
	Long:  "Compute progressive passes/carries, under-pressure actions and zone entries. Without a player the metrics cover the whole match.",
	RunE:  runAdvanced,
}

func init() {
	advancedCmd.Flags().IntVar(&advancedID, "id", 0, "numeric player id (preferred over name)")
}

func runAdvanced(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	query := analysis.PlayerQuery{ID: advancedID, Name: strings.Join(args, " ")}
	var adv analysis.Advanced
	var title string
	if query.ID == 0 && query.Name == "" {
		adv, err = svc.AdvancedMatch(cmd.Context(), matchID)
		title = fmt.Sprintf("MATCH %d", matchID)
	} else {
		adv, err = svc.AdvancedPlayer(cmd.Context(), matchID, query)
		title = strings.ToUpper(query.Name)
	}
	if err != nil {
		return fmt.Errorf("advanced metrics: %w", err)
	}

	printAdvanced(os.Stdout, title, adv)
	return nil
}
