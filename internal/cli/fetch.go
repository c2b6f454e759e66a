package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache match events and lineups",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

// runFetch warms the on-disk cache so later commands work offline.
func runFetch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	events, err := client.MatchEvents(cmd.Context(), matchID)
	if err != nil {
		return fmt.Errorf("fetch events for match %d: %w", matchID, err)
	}
	fmt.Fprintf(os.Stdout, "Cached %d events for match %d\n", len(events), matchID)

	roster, err := client.Lineups(cmd.Context(), matchID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lineups unavailable for match %d: %v\n", matchID, err)
		return nil
	}
	for side, players := range roster {
		fmt.Fprintf(os.Stdout, "Cached lineup for %s (%d players)\n", side, len(players))
	}
	return nil
}
