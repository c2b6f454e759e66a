// Package cli implements the pitchctl command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coachos/pitchpilot/internal/adapters/cache"
	"github.com/coachos/pitchpilot/internal/adapters/statsbomb"
	"github.com/coachos/pitchpilot/internal/adapters/video"
	"github.com/coachos/pitchpilot/internal/app"
	"github.com/coachos/pitchpilot/internal/domain/oracle"
	"github.com/coachos/pitchpilot/pkg/logger"
)

var (
	dataDir   string
	modelsDir string
	matchID   int
	homeSide  string
	topN      int
	dbPath    string
	videoID   string
)

var rootCmd = &cobra.Command{
	Use:   "pitchctl",
	Short: "Match highlight analysis tool",
	Long:  "Replay match event data and compute player highlights, lowlights and advanced metrics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory for cached match data")
	rootCmd.PersistentFlags().StringVar(&modelsDir, "models-dir", "./models", "directory holding probability model files")
	rootCmd.PersistentFlags().IntVar(&matchID, "match", 3869685, "match id to analyze")
	rootCmd.PersistentFlags().StringVar(&homeSide, "home", "Argentina", "side whose perspective win-probability deltas take")
	rootCmd.PersistentFlags().IntVar(&topN, "top", 5, "number of highlights and lowlights to keep")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "optional SQLite database to persist results")
	rootCmd.PersistentFlags().StringVar(&videoID, "video", "", "YouTube video id for replay links")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(highlightsCmd)
	rootCmd.AddCommand(advancedCmd)
}

// newClient builds a disk-cached match data client from the persistent flags.
func newClient() (*statsbomb.Client, error) {
	disk, err := cache.NewDisk(dataDir)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	return statsbomb.NewClient(
		statsbomb.WithCache(disk),
		statsbomb.WithLogger(logger.Nop()),
	), nil
}

// newService builds a fully wired analysis service from the persistent flags.
func newService(cmd *cobra.Command) (*app.Service, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	oracles := oracle.Load(cmd.Context(), modelsDir, oracle.WithLogger(logger.Nop()))

	return app.New(
		app.WithClient(client),
		app.WithOracles(oracles),
		app.WithVideoSync(video.New(videoID, nil)),
		app.WithDefaultMatch(matchID),
		app.WithHomeSide(homeSide),
		app.WithTopN(topN, 50),
	), nil
}
