package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// printSummary prints the player analysis header block.
func printSummary(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\n%s (%s)\n", s.Player, s.Team)
	fmt.Fprintf(w, "Total highlight score: %+.2f  |  Value added: %+.2f\n", s.TotalImpact, s.TotalBaseValue)
	fmt.Fprintf(w, "Actions: %d (%d positive, %d negative)  |  Moments kept: %d  |  Pass accuracy: %s\n",
		s.TotalActions, s.PositiveActions, s.NegativeActions, s.MomentsKept, s.PassAccuracy)

	active := make([]string, 0, len(s.Oracles))
	for name, loaded := range s.Oracles {
		if loaded {
			active = append(active, name)
		}
	}
	if len(active) == 0 {
		fmt.Fprintln(w, "Scoring mode: heuristic (no models loaded)")
	} else {
		fmt.Fprintf(w, "Scoring mode: model-assisted (%d models)\n", len(active))
	}
}

// printMoments prints a ranked moment table. videoURL may return "" when no
// replay video is configured; the column is still printed for alignment.
func printMoments(w io.Writer, title string, moments []analysis.Moment, videoURL func(period, minute, second int) string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(moments) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	table := newTable(w)
	table.Header("#", "TIME", "PLAYER", "TYPE", "DESCRIPTION", "SCORE", "VALUE", "XT", "VIDEO")

	for i, m := range moments {
		url := "—"
		if u := videoURL(m.Period, m.Minute, m.Second); u != "" {
			url = u
		}
		table.Append(
			strconv.Itoa(i+1),
			m.Clock,
			m.Player,
			string(m.EventType),
			m.Label,
			fmt.Sprintf("%+.2f", m.Impact),
			fmt.Sprintf("%+.2f", m.BaseValue),
			fmt.Sprintf("%+.3f", m.SpatialDelta),
			url,
		)
	}
	table.Render()
}

// printAdvanced prints the progression/pressure metric table.
func printAdvanced(w io.Writer, title string, adv analysis.Advanced) {
	fmt.Fprintf(w, "\nADVANCED METRICS: %s\n", title)

	table := newTable(w)
	table.Header("METRIC", "VALUE")
	table.Append("Progressive passes", strconv.Itoa(adv.ProgressivePasses))
	table.Append("Progressive carries", strconv.Itoa(adv.ProgressiveCarries))
	table.Append("Threat progressed", fmt.Sprintf("%.3f", adv.ValueProgressed))
	table.Append("Actions under pressure", strconv.Itoa(adv.ActionsUnderPressure))
	table.Append("Passes under pressure", strconv.Itoa(adv.PassesUnderPressure))
	table.Append("Completed under pressure", strconv.Itoa(adv.CompletedUnderPressure))
	table.Append("Pressured pass accuracy", adv.PressuredPassAccuracy)
	table.Append("Final third entries", strconv.Itoa(adv.FinalThirdEntries))
	table.Append("Box entries", strconv.Itoa(adv.BoxEntries))
	table.Render()
}
