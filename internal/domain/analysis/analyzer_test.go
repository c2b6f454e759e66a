package analysis

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

const (
	homeTeam = "Argentina"
	awayTeam = "France"
)

var subjectPlayer = event.Player{ID: 5503, Name: "Lionel Messi"}

func fixtureRoster() event.Roster {
	return event.Roster{
		homeTeam: {
			{ID: 5503, Name: "Lionel Messi", Jersey: 10},
			{ID: 777, Name: "Bench Warmer", Jersey: 23},
		},
		awayTeam: {
			{ID: 3009, Name: "Kylian Mbappé", Jersey: 10},
		},
	}
}

// fixtureEvents is a small match where the subject produces two clear
// highlights, two clear lowlights, and two moments inside the neutral band.
func fixtureEvents() []event.Event {
	return []event.Event{
		// Goal assist: impact 1.0, highlight.
		{
			Type: event.TypePass, Period: 1, Minute: 10, Team: homeTeam, Player: &subjectPlayer,
			Location: &event.Location{X: 60, Y: 40},
			Pass:     &event.PassDetail{EndLocation: &event.Location{X: 100, Y: 40}, GoalAssist: true},
		},
		// Regular pass: impact 0.003, inside the neutral band.
		{
			Type: event.TypePass, Period: 1, Minute: 20, Team: homeTeam, Player: &subjectPlayer,
			Location: &event.Location{X: 60, Y: 40},
			Pass:     &event.PassDetail{EndLocation: &event.Location{X: 70, Y: 44}},
		},
		// Failed pass with no geometry: impact exactly -0.1, still neutral.
		{
			Type: event.TypePass, Period: 1, Minute: 25, Team: homeTeam, Player: &subjectPlayer,
			Pass: &event.PassDetail{Failed: true},
		},
		// Failed pass losing territory: lowlight.
		{
			Type: event.TypePass, Period: 1, Minute: 30, Team: homeTeam, Player: &subjectPlayer,
			Location: &event.Location{X: 110, Y: 40},
			Pass:     &event.PassDetail{EndLocation: &event.Location{X: 20, Y: 40}, Failed: true},
		},
		// An opponent goal moves state but is not the subject's moment.
		{
			Type: event.TypeShot, Period: 2, Minute: 60, Team: awayTeam,
			Player:   &event.Player{ID: 3009, Name: "Kylian Mbappé"},
			Location: &event.Location{X: 108, Y: 40},
			Shot:     &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.4, HasQuality: true},
		},
		// Subject goal: impact 0.7, highlight.
		{
			Type: event.TypeShot, Period: 2, Minute: 70, Team: homeTeam, Player: &subjectPlayer,
			Location: &event.Location{X: 108, Y: 40},
			Shot:     &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.3, HasQuality: true},
		},
		// Yellow card: lowlight.
		{
			Type: event.TypeFoulCommitted, Period: 2, Minute: 85, Team: homeTeam, Player: &subjectPlayer,
			Foul: &event.FoulDetail{Card: event.CardYellow},
		},
	}
}

func TestAnalyzePlayer(t *testing.T) {
	convey.Convey("Given a match and a fully involved player", t, func() {
		ctx := context.Background()
		a := New()
		roster := fixtureRoster()
		events := fixtureEvents()

		convey.Convey("When analyzing by name", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Lionel Messi"}, homeTeam, 5)
			s := report.Summary

			convey.Convey("Then the summary identifies the player", func() {
				convey.So(s.Outcome, convey.ShouldEqual, OutcomeAnalyzed)
				convey.So(s.Player, convey.ShouldEqual, "Lionel Messi")
				convey.So(s.PlayerID, convey.ShouldEqual, 5503)
				convey.So(s.Team, convey.ShouldEqual, homeTeam)
			})

			convey.Convey("And totals cover every subject event", func() {
				convey.So(s.TotalActions, convey.ShouldEqual, 6)
				convey.So(s.PositiveActions, convey.ShouldEqual, 3)
				convey.So(s.NegativeActions, convey.ShouldEqual, 3)
			})

			convey.Convey("And pass accuracy counts completions over attempts", func() {
				convey.So(s.PassAttempts, convey.ShouldEqual, 4)
				convey.So(s.PassesCompleted, convey.ShouldEqual, 2)
				convey.So(s.PassAccuracy, convey.ShouldEqual, "50%")
			})

			convey.Convey("And only moments outside the neutral band are kept", func() {
				convey.So(report.Highlights, convey.ShouldHaveLength, 2)
				convey.So(report.Lowlights, convey.ShouldHaveLength, 2)
				convey.So(s.MomentsKept, convey.ShouldEqual, 4)
			})

			convey.Convey("And highlights sort by impact, best first", func() {
				convey.So(report.Highlights[0].Label, convey.ShouldEqual, "Goal Assist")
				convey.So(report.Highlights[1].Label, convey.ShouldEqual, "GOAL SCORED")
				convey.So(report.Highlights[0].Impact, convey.ShouldBeGreaterThanOrEqualTo, report.Highlights[1].Impact)
			})

			convey.Convey("And lowlights sort by impact, worst first", func() {
				convey.So(report.Lowlights[0].Label, convey.ShouldEqual, "Pass Failed (Lost Territory)")
				convey.So(report.Lowlights[1].Label, convey.ShouldEqual, "Yellow Card")
				convey.So(report.Lowlights[0].Impact, convey.ShouldBeLessThanOrEqualTo, report.Lowlights[1].Impact)
			})
		})

		convey.Convey("When analyzing by id only", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{ID: 5503}, homeTeam, 5)
			convey.So(report.Summary.Outcome, convey.ShouldEqual, OutcomeAnalyzed)
			convey.So(report.Summary.Player, convey.ShouldEqual, "Lionel Messi")
		})

		convey.Convey("When analyzing by name fragment", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "messi"}, homeTeam, 5)
			convey.So(report.Summary.Outcome, convey.ShouldEqual, OutcomeAnalyzed)
			convey.So(report.Summary.TotalActions, convey.ShouldEqual, 6)
		})

		convey.Convey("When truncating to a single highlight", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Lionel Messi"}, homeTeam, 1)
			convey.So(report.Highlights, convey.ShouldHaveLength, 1)
			convey.So(report.Lowlights, convey.ShouldHaveLength, 1)
			convey.So(report.Highlights[0].Label, convey.ShouldEqual, "Goal Assist")
		})

		convey.Convey("When analyzing the same input twice", func() {
			first := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Lionel Messi"}, homeTeam, 5)
			second := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Lionel Messi"}, homeTeam, 5)

			convey.Convey("Then the reports are identical", func() {
				convey.So(second, convey.ShouldResemble, first)
			})
		})

		convey.Convey("When the player is in the squad but never acts", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Bench Warmer"}, homeTeam, 5)

			convey.Convey("Then the outcome is did-not-play, not an error", func() {
				convey.So(report.Summary.Outcome, convey.ShouldEqual, OutcomeDidNotPlay)
				convey.So(report.Highlights, convey.ShouldBeEmpty)
				convey.So(report.Summary.TotalActions, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the query matches nobody", func() {
			report := a.AnalyzePlayer(ctx, events, roster, PlayerQuery{Name: "Zlatan"}, homeTeam, 5)
			convey.So(report.Summary.Outcome, convey.ShouldEqual, OutcomeNotFound)
		})

		convey.Convey("When there is no roster at all", func() {
			report := a.AnalyzePlayer(ctx, events, nil, PlayerQuery{Name: "Lionel Messi"}, homeTeam, 5)

			convey.Convey("Then the player still resolves from the events", func() {
				convey.So(report.Summary.Outcome, convey.ShouldEqual, OutcomeAnalyzed)
				convey.So(report.Summary.TotalActions, convey.ShouldEqual, 6)
			})
		})
	})
}

func TestAnalyzeMatch(t *testing.T) {
	convey.Convey("Given a full match", t, func() {
		ctx := context.Background()
		a := New()
		events := fixtureEvents()

		convey.Convey("When analyzing match-wide", func() {
			moments := a.AnalyzeMatch(ctx, events, homeTeam, 5)

			convey.Convey("Then moments from both sides rank together", func() {
				convey.So(moments, convey.ShouldHaveLength, 3)
				convey.So(moments[0].Label, convey.ShouldEqual, "Goal Assist")
				players := []string{moments[0].Player, moments[1].Player, moments[2].Player}
				convey.So(players, convey.ShouldContain, "Kylian Mbappé")
			})

			convey.Convey("And the ranking never increases", func() {
				for i := 1; i < len(moments); i++ {
					convey.So(moments[i].Impact, convey.ShouldBeLessThanOrEqualTo, moments[i-1].Impact)
				}
			})
		})

		convey.Convey("When truncating match highlights", func() {
			moments := a.AnalyzeMatch(ctx, events, homeTeam, 2)
			convey.So(moments, convey.ShouldHaveLength, 2)
		})
	})
}
