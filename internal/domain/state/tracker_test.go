package state

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

func TestTracker(t *testing.T) {
	convey.Convey("Given a fresh tracker", t, func() {
		tr := NewTracker("Argentina", "France")

		convey.Convey("Then the initial snapshot is all zeros", func() {
			snap := tr.Snapshot()
			convey.So(snap.Home, convey.ShouldEqual, "Argentina")
			convey.So(snap.Away, convey.ShouldEqual, "France")
			convey.So(snap.ScoreDiff, convey.ShouldEqual, 0)
			convey.So(snap.QualityDiff, convey.ShouldEqual, 0.0)
		})

		convey.Convey("When a home goal and a missed away chance are applied", func() {
			tr.Update(&event.Event{
				Type: event.TypeShot,
				Team: "Argentina",
				Shot: &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.3, HasQuality: true},
			})
			tr.Update(&event.Event{
				Type: event.TypeShot,
				Team: "France",
				Shot: &event.ShotDetail{Outcome: event.OutcomeSaved, Quality: 0.6, HasQuality: true},
			})

			convey.Convey("Then the snapshot carries home-relative differentials", func() {
				snap := tr.Snapshot()
				convey.So(snap.HomeGoals, convey.ShouldEqual, 1)
				convey.So(snap.AwayGoals, convey.ShouldEqual, 0)
				convey.So(snap.ScoreDiff, convey.ShouldEqual, 1)
				convey.So(snap.QualityDiff, convey.ShouldAlmostEqual, -0.3, 1e-9)
			})
		})

		convey.Convey("When non-shot events are applied", func() {
			tr.Update(&event.Event{Type: event.TypePass, Team: "Argentina", Pass: &event.PassDetail{}})
			tr.Update(&event.Event{Type: event.TypeFoulCommitted, Team: "France"})

			convey.Convey("Then nothing moves", func() {
				convey.So(tr.Snapshot(), convey.ShouldResemble, Snapshot{Home: "Argentina", Away: "France"})
			})
		})

		convey.Convey("When a shot carries no payload", func() {
			tr.Update(&event.Event{Type: event.TypeShot, Team: "Argentina"})
			convey.So(tr.Snapshot().QualityDiff, convey.ShouldEqual, 0.0)
		})

		convey.Convey("When a third side somehow shoots", func() {
			tr.Update(&event.Event{
				Type: event.TypeShot,
				Team: "Brazil",
				Shot: &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.5, HasQuality: true},
			})

			convey.Convey("Then it accumulates against the away side", func() {
				snap := tr.Snapshot()
				convey.So(snap.AwayGoals, convey.ShouldEqual, 1)
				convey.So(snap.ScoreDiff, convey.ShouldEqual, -1)
			})
		})
	})
}

func TestCompute(t *testing.T) {
	convey.Convey("Given a full event list", t, func() {
		events := []event.Event{
			{Type: event.TypeShot, Team: "Argentina", Shot: &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.75, HasQuality: true}},
			{Type: event.TypeShot, Team: "France", Shot: &event.ShotDetail{Outcome: event.OutcomeGoal, Quality: 0.76, HasQuality: true}},
			{Type: event.TypeShot, Team: "Argentina", Shot: &event.ShotDetail{Outcome: event.OutcomeOffT, Quality: 0.12, HasQuality: true}},
		}

		convey.Convey("When computing the final state", func() {
			snap := Compute(events, "Argentina", "France")

			convey.Convey("Then goals and quality both accumulate", func() {
				convey.So(snap.HomeGoals, convey.ShouldEqual, 1)
				convey.So(snap.AwayGoals, convey.ShouldEqual, 1)
				convey.So(snap.ScoreDiff, convey.ShouldEqual, 0)
				convey.So(snap.QualityDiff, convey.ShouldAlmostEqual, 0.11, 1e-9)
			})
		})
	})
}
