package oracle

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

func TestExtractPassFeatures(t *testing.T) {
	convey.Convey("Given pass events", t, func() {
		convey.Convey("When the pass has both endpoints", func() {
			ev := &event.Event{
				Type:          event.TypePass,
				Location:      &event.Location{X: 60, Y: 40},
				UnderPressure: true,
				Pass:          &event.PassDetail{EndLocation: &event.Location{X: 90, Y: 40}},
			}
			f := ExtractPassFeatures(ev)

			convey.Convey("Then geometry and pressure are derived", func() {
				convey.So(f, convey.ShouldNotBeNil)
				convey.So(f.Length, convey.ShouldAlmostEqual, 30.0, 1e-9)
				convey.So(f.Angle, convey.ShouldAlmostEqual, 0.0, 1e-9)
				convey.So(f.UnderPressure, convey.ShouldEqual, 1.0)
				convey.So(f.Vector(), convey.ShouldHaveLength, 7)
			})
		})

		convey.Convey("When the start location is missing", func() {
			ev := &event.Event{
				Type: event.TypePass,
				Pass: &event.PassDetail{EndLocation: &event.Location{X: 90, Y: 40}},
			}
			convey.So(ExtractPassFeatures(ev), convey.ShouldBeNil)
		})

		convey.Convey("When the end location is missing", func() {
			ev := &event.Event{
				Type:     event.TypePass,
				Location: &event.Location{X: 60, Y: 40},
				Pass:     &event.PassDetail{},
			}
			convey.So(ExtractPassFeatures(ev), convey.ShouldBeNil)
		})
	})
}

func TestExtractShotFeatures(t *testing.T) {
	convey.Convey("Given shot events", t, func() {
		convey.Convey("When shot from the penalty spot", func() {
			ev := &event.Event{
				Type:     event.TypeShot,
				Location: &event.Location{X: 108, Y: 40},
				Shot:     &event.ShotDetail{},
			}
			f := ExtractShotFeatures(ev)

			convey.Convey("Then distance is to the goal center", func() {
				convey.So(f, convey.ShouldNotBeNil)
				convey.So(f.DistToGoal, convey.ShouldAlmostEqual, 12.0, 1e-9)
				convey.So(f.Angle, convey.ShouldAlmostEqual, 0.0, 1e-9)
				convey.So(f.Vector(), convey.ShouldHaveLength, 5)
			})
		})

		convey.Convey("When shot from a tight angle", func() {
			ev := &event.Event{
				Type:     event.TypeShot,
				Location: &event.Location{X: 120, Y: 60},
				Shot:     &event.ShotDetail{},
			}
			f := ExtractShotFeatures(ev)
			convey.So(f.DistToGoal, convey.ShouldAlmostEqual, 20.0, 1e-9)
			convey.So(f.Angle, convey.ShouldAlmostEqual, math.Pi/2, 1e-9)
		})

		convey.Convey("When the location is missing", func() {
			ev := &event.Event{Type: event.TypeShot, Shot: &event.ShotDetail{}}
			convey.So(ExtractShotFeatures(ev), convey.ShouldBeNil)
		})
	})
}

func TestExtractWinFeatures(t *testing.T) {
	convey.Convey("Given match clocks", t, func() {
		convey.Convey("Then time remaining counts down from 90", func() {
			f := ExtractWinFeatures(30, 1, 0.5)
			convey.So(f.TimeRemaining, convey.ShouldEqual, 60.0)
			convey.So(f.ScoreDiff, convey.ShouldEqual, 1.0)
			convey.So(f.QualityDiff, convey.ShouldEqual, 0.5)
		})

		convey.Convey("And extra time clamps at zero remaining", func() {
			f := ExtractWinFeatures(104, -1, -0.2)
			convey.So(f.TimeRemaining, convey.ShouldEqual, 0.0)
		})
	})
}
