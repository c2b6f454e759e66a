package testmatch

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

func TestGenerate(t *testing.T) {
	convey.Convey("Given a generation config", t, func() {
		cfg := Config{Home: "Alpha", Away: "Beta", Events: 120, Seed: 7}

		convey.Convey("When generating a match", func() {
			events, roster := Generate(cfg)

			convey.Convey("Then the requested number of events comes back ordered", func() {
				convey.So(events, convey.ShouldHaveLength, 120)
				for i := 1; i < len(events); i++ {
					prev, cur := events[i-1], events[i]
					ordered := cur.Period > prev.Period ||
						(cur.Period == prev.Period && cur.Minute >= prev.Minute)
					convey.So(ordered, convey.ShouldBeTrue)
				}
			})

			convey.Convey("And every event belongs to a rostered player", func() {
				for _, ev := range events {
					convey.So(ev.Player, convey.ShouldNotBeNil)
					_, ok := roster.Find(ev.Player.ID, "")
					convey.So(ok, convey.ShouldBeTrue)
				}
			})

			convey.Convey("And each side fields a full lineup", func() {
				convey.So(roster["Alpha"], convey.ShouldHaveLength, 11)
				convey.So(roster["Beta"], convey.ShouldHaveLength, 11)
			})

			convey.Convey("And payloads match the event type", func() {
				for _, ev := range events {
					switch ev.Type {
					case event.TypePass:
						convey.So(ev.Pass, convey.ShouldNotBeNil)
						convey.So(ev.Pass.EndLocation, convey.ShouldNotBeNil)
					case event.TypeShot:
						convey.So(ev.Shot, convey.ShouldNotBeNil)
						convey.So(ev.Shot.HasQuality, convey.ShouldBeTrue)
					case event.TypeDribble:
						convey.So(ev.Dribble, convey.ShouldNotBeNil)
					}
				}
			})
		})

		convey.Convey("When generating twice with the same seed", func() {
			first, _ := Generate(cfg)
			second, _ := Generate(cfg)

			convey.Convey("Then the matches are identical", func() {
				convey.So(second, convey.ShouldResemble, first)
			})
		})

		convey.Convey("When generating with different seeds", func() {
			first, _ := Generate(Config{Seed: 1})
			second, _ := Generate(Config{Seed: 2})

			convey.Convey("Then the matches differ", func() {
				convey.So(second, convey.ShouldNotResemble, first)
			})
		})

		convey.Convey("When the config is zero-valued", func() {
			events, roster := Generate(Config{})

			convey.Convey("Then defaults fill in", func() {
				convey.So(events, convey.ShouldHaveLength, 200)
				convey.So(roster, convey.ShouldHaveLength, 2)
			})
		})
	})
}
