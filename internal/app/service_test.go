package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/adapters/statsbomb"
	"github.com/coachos/pitchpilot/internal/domain/analysis"
)

const matchJSON = `[
  {"id":"m1","period":1,"minute":23,"second":14,
   "type":{"name":"Shot"},"team":{"name":"Argentina"},
   "player":{"id":5503,"name":"Lionel Andrés Messi Cuccittini"},
   "location":[108.0,40.0],
   "shot":{"outcome":{"name":"Goal"},"statsbomb_xg":0.3}},
  {"id":"m2","period":1,"minute":30,"second":0,
   "type":{"name":"Pass"},"team":{"name":"Argentina"},
   "player":{"id":5503,"name":"Lionel Andrés Messi Cuccittini"},
   "location":[110.0,40.0],
   "pass":{"end_location":[20.0,40.0],"outcome":{"name":"Incomplete"}}},
  {"id":"m3","period":2,"minute":80,"second":0,
   "type":{"name":"Shot"},"team":{"name":"France"},
   "player":{"id":3009,"name":"Kylian Mbappé Lottin"},
   "location":[105.0,38.0],
   "shot":{"outcome":{"name":"Goal"},"statsbomb_xg":0.6}}
]`

const lineupsJSON = `[
  {"team_id":779,"team_name":"Argentina","lineup":[
    {"player_id":5503,"player_name":"Lionel Andrés Messi Cuccittini",
     "player_nickname":"Lionel Messi","jersey_number":10}]},
  {"team_id":771,"team_name":"France","lineup":[
    {"player_id":3009,"player_name":"Kylian Mbappé Lottin",
     "player_nickname":"Kylian Mbappé","jersey_number":10}]}
]`

func testService(srvURL string) *Service {
	client := statsbomb.NewClient(statsbomb.WithBaseURL(srvURL))
	return New(
		WithClient(client),
		WithDefaultMatch(42),
		WithHomeSide("Argentina"),
		WithTopN(5, 50),
	)
}

func matchServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events/42.json":
			_, _ = w.Write([]byte(matchJSON))
		case "/lineups/42.json":
			_, _ = w.Write([]byte(lineupsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestService(t *testing.T) {
	convey.Convey("Given a service backed by a match server", t, func() {
		ctx := context.Background()
		srv := matchServer()
		defer srv.Close()
		svc := testService(srv.URL)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)

		convey.Convey("When analyzing a player on the default match", func() {
			report, err := svc.PlayerAnalysis(ctx, 0, analysis.PlayerQuery{Name: "Lionel Messi"}, 0)

			convey.Convey("Then the roster nickname resolves to event names", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(report.Summary.Outcome, convey.ShouldEqual, analysis.OutcomeAnalyzed)
				convey.So(report.Summary.Team, convey.ShouldEqual, "Argentina")
				convey.So(report.Summary.TotalActions, convey.ShouldEqual, 2)
				convey.So(report.Highlights, convey.ShouldHaveLength, 1)
				convey.So(report.Highlights[0].Label, convey.ShouldEqual, "GOAL SCORED")
				convey.So(report.Lowlights, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When fetching match highlights", func() {
			moments, err := svc.MatchHighlights(ctx, 42, 5)
			convey.So(err, convey.ShouldBeNil)
			convey.So(moments, convey.ShouldHaveLength, 2)
		})

		convey.Convey("When computing the game state", func() {
			snap, err := svc.GameState(ctx, 42)

			convey.Convey("Then it reflects the full replay", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(snap.Home, convey.ShouldEqual, "Argentina")
				convey.So(snap.HomeGoals, convey.ShouldEqual, 1)
				convey.So(snap.AwayGoals, convey.ShouldEqual, 1)
				convey.So(snap.QualityDiff, convey.ShouldAlmostEqual, -0.3, 1e-9)
			})
		})

		convey.Convey("When computing advanced metrics", func() {
			adv, err := svc.AdvancedMatch(ctx, 42)
			convey.So(err, convey.ShouldBeNil)
			convey.So(adv.PressuredPassAccuracy, convey.ShouldEqual, "N/A")
		})

		convey.Convey("When a top-n above the cap is requested", func() {
			_, err := svc.MatchHighlights(ctx, 42, 9999)

			convey.Convey("Then the request still succeeds, capped", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the match cannot be loaded", func() {
			_, err := svc.MatchHighlights(ctx, 404404, 5)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("Then service stats report the configuration", func() {
			stats := svc.GetStats()
			convey.So(stats["default_match"], convey.ShouldEqual, 42)
			convey.So(svc.MaxTopN(), convey.ShouldEqual, 50)
		})
	})
}
