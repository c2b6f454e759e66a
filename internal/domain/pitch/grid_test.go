package pitch

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/coachos/pitchpilot/internal/domain/event"
)

func TestCell(t *testing.T) {
	convey.Convey("Given the threat grid", t, func() {
		convey.Convey("When mapping interior coordinates", func() {
			col, row := Cell(60, 40)
			convey.So(col, convey.ShouldEqual, 6)
			convey.So(row, convey.ShouldEqual, 4)
		})

		convey.Convey("When mapping the origin", func() {
			col, row := Cell(0, 0)
			convey.So(col, convey.ShouldEqual, 0)
			convey.So(row, convey.ShouldEqual, 0)
		})

		convey.Convey("When mapping the far edges", func() {
			convey.Convey("Then x=120 clamps into the last column", func() {
				col, row := Cell(120, 40)
				convey.So(col, convey.ShouldEqual, 11)
				convey.So(row, convey.ShouldEqual, 4)
			})

			convey.Convey("And y=80 clamps into the last row", func() {
				col, row := Cell(60, 80)
				convey.So(col, convey.ShouldEqual, 6)
				convey.So(row, convey.ShouldEqual, 7)
			})
		})

		convey.Convey("When mapping out-of-range coordinates", func() {
			col, row := Cell(-5, -5)
			convey.So(col, convey.ShouldEqual, 0)
			convey.So(row, convey.ShouldEqual, 0)

			col, row = Cell(500, 500)
			convey.So(col, convey.ShouldEqual, 11)
			convey.So(row, convey.ShouldEqual, 7)
		})
	})
}

func TestCellValue(t *testing.T) {
	convey.Convey("Given the threat grid", t, func() {
		convey.Convey("Then the defensive corner carries the lowest value", func() {
			convey.So(CellValue(0, 0), convey.ShouldEqual, 0.006)
		})

		convey.Convey("And the attacking corner carries the highest value", func() {
			convey.So(CellValue(120, 80), convey.ShouldEqual, 0.283)
		})

		convey.Convey("And values grow toward the attacking goal", func() {
			convey.So(CellValue(115, 45), convey.ShouldBeGreaterThan, CellValue(60, 45))
			convey.So(CellValue(60, 45), convey.ShouldBeGreaterThan, CellValue(5, 45))
		})
	})
}

func TestDelta(t *testing.T) {
	convey.Convey("Given ball movements", t, func() {
		convey.Convey("When both endpoints are known", func() {
			start := &event.Location{X: 60, Y: 40}
			end := &event.Location{X: 70, Y: 44}

			convey.Convey("Then the delta is the cell value difference", func() {
				convey.So(Delta(start, end), convey.ShouldAlmostEqual, 0.003, 1e-9)
			})

			convey.Convey("And moving backwards yields the negated delta", func() {
				convey.So(Delta(end, start), convey.ShouldAlmostEqual, -0.003, 1e-9)
			})
		})

		convey.Convey("When movement stays within one cell", func() {
			start := &event.Location{X: 61, Y: 41}
			end := &event.Location{X: 69, Y: 49}
			convey.So(Delta(start, end), convey.ShouldEqual, 0.0)
		})

		convey.Convey("When an endpoint is missing", func() {
			loc := &event.Location{X: 60, Y: 40}
			convey.So(Delta(nil, loc), convey.ShouldEqual, 0.0)
			convey.So(Delta(loc, nil), convey.ShouldEqual, 0.0)
			convey.So(Delta(nil, nil), convey.ShouldEqual, 0.0)
		})
	})
}
