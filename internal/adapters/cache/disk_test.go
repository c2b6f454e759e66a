package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDiskCache(t *testing.T) {
	convey.Convey("Given a disk cache", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		c, err := NewDisk(dir)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When a key was never written", func() {
			_, ok, err := c.Get(ctx, "events/42")

			convey.Convey("Then it is a miss, not an error", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a payload is written and read back", func() {
			payload := []byte(`[{"id":"x"}]`)
			convey.So(c.Set(ctx, "events/42", payload), convey.ShouldBeNil)

			data, ok, err := c.Get(ctx, "events/42")
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(data, convey.ShouldResemble, payload)

			convey.Convey("And the key flattens to a single file", func() {
				_, statErr := os.Stat(filepath.Join(dir, "events_42.json"))
				convey.So(statErr, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the cache directory nests under a missing parent", func() {
			nested, err := NewDisk(filepath.Join(dir, "a", "b"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(nested.Set(ctx, "lineups/42", []byte("{}")), convey.ShouldBeNil)
		})
	})
}

func TestNopCache(t *testing.T) {
	convey.Convey("Given the nop cache", t, func() {
		ctx := context.Background()
		c := Nop()

		convey.Convey("Then every read misses and writes vanish", func() {
			convey.So(c.Set(ctx, "k", []byte("v")), convey.ShouldBeNil)
			_, ok, err := c.Get(ctx, "k")
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}
