package page_test

import (
	"testing"

	"github.com/hansik/baedal/internal/domain/page"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given raw skip/limit inputs", t, func() {
		Convey("When the values are already in range", func() {
			w := page.Normalize(10, 20)

			Convey("Then they pass through unchanged", func() {
				So(w.Skip, ShouldEqual, 10)
				So(w.Limit, ShouldEqual, 20)
			})
		})

		Convey("When the limit exceeds the cap", func() {
			w := page.Normalize(0, 500)

			Convey("Then it is silently reduced to the cap", func() {
				So(w.Limit, ShouldEqual, page.MaxLimit)
			})

			Convey("And behaves identically to requesting the cap", func() {
				So(w, ShouldResemble, page.Normalize(0, 100))
			})
		})

		Convey("When the limit is below one", func() {
			Convey("Then it is raised to one", func() {
				So(page.Normalize(0, 0).Limit, ShouldEqual, 1)
				So(page.Normalize(0, -5).Limit, ShouldEqual, 1)
			})
		})

		Convey("When the skip is negative", func() {
			w := page.Normalize(-3, 10)

			Convey("Then it clamps to zero", func() {
				So(w.Skip, ShouldEqual, 0)
			})
		})

		Convey("When a custom cap is configured", func() {
			w := page.Normalize(0, 50, page.WithMaxLimit(25))

			Convey("Then the custom cap applies", func() {
				So(w.Limit, ShouldEqual, 25)
			})
		})
	})
}

func TestWindow_Bounds(t *testing.T) {
	Convey("Given a sequence of length 100", t, func() {
		const n = 100

		Convey("When the window fits inside the sequence", func() {
			lo, hi := page.Window{Skip: 10, Limit: 10}.Bounds(n)

			Convey("Then the range covers exactly the window", func() {
				So(lo, ShouldEqual, 10)
				So(hi, ShouldEqual, 20)
			})
		})

		Convey("When the window runs past the end", func() {
			lo, hi := page.Window{Skip: 90, Limit: 20}.Bounds(n)

			Convey("Then the range is truncated, not an error", func() {
				So(lo, ShouldEqual, 90)
				So(hi, ShouldEqual, 100)
			})
		})

		Convey("When the skip is at or past the end", func() {
			Convey("Then the range is empty", func() {
				lo, hi := page.Window{Skip: 100, Limit: 10}.Bounds(n)
				So(lo, ShouldEqual, hi)

				lo, hi = page.Window{Skip: 1000, Limit: 10}.Bounds(n)
				So(lo, ShouldEqual, hi)
			})
		})
	})
}

func TestCut(t *testing.T) {
	Convey("Given an ordered sequence", t, func() {
		s := make([]int, 0, 100)
		for i := 1; i <= 100; i++ {
			s = append(s, i)
		}

		Convey("When cutting a window past position 90 with limit 20", func() {
			got := page.Cut(s, page.Window{Skip: 90, Limit: 20})

			Convey("Then the tail items 91..100 are returned", func() {
				So(got, ShouldHaveLength, 10)
				So(got[0], ShouldEqual, 91)
				So(got[len(got)-1], ShouldEqual, 100)
			})
		})

		Convey("When the skip exceeds the length", func() {
			got := page.Cut(s, page.Window{Skip: 200, Limit: 10})

			Convey("Then the result is empty", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}
