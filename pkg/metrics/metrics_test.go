package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When created with a fresh registry", func() {
			m := NewManager(WithRegistry(prometheus.NewRegistry()))

			Convey("Then it registers without panicking", func() {
				So(m, ShouldNotBeNil)
			})
		})

		Convey("When created with custom options", func() {
			m := NewManager(
				WithRegistry(prometheus.NewRegistry()),
				WithNamespace("custom"),
				WithSubsystem("svc"),
				WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then the options apply", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "custom")
				So(m.subsystem, ShouldEqual, "svc")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
			})
		})
	})
}

func TestRecordFunctions(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package funcs", func() {
			record := func() {
				RecordHTTPRequest("products", "GET", "200")
				RecordHTTPRequestDuration("products", "GET", "200", 1.25)
				RecordAuthFailure("unauthenticated")
				RecordAuthFailure("forbidden")
				RecordRecordCreated("users")
				RecordRecordDeleted("principals")
				RecordSearch("restaurants")
				UpdateStoreRecords("products", 100)
				ObservePageLimit(10)
			}

			Convey("Then none of them panic", func() {
				So(record, ShouldNotPanic)
			})
		})

		Convey("When gathering the custom registry", func() {
			RecordHTTPRequest("profile", "GET", "401")
			families, err := GetRegistry().Gather()

			Convey("Then the registered families are present", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["baedal_api_http_requests_total"], ShouldBeTrue)
				So(names["baedal_api_auth_failures_total"], ShouldBeTrue)
			})
		})
	})
}
