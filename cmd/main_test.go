package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/hansik/baedal/internal/adapters/http/api"
	app "github.com/hansik/baedal/internal/app"
	"github.com/hansik/baedal/internal/config"
	"github.com/hansik/baedal/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When testing configuration loading", func() {
			t.Setenv("BAEDAL_ADDR", ":8080")
			t.Setenv("BAEDAL_CATALOG_SIZE", "50")

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CatalogSize, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithCatalogSize(10),
					app.WithPageLimits(5, 50),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			ctx := context.Background()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			apiServer := api.NewServer(svc, svc)
			apiServer.Register(ctx, mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           api.RequestIDMiddleware(mux),
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should be configured", func() {
				convey.So(srv.Handler, convey.ShouldNotBeNil)
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
			})
		})
	})
}
