package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MadAppGang/httplog"
	lzap "github.com/MadAppGang/httplog/zap"
	gorilla "github.com/gorilla/handlers"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/handlers"
	"github.com/likhonsheikh/tetheros-go/services"
)

func NewHttpServer(lc fx.Lifecycle, mux *http.ServeMux, cfg *config.Config, log *zap.Logger) *http.Server {
	requestLogger := httplog.LoggerWithFormatter(lzap.ZapLogger(log, zap.InfoLevel, "request"))

	root := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(gorilla.RecoveryHandler()(requestLogger(mux)))

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      root,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			fmt.Println("Starting HTTP server at", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func NewServeMux(routers []handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, router := range routers {
		router.ServeHttp(mux)
	}
	return mux
}

// RunMarketFeed ties the polling loop to the app lifecycle so the interval
// task is always cancelled on shutdown.
func RunMarketFeed(lc fx.Lifecycle, feed services.MarketFeedService) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return feed.Start()
		},
		OnStop: func(context.Context) error {
			feed.Stop()
			return nil
		},
	})
}
