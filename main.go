package main

import (
	"net/http"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/db"
	"github.com/likhonsheikh/tetheros-go/handlers"
	"github.com/likhonsheikh/tetheros-go/services"
	"github.com/madflojo/tasks"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			NewHttpServer,
			fx.Annotate(
				NewServeMux,
				fx.ParamTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewAuthHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewMarketHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewGatewayHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			handlers.NewMiddlewareHandler,
			services.NewGatewayService,
			services.NewWalletService,
			services.NewWalletStoreService,
			services.NewMarketFeedService,
			services.NewExchangeService,
			services.NewAuthService,
			services.NewWidgetPaymentGateway,
			db.GetDataDBConnection,
			tasks.New,
			zap.NewProduction,
		),
		fx.Invoke(
			RunMarketFeed,
			func(*http.Server) {},
		),
	).Run()
}
