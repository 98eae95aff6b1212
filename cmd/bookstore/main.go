package main

import (
	"context"
	"log/slog"
	"os"

	"bookstore/config"
	"bookstore/internal/delivery"
	"bookstore/internal/delivery/http"
	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router/handler"
	"bookstore/internal/domain/service"
	"bookstore/internal/infra/auth"
	logs "bookstore/internal/infra/log"
	"bookstore/internal/infra/persistence/mongodb"
	"bookstore/internal/usecase/impl"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureIndexes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewBookRepository,
			mongodb.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured work factor
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		// Use default cost if not configured
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// ensureIndexes creates the collection indexes the API relies on before the
// server starts accepting traffic.
func ensureIndexes(lc fx.Lifecycle, db *mongo.Database, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := mongodb.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			logger.Info("MongoDB indexes ensured")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
