package components

import (
	"fitclass-server/internal/infra/cache"
	"fitclass-server/internal/infra/readstore"
	"fitclass-server/internal/infra/repository"
	"fitclass-server/internal/pkg/config"
	"fitclass-server/internal/usecase/commands"
	"fitclass-server/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewClassRepository,
			fx.As(new(commands.ClassRepository)),
		),
		fx.Annotate(
			repository.NewResultRepository,
			fx.As(new(commands.ResultRepository)),
		),
		fx.Annotate(
			readstore.NewClassReadStore,
			fx.As(new(queries.ClassReadStore)),
		),
		fx.Annotate(
			NewListingCache,
			fx.As(new(queries.ListingCache)),
			fx.As(new(commands.ListingCache)),
		),
	),
)

func NewListingCache(rdb *redis.Client, cfg config.Config) *cache.ClassListingCache {
	return cache.NewClassListingCache(rdb, cfg.Redis.CacheTTL)
}
