package app

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"marketofmanycards/market-api/app/auction"
	"marketofmanycards/market-api/app/card"
	"marketofmanycards/market-api/app/root"
	"marketofmanycards/market-api/app/sale"
	"marketofmanycards/market-api/app/user"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/middleware"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Origins     []string
	RateLimit   int
	MaxBodySize int64
	// CatalogTTL is how long catalog reads are cached. 0 turns caching off.
	CatalogTTL time.Duration
}

// NewRouter mounts every route under /api. ctx bounds the background work the
// middleware starts.
func NewRouter(ctx context.Context, d *internal.Deps, opts Options) *gin.Engine {
	router := gin.New()

	// cors refuses an empty origin list, without origins the API is same-origin only
	if len(opts.Origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.Origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: opts.RateLimit,
		Burst:             opts.RateLimit * 2,
	})
	if opts.RateLimit > 0 {
		go rateLimiter.Run(ctx)
	}

	catalog := newCatalogCache(opts.CatalogTTL)

	m := router.Group("/api", rateLimiter.Middleware(), middleware.BodySizeLimiter(opts.MaxBodySize))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/health		-> Checks that the database answers
		m.GET("/health", func(c *gin.Context) { root.Health(c, d) })
	}

	u := m.Group("/users")
	{
		// GET /api/users		-> Returns every user
		u.GET("", func(c *gin.Context) { user.UserList(c, d) })

		// GET /api/users/:id		-> Returns a single user
		u.GET("/:id", func(c *gin.Context) { user.UserFetch(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserCreate(c, d) })

		// PUT /api/users/:id		-> Replaces name, email and contact of a user
		u.PUT("/:id", func(c *gin.Context) { user.UserUpdate(c, d) })

		// DELETE /api/users/:id 	-> Deletes a user and handles their listings
		u.DELETE("/:id", func(c *gin.Context) { user.UserDelete(c, d) })

		// POST /api/users/:id/sales	-> Lists a new sale for the user
		u.POST("/:id/sales", func(c *gin.Context) { user.UserSaleCreate(c, d) })

		// GET /api/users/:id/sales	-> Returns the sales of a user
		u.GET("/:id/sales", func(c *gin.Context) { user.UserSales(c, d) })

		// POST /api/users/:id/auctions	-> Lists a new auction for the user
		u.POST("/:id/auctions", func(c *gin.Context) { user.UserAuctionCreate(c, d) })

		// GET /api/users/:id/auctions	-> Returns the auctions of a user
		u.GET("/:id/auctions", func(c *gin.Context) { user.UserAuctions(c, d) })
	}

	s := m.Group("/sales")
	{
		// GET /api/sales/:id		-> Returns a single sale
		s.GET("/:id", func(c *gin.Context) { sale.SaleFetch(c, d) })

		// PUT /api/sales/:id		-> Edits a pending sale
		s.PUT("/:id", func(c *gin.Context) { sale.SaleUpdate(c, d) })

		// PATCH /api/sales/:id/status	-> Completes or cancels a sale
		s.PATCH("/:id/status", func(c *gin.Context) { sale.SaleStatus(c, d) })

		// DELETE /api/sales/:id	-> Deletes a sale
		s.DELETE("/:id", func(c *gin.Context) { sale.SaleDelete(c, d) })
	}

	a := m.Group("/auctions")
	{
		// GET /api/auctions/:id	-> Returns a single auction
		a.GET("/:id", func(c *gin.Context) { auction.AuctionFetch(c, d) })

		// PUT /api/auctions/:id	-> Edits an open auction
		a.PUT("/:id", func(c *gin.Context) { auction.AuctionUpdate(c, d) })

		// PATCH /api/auctions/:id/status -> Closes or cancels an auction
		a.PATCH("/:id/status", func(c *gin.Context) { auction.AuctionStatus(c, d) })

		// DELETE /api/auctions/:id	-> Deletes an auction
		a.DELETE("/:id", func(c *gin.Context) { auction.AuctionDelete(c, d) })
	}

	cc := m.Group("/cards")
	{
		// GET /api/cards		-> Returns the catalog, optionally paginated
		cc.GET("", catalog.Read(), func(c *gin.Context) { card.CardList(c, d) })

		// GET /api/cards/:id		-> Returns a single card
		cc.GET("/:id", catalog.Read(), func(c *gin.Context) { card.CardFetch(c, d) })

		// POST /api/cards		-> Adds a card to the catalog
		cc.POST("", catalog.Purge(), func(c *gin.Context) { card.CardCreate(c, d) })

		// POST /api/cards/bulk		-> Adds many cards, reporting failures per item
		cc.POST("/bulk", catalog.Purge(), func(c *gin.Context) { card.CardBulkCreate(c, d) })

		// PUT /api/cards/:id		-> Replaces the given fields of a card
		cc.PUT("/:id", catalog.Purge(), func(c *gin.Context) { card.CardUpdate(c, d) })

		// DELETE /api/cards/:id	-> Deletes a card and detaches its listings
		cc.DELETE("/:id", catalog.Purge(), func(c *gin.Context) { card.CardDelete(c, d) })
	}

	return router
}

// catalogCache caches catalog reads by request URI. Keys carry a generation
// that every successful card write bumps, so a write makes all earlier
// entries unreachable and they expire on their own.
type catalogCache struct {
	store *persist.MemoryStore
	ttl   time.Duration
	gen   atomic.Uint64
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{
		store: persist.NewMemoryStore(time.Minute),
		ttl:   ttl,
	}
}

// Read serves cached responses. A zero ttl returns a no-op handler.
func (cc *catalogCache) Read() gin.HandlerFunc {
	if cc.ttl <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return cache.Cache(cc.store, cc.ttl, cache.WithCacheStrategyByRequest(func(c *gin.Context) (bool, cache.Strategy) {
		return true, cache.Strategy{
			CacheKey: strconv.FormatUint(cc.gen.Load(), 10) + ":" + c.Request.RequestURI,
		}
	}))
}

// Purge drops every cached read once the write it wraps succeeds.
func (cc *catalogCache) Purge() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			cc.gen.Add(1)
		}
	}
}
