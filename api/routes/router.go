// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turfbook/internal/analytics"
	"turfbook/internal/auth"
	"turfbook/internal/facility"
	"turfbook/internal/pricing"
	"turfbook/internal/reservations"
	"turfbook/internal/shared/config"
	"turfbook/internal/shared/database"
	"turfbook/internal/slots"
	"turfbook/internal/waitlist"
	"turfbook/pkg/cache"
	"turfbook/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	facility *facility.Config
	db       *database.DB
	notifier reservations.Notifier
	log      *logger.Logger

	// shared across route groups
	reservationRepo reservations.Repository
}

// NewRouter creates a new router instance. notifier may be nil when the
// payment sink is disabled.
func NewRouter(cfg *config.Config, fac *facility.Config, db *database.DB, notifier reservations.Notifier, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		facility: fac,
		db:       db,
		notifier: notifier,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupFacilityRoutes(api)

		// Reservation routes come first: the repository doubles as the slot
		// availability reader
		r.setupReservationRoutes(api)
		r.setupSlotRoutes(api)
		r.setupPricingRoutes(api)
		r.setupWaitlistRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "turfbook",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "turfbook",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

func (r *Router) setupFacilityRoutes(rg *gin.RouterGroup) {
	facilityController := facility.NewController(r.facility)

	facility.SetupFacilityRoutes(rg, facilityController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	r.reservationRepo = reservations.NewRepository(r.db.GetPostgreSQL())
	reservationService := reservations.NewService(r.reservationRepo, r.facility, r.notifier, r.log, r.config.StoreTimeout)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController, r.config)
}

func (r *Router) setupSlotRoutes(rg *gin.RouterGroup) {
	slotService := slots.NewService(r.facility, r.reservationRepo)
	slotController := slots.NewController(slotService)

	slots.SetupSlotRoutes(rg, slotController)
}

func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingController := pricing.NewController(&pricing.Config{Facility: r.facility})

	pricing.SetupPricingRoutes(rg, pricingController)
}

func (r *Router) setupWaitlistRoutes(rg *gin.RouterGroup) {
	waitlistRepo := waitlist.NewRepository(r.db.GetPostgreSQL())
	waitlistService := waitlist.NewService(waitlistRepo, r.facility, r.log, r.config.StoreTimeout)
	waitlistController := waitlist.NewController(waitlistService)

	waitlist.SetupWaitlistRoutes(rg, waitlistController, r.config)
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	cacheService := cache.NewService(r.db.GetRedisClient())
	analyticsService := analytics.NewService(analyticsRepo, cacheService, r.config.AnalyticsCacheTTL)
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController, r.config)
}
