package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlor_users_registered_total",
		Help: "Total number of successfully registered users",
	})

	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parlor_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlor_posts_created_total",
		Help: "Total number of created posts",
	})

	// CommentsCreated counts created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlor_comments_created_total",
		Help: "Total number of created comments",
	})

	// FriendEdgesCreated counts created friend edges.
	FriendEdgesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parlor_friend_edges_created_total",
		Help: "Total number of created friend edges",
	})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the Prometheus middleware for the given service name.
// The middleware registers collectors globally, so it is created once and
// shared by every server instance in the process.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware returns the HTTP metrics collection middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
