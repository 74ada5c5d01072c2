package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/gymweeks/internal/telemetry/metrics"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=rate_limiting_mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per minute for everything behind it,
// counted under the routerName key.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	limit := redis_rate.PerMinute(allowedPerMin)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.rateLimit")
			res, err := rateLimiter.Allow(ctx, routerName, limit)
			if err != nil {
				span.End()
				log.Errorf("rate limiter [%s]: %s", routerName, err)
				pkg.WriteJSON(w, pkg.ErrorResponse{Error: "rate limit internal error"}, http.StatusInternalServerError)
				return
			}

			span.SetAttributes(
				attribute.String("limiter", routerName),
				attribute.Int("remaining", res.Remaining),
			)
			span.End()
			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.Warnf("rate limited [%s] => %s", routerName, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			pkg.WriteJSON(
				w,
				pkg.ErrorResponse{Error: fmt.Sprintf("too many requests, retry after %.0f seconds", res.RetryAfter.Seconds())},
				http.StatusTooManyRequests,
			)
		})
	}
}
