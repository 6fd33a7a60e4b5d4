// Package metrics defines and registers all custom Prometheus metrics for the
// Jobzen dashboard server. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto; /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made to the Jobzen API.
// Labels:
//   - route: path template of the endpoint (e.g. "/users/managed/:id")
//   - code:  HTTP status code, or "error" when no response arrived
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the Jobzen API.",
	},
	[]string{"route", "code"},
)

// TokenRefreshTotal counts 401-triggered refresh attempts.
// Label:
//   - result: "success", "failure", or "missing" (no refresh token held)
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access token refresh attempts, by result.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "login", "register", "oauth", "logout", "expired"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of auth session lifecycle events.",
	},
	[]string{"event"},
)

// GuardRedirectsTotal counts redirects issued by the route guard.
// Label:
//   - reason: "unauthenticated", "invalid_cookie", "wrong_role"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of page requests redirected by the route guard.",
	},
	[]string{"reason"},
)

// ── Theme metrics ─────────────────────────────────────────────────────────────

// ThemeSelectionsTotal counts theme switches.
// Label:
//   - theme: the selected theme id
var ThemeSelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "theme_selections_total",
		Help:      "Total number of theme selections, by theme.",
	},
	[]string{"theme"},
)
