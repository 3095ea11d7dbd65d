package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Logins = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	})

	SpinsGranted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "spins_granted_total",
		Help:      "Total number of daily spins that paid out.",
	})

	MysteryDraws = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "mystery_draws_total",
		Help:      "Total number of mystery reward draws, including misses.",
	})

	AttemptsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "attempts_started_total",
		Help:      "Total number of game attempts started.",
	})

	AttemptsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "attempts_completed_total",
		Help:      "Total number of game attempts completed.",
	})
)

func init() {
	prometheus.MustRegister(Logins, SpinsGranted, MysteryDraws, AttemptsStarted, AttemptsCompleted)
}
