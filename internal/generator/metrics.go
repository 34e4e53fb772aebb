package generator

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK                 = "ok"
	outcomeConfigurationError = "configuration_error"
	outcomeEntropyUnavailable = "entropy_unavailable"
	outcomeOther              = "error"
)

var (
	metricsOnce sync.Once //nolint:gochecknoglobals

	generations *prometheus.CounterVec //nolint:gochecknoglobals
	characters  prometheus.Counter     //nolint:gochecknoglobals
	draws       *prometheus.CounterVec //nolint:gochecknoglobals
)

func initMetrics() {
	metricsOnce.Do(func() {
		generations = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "randomstring_generations_total",
				Help: "Number of generate calls, differentiated by outcome.",
			},
			[]string{"outcome"},
		)

		characters = promauto.NewCounter(prometheus.CounterOpts{
			Name: "randomstring_characters_total",
			Help: "Number of characters handed out.",
		})

		draws = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "randomstring_draws_total",
				Help: "Number of raw random values drawn, differentiated by accepted or rejected.",
			},
			[]string{"result"},
		)
	})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrConfiguration):
		return outcomeConfigurationError
	case errors.Is(err, ErrEntropyUnavailable):
		return outcomeEntropyUnavailable
	default:
		return outcomeOther
	}
}

func observe(length int, err error) {
	initMetrics()

	generations.WithLabelValues(outcome(err)).Inc()

	if err == nil {
		characters.Add(float64(length))
	}
}

func observeDraws(total, rejected int) {
	initMetrics()

	draws.WithLabelValues("accepted").Add(float64(total - rejected))
	draws.WithLabelValues("rejected").Add(float64(rejected))
}
