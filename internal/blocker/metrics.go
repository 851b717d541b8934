package blocker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultDisposable = "disposable"
	resultAllowed    = "allowed"
	resultInvalid    = "invalid"
	resultDisabled   = "disabled"

	sourceTable = "table"
	sourceFile  = "file"

	statusSuccess = "success"
	statusError   = "error"
	statusSkipped = "skipped"
)

var (
	validationsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "debcf_validations_total",
			Help: "Number of email validations, differentiated by result.",
		},
		[]string{"result"},
	)

	lookupsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "debcf_domain_lookups_total",
			Help: "Number of domain lookups, differentiated by the source that answered.",
		},
		[]string{"source"},
	)

	syncRunsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "debcf_sync_runs_total",
			Help: "Number of domain store syncs, differentiated by status.",
		},
		[]string{"status"},
	)

	syncedDomains = promauto.NewGauge( //nolint:gochecknoglobals
		prometheus.GaugeOpts{
			Name: "debcf_synced_domains",
			Help: "Number of domains written by the last successful sync.",
		},
	)
)
