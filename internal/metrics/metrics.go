package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "firststeps_request_duration_seconds",
		Help:    "Time from request receipt to response, by route and status.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route", "status"})

	UsersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firststeps_users_created_total",
		Help: "Users successfully inserted into the database.",
	})

	UserLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firststeps_user_lookups_total",
		Help: "User fetches by ID, labelled hit or miss.",
	}, []string{"result"})

	FilesUploadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firststeps_files_uploaded_total",
		Help: "Files successfully written to the GridFS bucket.",
	})

	FilesDownloadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firststeps_files_downloaded_total",
		Help: "Files successfully streamed out of the GridFS bucket.",
	})

	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "firststeps_users_total",
		Help: "Total number of users in the database.",
	})
)
