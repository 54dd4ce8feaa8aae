package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	pointsEarnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "laundry_loyalty_points_earned_total",
			Help: "Начислено баллов",
		},
	)

	redemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_loyalty_redemptions_total",
			Help: "Кол-во списаний по результату",
		},
		[]string{"result"},
	)

	versionConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "laundry_loyalty_version_conflicts_total",
			Help: "Кол-во повторов из-за конкурентного изменения счета",
		},
	)

	notificationsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundry_notifications_failed_total",
			Help: "Кол-во неотправленных событий",
		},
		[]string{"sink"},
	)
)
