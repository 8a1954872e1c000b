package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PacketsTotal = prometheus.NewCounter(prometheus.CounterOpts{Name: "rps_packets_received_total", Help: "datagrams received during the match"})
	MovesTotal   = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "rps_moves_total", Help: "accepted move updates"}, []string{"player"})
	TicksTotal   = prometheus.NewCounter(prometheus.CounterOpts{Name: "rps_ticks_total", Help: "scoring ticks evaluated"})
	SendErrors   = prometheus.NewCounter(prometheus.CounterOpts{Name: "rps_send_errors_total", Help: "failed best-effort broadcasts"})
	TimeLeft     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "rps_time_left_seconds", Help: "seconds remaining in the match"})
)

func Init() {
	prometheus.MustRegister(PacketsTotal, MovesTotal, TicksTotal, SendErrors, TimeLeft)
}
