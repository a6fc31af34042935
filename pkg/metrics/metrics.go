package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках
// в зависимости передается (*Metrics)(nil).
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	ReservationsDerived *prometheus.CounterVec
	RegenerationsTotal  *prometheus.CounterVec
	CompletenessGrades  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики и регистрирует их в переданном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
		ReservationsDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_derived_total",
			Help:        "Reservation stubs produced by itinerary derivation",
			ConstLabels: constLabels,
		}, []string{}),
		RegenerationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_regenerations_total",
			Help:        "Reservation regenerations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		CompletenessGrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "completeness_grades_total",
			Help:        "Completeness grades computed by kind and grade",
			ConstLabels: constLabels,
		}, []string{"kind", "grade"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsDerived,
		m.RegenerationsTotal,
		m.CompletenessGrades,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery учитывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(db).Set(float64(open))
	m.DBInUseConnections.WithLabelValues(db).Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues(db).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(db).Set(float64(waitCount))
}

// AddReservationsDerived учитывает количество полученных из маршрута броней
func (m *Metrics) AddReservationsDerived(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ReservationsDerived.WithLabelValues().Add(float64(n))
}

// IncRegeneration учитывает исход перегенерации броней
func (m *Metrics) IncRegeneration(outcome string) {
	if m == nil {
		return
	}
	m.RegenerationsTotal.WithLabelValues(outcome).Inc()
}

// IncGrade учитывает вычисленную оценку полноты
func (m *Metrics) IncGrade(kind, grade string) {
	if m == nil {
		return
	}
	m.CompletenessGrades.WithLabelValues(kind, grade).Inc()
}
