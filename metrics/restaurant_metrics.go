package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// RestaurantMetrics holds the prometheus collectors of the service.
// All record methods are safe on a nil receiver so tests can skip metrics.
type RestaurantMetrics struct {
	reservations    *prometheus.CounterVec
	releases        *prometheus.CounterVec
	orders          *prometheus.CounterVec
	itemsSold       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRestaurantMetrics registers the collectors on the default registerer.
func NewRestaurantMetrics() *RestaurantMetrics {
	return NewRestaurantMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewRestaurantMetricsWithRegisterer(registerer prometheus.Registerer) *RestaurantMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &RestaurantMetrics{
		reservations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "restaurant_reservations_total",
			Help: "Table reservation attempts by result",
		}, []string{"result"}),
		releases: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "restaurant_releases_total",
			Help: "Table release attempts by result",
		}, []string{"result"}),
		orders: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "restaurant_orders_total",
			Help: "Order placement attempts by result",
		}, []string{"result"}),
		itemsSold: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "restaurant_items_sold_total",
			Help: "Units sold per menu item",
		}, []string{"item"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordReservation counts one reservation attempt.
func (m *RestaurantMetrics) RecordReservation(result string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(result).Inc()
}

// RecordRelease counts one release attempt.
func (m *RestaurantMetrics) RecordRelease(result string) {
	if m == nil {
		return
	}
	m.releases.WithLabelValues(result).Inc()
}

// RecordOrder counts one order attempt.
func (m *RestaurantMetrics) RecordOrder(result string) {
	if m == nil {
		return
	}
	m.orders.WithLabelValues(result).Inc()
}

// RecordItemsSold adds qty units to the item's sold counter.
func (m *RestaurantMetrics) RecordItemsSold(item string, qty int) {
	if m == nil || qty <= 0 {
		return
	}
	m.itemsSold.WithLabelValues(item).Add(float64(qty))
}

// RecordRequest observes the duration of one HTTP request.
func (m *RestaurantMetrics) RecordRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
