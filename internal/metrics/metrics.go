// Package metrics exposes the four scaling counters (C8) over Prometheus's
// default HTTP handler via client_golang.
package metrics

import (
	"context"
	"net/http"

	"github.com/practo/klog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters implements engine.Metrics with registered Prometheus counters.
type Counters struct {
	scaleUpSuccess   prometheus.Counter
	scaleUpFailure   prometheus.Counter
	scaleDownSuccess prometheus.Counter
	scaleDownFailure prometheus.Counter
}

// NewCounters registers the four counters against the default registerer.
func NewCounters() *Counters {
	return &Counters{
		scaleUpSuccess: promauto.NewCounter(prometheus.CounterOpts{
			Name: "k8s_uptime_scaler_scaled_up_success_total",
			Help: "Number of objects successfully scaled up.",
		}),
		scaleUpFailure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "k8s_uptime_scaler_scaled_up_failure_total",
			Help: "Number of objects that failed to scale up.",
		}),
		scaleDownSuccess: promauto.NewCounter(prometheus.CounterOpts{
			Name: "k8s_uptime_scaler_scaled_down_success_total",
			Help: "Number of objects successfully scaled down.",
		}),
		scaleDownFailure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "k8s_uptime_scaler_scaled_down_failure_total",
			Help: "Number of objects that failed to scale down.",
		}),
	}
}

func (c *Counters) IncScaleUpSuccess()   { c.scaleUpSuccess.Inc() }
func (c *Counters) IncScaleUpFailure()   { c.scaleUpFailure.Inc() }
func (c *Counters) IncScaleDownSuccess() { c.scaleDownSuccess.Inc() }
func (c *Counters) IncScaleDownFailure() { c.scaleDownFailure.Inc() }

// Serve starts the /metrics HTTP endpoint and blocks until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		klog.V(1).Infof("metrics server listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
