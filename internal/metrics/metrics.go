// Package metrics exports simulation progress as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/LilLilian59/JeuDeLaVie/pkg/life"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the collectors updated by a run.
type Recorder struct {
	generation  prometheus.Gauge
	population  prometheus.Gauge
	steps       prometheus.Counter
	stepSeconds prometheus.Histogram
	trials      prometheus.Counter
	finalPop    prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_generation",
			Help: "Generation of the most recently stepped grid",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Live non-obstacle cells in the most recently stepped grid",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_steps_total",
			Help: "Total number of generation steps computed",
		}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_step_duration_seconds",
			Help:    "Histogram of generation step durations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_trials_total",
			Help: "Total number of completed soup trials",
		}),
		finalPop: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_trial_final_population",
			Help:    "Population left at the end of each soup trial",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
	}
	for _, c := range []prometheus.Collector{r.generation, r.population, r.steps, r.stepSeconds, r.trials, r.finalPop} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Sample records the grid's generation and population without counting a step.
func (r *Recorder) Sample(g *life.Grid) {
	r.generation.Set(float64(g.Generation()))
	r.population.Set(float64(g.Population()))
}

// Step records one completed generation that took d.
func (r *Recorder) Step(g *life.Grid, d time.Duration) {
	r.steps.Inc()
	r.stepSeconds.Observe(d.Seconds())
	r.Sample(g)
}

// Trial records the final population of a finished soup trial.
func (r *Recorder) Trial(population int) {
	r.trials.Inc()
	r.finalPop.Observe(float64(population))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
