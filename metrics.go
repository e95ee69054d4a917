package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
)

// WordsInUse returns the number of slots claimed since the base.
func (a *Arena) WordsInUse() Word {
	return a.frontier - a.base
}

// WordsFree returns the number of slots left below the ceiling.
func (a *Arena) WordsFree() Word {
	return a.ceiling - a.frontier
}

// Reservations returns the number of managed regions.
func (a *Arena) Reservations() int {
	return len(a.regions)
}

// Utilization returns the ratio of claimed slots to reservable slots (0.0 to 1.0).
// Returns 0.0 if the arena has no reservable slots.
func (a *Arena) Utilization() float64 {
	total := a.ceiling - a.base
	if total == 0 {
		return 0
	}
	return float64(a.WordsInUse()) / float64(total)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Base:         a.base,
		Frontier:     a.frontier,
		Ceiling:      a.ceiling,
		WordsInUse:   a.WordsInUse(),
		WordsFree:    a.WordsFree(),
		Reservations: a.Reservations(),
		Utilization:  a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Base         Word    // First reservable address
	Frontier     Word    // First unclaimed address
	Ceiling      Word    // Exclusive upper bound
	WordsInUse   Word    // Slots claimed since Base
	WordsFree    Word    // Slots left below Ceiling
	Reservations int     // Number of managed regions
	Utilization  float64 // Ratio of used to reservable slots (0.0-1.0)
}

func (m ArenaMetrics) String() string {
	return fmt.Sprintf("%s/%s words in use (%.1f%%), %s regions, frontier %d",
		humanize.Comma(int64(m.WordsInUse)),
		humanize.Comma(int64(m.Ceiling-m.Base)),
		m.Utilization*100,
		humanize.Comma(int64(m.Reservations)),
		m.Frontier,
	)
}

// MetricsSource is implemented by Arena and SafeArena.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

// Collector exports arena statistics as Prometheus gauges. Scrapes run on
// their own goroutine, so register a SafeArena unless the arena is otherwise
// serialized with the scraper.
type Collector struct {
	src MetricsSource

	frontierDesc     *prometheus.Desc
	ceilingDesc      *prometheus.Desc
	inUseDesc        *prometheus.Desc
	reservationsDesc *prometheus.Desc
	utilizationDesc  *prometheus.Desc
}

// NewCollector returns a Collector for src with metric names under namespace.
func NewCollector(src MetricsSource, namespace string) *Collector {
	return &Collector{
		src: src,
		frontierDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "frontier_words"),
			"Address of the first unclaimed slot.",
			nil, nil,
		),
		ceilingDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "ceiling_words"),
			"Exclusive upper bound for reservations.",
			nil, nil,
		),
		inUseDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "words_in_use"),
			"Number of slots claimed by reservations.",
			nil, nil,
		),
		reservationsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "regions"),
			"Number of managed regions.",
			nil, nil,
		),
		utilizationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "utilization_ratio"),
			"Ratio of claimed to reservable slots.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.frontierDesc
	descs <- c.ceilingDesc
	descs <- c.inUseDesc
	descs <- c.reservationsDesc
	descs <- c.utilizationDesc
}

func (c *Collector) Collect(m chan<- prometheus.Metric) {
	s := c.src.Metrics()
	m <- prometheus.MustNewConstMetric(c.frontierDesc, prometheus.GaugeValue, float64(s.Frontier))
	m <- prometheus.MustNewConstMetric(c.ceilingDesc, prometheus.GaugeValue, float64(s.Ceiling))
	m <- prometheus.MustNewConstMetric(c.inUseDesc, prometheus.GaugeValue, float64(s.WordsInUse))
	m <- prometheus.MustNewConstMetric(c.reservationsDesc, prometheus.GaugeValue, float64(s.Reservations))
	m <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, s.Utilization)
}
