package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// ProcessStats is the latest sample of the process, served by /health.
type ProcessStats struct {
	RSSBytes   uint64    `json:"rssBytes"`
	CPUPercent float64   `json:"cpuPercent"`
	Goroutines int       `json:"goroutines"`
	AllocMemMb uint64    `json:"allocMemMb"`
	NumGC      uint32    `json:"numGC"`
	SampledAt  time.Time `json:"sampledAt"`
}

// MonitoringManager keeps the latest process sample for readers on other goroutines.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats ProcessStats
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

// Update stores a sample taken by the health worker, completes it with the
// Go runtime counters and mirrors it into the gauges.
func (mm *MonitoringManager) Update(rss uint64, cpu float64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.Lock()
	mm.latestStats = ProcessStats{
		RSSBytes:   rss,
		CPUPercent: cpu,
		Goroutines: runtime.NumGoroutine(),
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
		SampledAt:  time.Now().UTC(),
	}
	stats := mm.latestStats
	mm.mu.Unlock()

	ProcessRSS.Set(float64(rss))
	ProcessCPU.Set(cpu)
	mm.log.Debug("Process stats updated",
		"rss_bytes", stats.RSSBytes,
		"cpu_percent", stats.CPUPercent,
		"goroutines", stats.Goroutines,
		"mem_mb", stats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() ProcessStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
