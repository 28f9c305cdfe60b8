package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HealthMonitoringWorker)(nil)

// PresenceCounter is the part of the registry the worker samples.
type PresenceCounter interface {
	Counts() (connections, users int)
}

// HealthMonitoringWorker samples the process and the presence registry on
// every tick and publishes the values to the monitoring manager and gauges.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	presence       PresenceCounter
	metricInterval time.Duration
	pid            int32
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	presence PresenceCounter,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		monitoring:     monitoring,
		presence:       presence,
		metricInterval: metricInterval,
		pid:            int32(os.Getpid()),
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) {
	connections, users := w.presence.Counts()
	observability.Connections.Set(float64(connections))
	observability.OnlineUsers.Set(float64(users))

	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "error", err)
		return
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "error", err)
		return
	}
	w.monitoring.Update(mem.RSS, cpu)
}
