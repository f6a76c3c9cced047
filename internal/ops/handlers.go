package ops

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/blockproxy/internal/api/models"
	"github.com/jroosing/blockproxy/internal/blocking"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const mb = 1024 * 1024

// cpuSampleWindow is how long /status samples CPU usage.
const cpuSampleWindow = 200 * time.Millisecond

type healthCheck struct {
	name  string
	check func() error
}

type handler struct {
	store     blocking.Store
	startTime time.Time
	logger    *slog.Logger
	checks    []healthCheck
}

func (h *handler) health(c *gin.Context) {
	for _, hc := range h.checks {
		if err := hc.check(); err != nil {
			if h.logger != nil {
				h.logger.Warn("health check failed", "check", hc.name, "err", err)
			}
			c.JSON(http.StatusServiceUnavailable, models.StatusResponse{Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

func (h *handler) status(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / mb,
		CPU:           h.cpuStats(c.Request.Context()),
		Memory:        h.memoryStats(c.Request.Context()),
	}
	if h.store != nil {
		resp.Blocking = blocking.StateOf(h.store.Enabled()).String()
	}

	c.JSON(http.StatusOK, resp)
}

// cpuStats falls back to runtime.NumCPU with zero usage when the host
// cannot be sampled.
func (h *handler) cpuStats(ctx context.Context) models.CPUStats {
	out := models.CPUStats{NumCPU: runtime.NumCPU()}

	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		out.NumCPU = n
	}

	pct, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil || len(pct) == 0 {
		h.debug("cpu sample unavailable", err)
		return out
	}
	out.UsedPercent = pct[0]
	out.IdlePercent = 100 - pct[0]
	return out
}

func (h *handler) memoryStats(ctx context.Context) models.MemoryStats {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		h.debug("memory sample unavailable", err)
		return models.MemoryStats{}
	}
	return models.MemoryStats{
		TotalMB:     float64(vm.Total) / mb,
		FreeMB:      float64(vm.Available) / mb,
		UsedMB:      float64(vm.Used) / mb,
		UsedPercent: vm.UsedPercent,
	}
}

func (h *handler) debug(msg string, err error) {
	if h.logger != nil {
		h.logger.Debug(msg, "err", err)
	}
}
