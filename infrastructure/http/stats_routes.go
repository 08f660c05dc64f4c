package httpserver

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/process"
)

// handleStats reports a point-in-time process snapshot for the dashboard.
func (s *Server) handleStats(c *gin.Context) {
	out := gin.H{
		"uptime":     time.Since(s.started).String(),
		"goroutines": runtime.NumGoroutine(),
		"listeners":  s.hub.Len(),
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if memInfo, err := p.MemoryInfo(); err == nil {
			out["rssBytes"] = memInfo.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			out["cpuPercent"] = cpu
		}
	}

	c.JSON(http.StatusOK, out)
}
