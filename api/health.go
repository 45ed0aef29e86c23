package api

import (
	"net/http"
	"time"

	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// HealthCheck samples host load and memory plus process uptime. It is
// an independent liveness signal and never touches the database
func (a *API) HealthCheck(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	avg, err := load.Avg()
	if err != nil {
		zap.L().Error("Failed to sample load average", zap.Error(err), zap.String("requestID", requestID))

		respond.Error(c, http.StatusInternalServerError, gin.H{
			"message": "Health check failed",
			"details": err.Error(),
		})
		return
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		zap.L().Error("Failed to sample memory", zap.Error(err), zap.String("requestID", requestID))

		respond.Error(c, http.StatusInternalServerError, gin.H{
			"message": "Health check failed",
			"details": err.Error(),
		})
		return
	}

	respond.Success(c, http.StatusOK, "Server is healthy", gin.H{
		"serverStatus": gin.H{
			"status":    "OK",
			"uptime":    time.Since(a.StartedAt).Seconds(),
			"timestamp": time.Now().UnixMilli(),
			"loadAverage": gin.H{
				"1min":  avg.Load1,
				"5min":  avg.Load5,
				"15min": avg.Load15,
			},
			"memory": gin.H{
				"total": vm.Total,
				"free":  vm.Free,
				"used":  vm.Used,
			},
		},
	})
}
