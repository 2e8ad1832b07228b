package utils

import (
	"log"
	"runtime"
	"time"

	"edtech/logger"

	"github.com/robfig/cron/v3"
)

var startedAt = time.Now()

// StartMetricsReporter schedules an hourly report of process metrics to the
// event sink
func StartMetricsReporter(events *logger.DiscordLogger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		reportMetrics(events)
	})
	if err != nil {
		log.Printf("Failed to schedule metrics reporter: %v", err)
		return c
	}

	c.Start()
	return c
}

func reportMetrics(events *logger.DiscordLogger) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	events.Info("System Performance Metrics", map[string]interface{}{
		"uptime":      time.Since(startedAt).Round(time.Second).String(),
		"goroutines":  runtime.NumGoroutine(),
		"heapAllocMB": float64(mem.HeapAlloc) / 1024 / 1024,
		"numGC":       mem.NumGC,
	})
}
