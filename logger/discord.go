package logger

import (
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Embed colors per log level
const (
	colorInfo    = 0x3498db // blue
	colorSuccess = 0x2ecc71 // green
	colorWarning = 0xf39c12 // orange
	colorError   = 0xe74c3c // red
	colorDebug   = 0x9b59b6 // purple
)

var levelColors = map[string]int{
	"info":    colorInfo,
	"success": colorSuccess,
	"warning": colorWarning,
	"error":   colorError,
	"debug":   colorDebug,
}

var levelThumbnails = map[string]string{
	"error":   "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/72x72/1f6a8.png",
	"success": "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/72x72/2705.png",
	"warning": "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/72x72/26a0.png",
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embedThumbnail struct {
	URL string `json:"url"`
}

type embed struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Color       int             `json:"color"`
	Timestamp   string          `json:"timestamp"`
	Fields      []embedField    `json:"fields"`
	Footer      embedFooter     `json:"footer"`
	Thumbnail   *embedThumbnail `json:"thumbnail,omitempty"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// DiscordLogger forwards leveled events to a Discord webhook. When no
// webhook URL is configured every emission degrades to a console line.
// Delivery failures are never surfaced to callers.
type DiscordLogger struct {
	webhookURL  string
	environment string
	Enabled     bool
	client      *resty.Client
}

// New builds a logger for the given webhook URL and runtime environment
func New(webhookURL, environment string) *DiscordLogger {
	return &DiscordLogger{
		webhookURL:  webhookURL,
		environment: environment,
		Enabled:     webhookURL != "",
		client:      resty.New().SetTimeout(10 * time.Second),
	}
}

func (l *DiscordLogger) send(title, description, level string, fields []embedField) {
	if !l.Enabled {
		log.Printf("[%s] %s: %s", strings.ToUpper(level), title, description)
		return
	}

	color, ok := levelColors[level]
	if !ok {
		color = colorInfo
	}

	e := embed{
		Title:       "🎓 EdTech Platform - " + title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields:      fields,
		Footer:      embedFooter{Text: "Environment: " + l.environment},
	}
	if url, ok := levelThumbnails[level]; ok {
		e.Thumbnail = &embedThumbnail{URL: url}
	}

	resp, err := l.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{Embeds: []embed{e}}).
		Post(l.webhookURL)
	if err != nil {
		log.Printf("Discord logger error: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Failed to send Discord notification: %s", resp.Status())
	}
}

// Info emits an informational event
func (l *DiscordLogger) Info(title string, data map[string]interface{}) {
	l.send(title, "Information event occurred", "info", dataFields(data))
}

// Success emits a success event
func (l *DiscordLogger) Success(title string, data map[string]interface{}) {
	l.send(title, "Operation completed successfully", "success", dataFields(data))
}

// Warning emits a warning event
func (l *DiscordLogger) Warning(title string, data map[string]interface{}) {
	l.send(title, "Warning condition detected", "warning", dataFields(data))
}

// Error emits an error event carrying the error message and a truncated
// stack trace as separate fields
func (l *DiscordLogger) Error(title string, err error, data map[string]interface{}) {
	fields := make([]embedField, 0, len(data)+2)
	if err != nil {
		fields = append(fields,
			embedField{Name: "Error Message", Value: err.Error(), Inline: false},
			embedField{Name: "Stack Trace", Value: "```\n" + truncate(string(debug.Stack()), 1000) + "\n```", Inline: false},
		)
	}
	fields = append(fields, dataFields(data)...)
	l.send(title, "An error occurred in the system", "error", fields)
}

// Debug emits a debug event; suppressed outside the development environment
func (l *DiscordLogger) Debug(title string, data map[string]interface{}) {
	if l.environment != "development" {
		return
	}
	l.send(title, "Debug information", "debug", dataFields(data))
}

// dataFields converts an event's extra data into embed fields. Maps and
// structs are pretty-printed as JSON, everything else is stringified.
func dataFields(data map[string]interface{}) []embedField {
	if len(data) == 0 {
		return []embedField{}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]embedField, 0, len(data))
	for _, k := range keys {
		fields = append(fields, embedField{Name: k, Value: stringify(data[k]), Inline: true})
	}
	return fields
}

func stringify(v interface{}) string {
	switch v.(type) {
	case nil:
		return "<nil>"
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v)
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(pretty)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
