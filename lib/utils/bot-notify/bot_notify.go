package botnotify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

type ErrorEvent struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

var client = &http.Client{Timeout: 5 * time.Second}

// SendError - уведомление об ошибке api, результат доставки только логируется
func SendError(addr string, event ErrorEvent) {
	logger := log.
		WithField("path", event.Path).
		WithField("code", event.Code)
	payload, err := json.Marshal(event)
	if err != nil {
		logger.WithError(err).Warn("error marshalling error notification")
		return
	}
	resp, err := client.Post(addr, "application/json", bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Warn("error sending error notification")
		return
	}
	resp.Body.Close()
}
