package clients

import (
	"net/http"
	"time"
)

// HTTP talks to the external processing services. RunID, when set, is sent
// with every request so service logs can be joined with ours.
type HTTP struct {
	c     *http.Client
	RunID string
}

func NewHTTP() *HTTP { return &HTTP{c: &http.Client{Timeout: 60 * time.Second}} }
