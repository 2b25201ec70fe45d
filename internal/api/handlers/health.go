package handlers

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"transcription-service/internal/api/dto"
)

// HealthHandler reports service liveness and echoes connectivity probes
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health and GET /health/:path_echo
//
// @Summary Health check
// @Description Reports service liveness. Optional echo query and path segment are reflected back for connectivity debugging.
// @Tags health
// @Produce json
// @Param echo query string false "String to echo back"
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     localIPAddress(),
	}

	if echo, ok := c.GetQuery("echo"); ok {
		resp.Echo = &echo
	}
	if pathEcho := c.Param("path_echo"); pathEcho != "" {
		resp.PathEcho = &pathEcho
	}

	c.JSON(http.StatusOK, resp)
}

// localIPAddress resolves the host's first address, falling back to
// loopback when resolution fails.
func localIPAddress() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}

	addrs, err := net.LookupIP(hostname)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}

	return addrs[0].String()
}
