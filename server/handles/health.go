package handles

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is unenveloped on purpose; probes expect the bare status object.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
