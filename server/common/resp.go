package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdesk/taskdesk/pkg/utils"
)

// Resp is the success envelope: everything the API returns rides under "data".
type Resp struct {
	Data any `json:"data"`
}

type ErrResp struct {
	Error ErrMessage `json:"error"`
}

type ErrMessage struct {
	Message string `json:"message"`
}

func SuccessResp(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Data: data})
}

func CreatedResp(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{Data: data})
}

func ErrorStrResp(c *gin.Context, msg string, code int) {
	c.JSON(code, ErrResp{Error: ErrMessage{Message: msg}})
}

// ErrorResp logs the underlying error and answers with its message. Server
// faults are logged with their stack and never leak detail to the client.
func ErrorResp(c *gin.Context, err error, code int) {
	if code >= http.StatusInternalServerError {
		utils.Log.Errorf("%s %s: %+v", c.Request.Method, c.Request.URL.Path, err)
		ErrorStrResp(c, "Internal Server Error", code)
		return
	}
	utils.Log.Debugf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	ErrorStrResp(c, err.Error(), code)
}
