package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-srv/pkg/discord"
	pkgErrors "campaign-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   msgSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response and aborts the request.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: codeUnauthorized,
		Message:   msgUnauthorized,
	})
}

// Error writes an error response. Unknown errors become 500 and are
// reported to Discord when a client is provided.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	switch parsedErr := err.(type) {
	case *pkgErrors.ValidationError:
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
			Errors:    parsedErr.Errors,
		})
	case *pkgErrors.HTTPError:
		c.JSON(httpStatus(parsedErr.Code), Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		})
	default:
		notifyDiscord(c, d, fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: codeInternal,
			Message:   msgInternal,
		})
	}
}

// ErrorWithMap resolves err through the mapping before writing the response.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if err == target {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notifyDiscord(c, d, fmt.Sprintf("panic: %s %s", c.Request.Method, c.Request.URL.Path),
		fmt.Errorf("%v", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternal,
		Message:   msgInternal,
	})
}

// httpStatus maps service error codes to HTTP status codes. Codes outside the
// HTTP range are domain codes carried in the body with a 400 status.
func httpStatus(code int) int {
	if code >= 100 && code < 600 {
		return code
	}
	return http.StatusBadRequest
}

func notifyDiscord(c *gin.Context, d discord.IDiscord, title string, err error) {
	if d == nil {
		return
	}
	go func() {
		_ = d.SendError(context.Background(), title, "Unhandled server error", err)
	}()
}
