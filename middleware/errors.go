package middleware

import (
	"errors"
	"net/http"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ErrorHandler translates errors raised by handlers and middleware into
// JSON responses: domain errors keep their carried status, validation
// failures get field-level detail, everything else becomes a 500.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		err := last.Err

		var domainErr *apperr.Error
		var fieldErrs validator.ValidationErrors
		switch {
		case errors.As(err, &domainErr):
			c.JSON(domainErr.Status, gin.H{"message": domainErr.Message})
		case errors.As(err, &fieldErrs):
			issues := make(gin.H, len(fieldErrs))
			for _, fe := range fieldErrs {
				issues[fe.Field()] = validationMessage(fe)
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": "validation error", "issues": issues})
		case last.IsType(gin.ErrorTypeBind):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		default:
			log.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("unhandled error")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}
