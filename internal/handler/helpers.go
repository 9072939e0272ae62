package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tallypos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false after writing the error response — the caller must return
// without writing another one.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("A JSON body is required!"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, apierror.New(validationMessage(fieldErrs[0])))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.New("Invalid input!"))
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "required" {
		return "A " + field + " is required!"
	}
	return "Invalid value for " + field + "!"
}

// pathID parses the numeric :id path parameter. Returns 0 and writes a 400
// when the value is not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("A numeric id is required!"))
		return 0, false
	}
	return id, true
}

// respondError maps a service error onto the taxonomy: *apierror.Error keeps
// its status and message, anything else is logged and answered as an opaque
// 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apierror.New(apiErr.Message))
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, apierror.New("Internal server error."))
}
