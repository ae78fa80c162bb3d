package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the errors array in a validation failure
// response.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// validationError turns a binding failure into a 400 with field-level
// errors. Anything that is not a validator error still gets the generic
// invalid-data message.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": fields})
		return
	}
	errorResponse(c, http.StatusBadRequest, "Invalid data")
}
