package httperr

import (
	"net/http"

	"student-travels/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// AbortWithBindError answers 400 with one entry per failed validation rule.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
