package handlers

import (
	"errors"
	"net/http"

	apperrors "schoolpay-backend/internal/errors"
	"schoolpay-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError is one entry of the 400 validation detail list
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationDetails extracts field-level detail from a wrapped
// validator.ValidationErrors, or returns nil when err is not one.
func validationDetails(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "is invalid"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "gt":
			msg = "must be greater than " + fe.Param()
		}
		details = append(details, fieldError{Field: fe.Field(), Message: msg})
	}
	return details
}

// respondServiceError maps service-layer errors onto the HTTP error taxonomy.
// Store failures are logged with full detail but reported to the client with
// the generic message only.
func respondServiceError(c *gin.Context, err error, message string) {
	if details := validationDetails(err); details != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One of the data is not captured!", "errors": details})
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}

	if apperrors.IsAlreadyExists(err) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	logger.WithContext(c.Request.Context()).
		WithField("path", c.Request.URL.Path).
		WithError(err).
		Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
