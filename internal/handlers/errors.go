package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/apperrors"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to HTTP responses.
// fallback is the message used for unexpected failures so driver details never reach the client.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		uniquenessErrs *apperrors.UniquenessErrors
		validationErrs *apperrors.ValidationErrors
		overdraft      *apperrors.OverdraftError
		appErr         *apperrors.AppError
	)

	switch {
	case errors.As(err, &uniquenessErrs):
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrDuplicate.Error(), "fields": uniquenessErrs.Errors})
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrValidation.Error(), "fields": validationErrs.Errors})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	// A refused reversal wraps both ErrValidation and the overdraft; it is a bad request.
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrInvalidTransactionType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &overdraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     apperrors.ErrOverdraftExceeded.Error(),
			"accountID": overdraft.AccountID,
			"available": overdraft.Available(),
			"attempted": overdraft.AttemptedAmount,
		})
	case errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError:
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	case errors.As(err, &appErr) && appErr.Code == http.StatusServiceUnavailable:
		logger.Warn("Request refused while the database is busy", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindingError reports a malformed request body or query.
func bindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	wrapped := apperrors.WrapConsistencyError(err)
	var validationErrs *apperrors.ValidationErrors
	if errors.As(wrapped, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrValidation.Error(), "fields": validationErrs.Errors})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated user id, answering 401 when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
