package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	request "quote_relay/internal/adapter/http/dto/request"
	response "quote_relay/internal/adapter/http/dto/response"
	"quote_relay/internal/domain/entities"
	"quote_relay/internal/infrastructure/metrics"
	"quote_relay/internal/usecase"
	"quote_relay/pkg"

	"github.com/gin-gonic/gin"
)

// trackingPixel is a transparent 1x1 GIF (43 bytes).
var trackingPixel = mustDecodePixel("R0lGODlhAQABAIAAAP///wAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw==")

var (
	errMissingQuoteID    = pkg.NewDomainErrorSimple("MISSING_QUOTE_ID", "Missing quoteId", http.StatusBadRequest)
	errMissingSendFields = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing quoteId or clientEmail.", http.StatusBadRequest)
	errInvalidJSONBody   = pkg.NewDomainErrorSimple("INVALID_JSON", "Invalid JSON body.", http.StatusBadRequest)
	errNoCaller          = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Unauthorized: No token provided.", http.StatusUnauthorized)
)

func mustDecodePixel(b64 string) []byte {
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		panic(err)
	}
	return b
}

// QuoteHandler serves the quote relay endpoints.
type QuoteHandler struct {
	usecase usecase.IQuoteNotificationUseCase
}

func NewQuoteHandler(uc usecase.IQuoteNotificationUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SendQuoteEmail emails a quote to a client on behalf of its creator.
//
// @Summary      Send quote email
// @Description  Emails the quote total to clientEmail. Only the quote creator may send it.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.SendQuoteEmailRequest  true  "Quote and recipient"
// @Success      200   {object}  response.SendQuoteEmailResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /sendQuoteEmail [post]
func (h *QuoteHandler) SendQuoteEmail(c *gin.Context) {
	identity, ok := usecase.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(errNoCaller.HTTPStatus, errNoCaller.ToHTTPError())
		return
	}

	var payload request.SendQuoteEmailRequest
	if appErr := bindJSON(c, &payload, errMissingSendFields); appErr != nil {
		metrics.QuoteEmailsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !payload.HasRequiredFields() {
		metrics.QuoteEmailsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		c.JSON(errMissingSendFields.HTTPStatus, errMissingSendFields.ToHTTPError())
		return
	}

	err := h.usecase.SendQuoteEmail(c.Request.Context(), identity.Subject, payload.ResolveQuoteID(), payload.ResolveClientEmail())
	if err != nil {
		appErr := mapQuoteSendError(err)
		metrics.QuoteEmailsTotal.WithLabelValues(sendOutcome(appErr.HTTPStatus)).Inc()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.QuoteEmailsTotal.WithLabelValues(metrics.OutcomeSent).Inc()
	c.JSON(http.StatusOK, response.QuoteSent())
}

// MarkQuoteViewed records an explicit view of a quote.
//
// @Summary      Mark quote viewed
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteViewedRequest  true  "Quote to mark"
// @Success      200   {object}  response.AckResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /quoteViewed [post]
func (h *QuoteHandler) MarkQuoteViewed(c *gin.Context) {
	var payload request.QuoteViewedRequest
	if appErr := bindJSON(c, &payload, errMissingQuoteID); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	if _, err := h.usecase.RecordView(c.Request.Context(), quoteID, entities.ViewSourceExplicit); err != nil {
		appErr := mapQuoteViewError(err)
		metrics.QuoteViewsTotal.WithLabelValues(string(entities.ViewSourceExplicit), viewOutcome(appErr.HTTPStatus)).Inc()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.QuoteViewsTotal.WithLabelValues(string(entities.ViewSourceExplicit), metrics.OutcomeRecorded).Inc()
	c.JSON(http.StatusOK, response.Ack())
}

// TrackOpen serves the open-tracking pixel and marks the quote viewed.
// The pixel is returned even when the view cannot be recorded.
//
// @Summary      Email open tracking pixel
// @Tags         quotes
// @Produce      image/gif
// @Param        quoteId  path  string  true  "Quote id"
// @Success      200
// @Router       /trackOpen/{quoteId} [get]
func (h *QuoteHandler) TrackOpen(c *gin.Context) {
	quoteID := c.Param("quoteId")

	outcome := metrics.OutcomeRecorded
	if _, err := h.usecase.RecordView(c.Request.Context(), quoteID, entities.ViewSourcePixel); err != nil {
		outcome = viewOutcome(mapQuoteViewError(err).HTTPStatus)
		slog.ErrorContext(c.Request.Context(), "tracking pixel could not record view", "quote_id", quoteID, "error", err)
	}
	metrics.QuoteViewsTotal.WithLabelValues(string(entities.ViewSourcePixel), outcome).Inc()

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	c.Header("Content-Length", strconv.Itoa(len(trackingPixel)))
	c.Data(http.StatusOK, "image/gif", trackingPixel)
}

// Liveness answers GET / with a plain-text banner.
//
// @Summary  Liveness check
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string
// @Router   / [get]
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Quote email relay is running.")
}

// bindJSON decodes the body. An empty body yields onEmpty.
func bindJSON(c *gin.Context, payload any, onEmpty *pkg.AppError) *pkg.AppError {
	if err := c.ShouldBindJSON(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return onEmpty
		}
		return errInvalidJSONBody
	}
	return nil
}

func mapQuoteSendError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSendFields), errors.Is(err, usecase.ErrInvalidQuoteID):
		return errMissingSendFields
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteForbidden), errors.Is(err, usecase.ErrInvalidSubject):
		return pkg.NewDomainError("FORBIDDEN", "You do not have permission to send this quote.", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("SEND_FAILED", "Failed to send quote.", err, http.StatusInternalServerError)
	}
}

func mapQuoteViewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return errMissingQuoteID
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found.", http.StatusNotFound)
	default:
		return pkg.NewDomainError("VIEW_UPDATE_FAILED", "Failed to mark quote as viewed", err, http.StatusInternalServerError)
	}
}

func sendOutcome(status int) string {
	switch status {
	case http.StatusBadRequest:
		return metrics.OutcomeInvalid
	case http.StatusForbidden:
		return metrics.OutcomeForbidden
	case http.StatusNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeFailed
	}
}

func viewOutcome(status int) string {
	switch status {
	case http.StatusBadRequest:
		return metrics.OutcomeInvalid
	case http.StatusNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeFailed
	}
}
