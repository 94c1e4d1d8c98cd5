package v1

import (
	"errors"
	"io"
	"net/http"

	"rrdesigns-backend/internal/delivery/http/response"
	"rrdesigns-backend/internal/domain"
	"rrdesigns-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the lead-capture form routes (public, no auth required)
func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/contact", handler.SubmitContact)
	public.POST("/pricing", handler.SubmitPricing)
	public.POST("/service-request", handler.SubmitServiceRequest)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Email a contact form submission to the studio inbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.submissionUC.SubmitContact(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgEmailSent, nil)
}

// SubmitPricing godoc
// @Summary      Submit Pricing Quote Request
// @Description  Email a quote request, including the estimate shown on the pricing page.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        pricing  body      domain.PricingRequest  true  "Quote Request Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /pricing [post]
func (h *SubmissionHandler) SubmitPricing(c *gin.Context) {
	var req domain.PricingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.submissionUC.SubmitPricingQuote(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgEmailSent, nil)
}

// SubmitServiceRequest godoc
// @Summary      Submit Service Request
// @Description  Email a service request to the studio inbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        service  body      domain.ServiceRequest  true  "Service Request Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /service-request [post]
func (h *SubmissionHandler) SubmitServiceRequest(c *gin.Context) {
	var req domain.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.submissionUC.SubmitServiceRequest(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgEmailSent, nil)
}

// bindJSON decodes the body into obj. An empty body decodes as {} so the
// usecase reports missing fields rather than a malformed request.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return false
	}
	return true
}
