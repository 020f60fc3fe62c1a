package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/response"
	"github.com/rafikey/rafikey-admin/pkg/validation"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

type ClinicHandler struct {
	Svc    *application.ClinicService
	Logger *logrus.Logger
}

func NewClinicHandler(svc *application.ClinicService, logger *logrus.Logger) *ClinicHandler {
	return &ClinicHandler{Svc: svc, Logger: logger}
}

type clinicRequest struct {
	ClinicName    string   `json:"clinic_name" binding:"omitempty,notblank"`
	Services      string   `json:"services"`
	Location      string   `json:"location"`
	Phone         string   `json:"phone"`
	Website       string   `json:"website" binding:"omitempty,url"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	GoogleLink    string   `json:"google_link" binding:"omitempty,url"`
	SourceCountry string   `json:"source_country"`
	PhoneCombined string   `json:"phone_combined"`
	EmailCombined string   `json:"email_combined"`
}

func (r clinicRequest) input() entity.ClinicInput {
	return entity.ClinicInput{
		ClinicName:    r.ClinicName,
		Services:      r.Services,
		Location:      r.Location,
		Phone:         r.Phone,
		Website:       r.Website,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		GoogleLink:    r.GoogleLink,
		SourceCountry: r.SourceCountry,
		PhoneCombined: r.PhoneCombined,
		EmailCombined: r.EmailCombined,
	}
}

type clinicsPage struct {
	Result *application.ClinicPage
	Error  string
}

func (h *ClinicHandler) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	res, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c), page, limit, c.Query("country"))
	p := clinicsPage{Result: res}
	if err != nil {
		helpers.LogWarn(h.Logger, "list clinics failed", err, nil)
		p.Error = pageError(err, "Failed to fetch clinics")
		f := application.PageFilter(page, limit, c.Query("country"))
		p.Result = &application.ClinicPage{Page: f.Skip/f.Limit + 1, Limit: f.Limit, Country: f.Country}
	}
	renderPage(c, http.StatusOK, views.Clinics, "Clinics", p)
}

func (h *ClinicHandler) Create(c *gin.Context) {
	var req clinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.ClinicName == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"clinic_name": "is required"})
		return
	}
	cl, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), req.input())
	if err != nil {
		failure(c, err, "Failed to create clinic")
		return
	}
	response.Success(c, http.StatusCreated, cl, "Clinic created successfully", nil)
}

func (h *ClinicHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req clinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cl, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, req.input())
	if err != nil {
		failure(c, err, "Failed to update clinic")
		return
	}
	response.Success(c, http.StatusOK, cl, "Clinic updated successfully", nil)
}

func (h *ClinicHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		failure(c, err, "Failed to delete clinic")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id}, "Clinic deleted successfully", nil)
}
