package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/clinic"

	"github.com/gin-gonic/gin"
)

// ClinicHandler serves the service catalog, doctors and reviews.
type ClinicHandler struct {
	Clinic *clinic.Service
}

func NewClinicHandler(svc *clinic.Service) *ClinicHandler {
	return &ClinicHandler{Clinic: svc}
}

func (h *ClinicHandler) Greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello From Doctors Portal!")
}

// ListServices handles GET /service?fields=name,price,slots.
func (h *ClinicHandler) ListServices(c *gin.Context) {
	fields, err := clinic.ParseFields(c.Query("fields"))
	if err != nil {
		respondError(c, "list services", err)
		return
	}
	services, err := h.Clinic.ListServices(c.Request.Context(), fields)
	if err != nil {
		respondError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ClinicHandler) CreateService(c *gin.Context) {
	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		respondBindError(c, "create service", err)
		return
	}
	result, err := h.Clinic.CreateService(c.Request.Context(), s)
	if err != nil {
		respondError(c, "create service", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ClinicHandler) DeleteService(c *gin.Context) {
	result, err := h.Clinic.DeleteService(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "delete service", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ClinicHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Clinic.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, "list doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *ClinicHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		respondBindError(c, "add doctor", err)
		return
	}
	doctor, err := h.Clinic.AddDoctor(c.Request.Context(), d)
	if err != nil {
		respondError(c, "add doctor", err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *ClinicHandler) DeleteDoctor(c *gin.Context) {
	result, err := h.Clinic.DeleteDoctor(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "delete doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ClinicHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Clinic.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ClinicHandler) AddReview(c *gin.Context) {
	var r models.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		respondBindError(c, "add review", err)
		return
	}
	review, err := h.Clinic.AddReview(c.Request.Context(), r)
	if err != nil {
		respondError(c, "add review", err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
