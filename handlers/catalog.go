package handlers

import (
	"net/http"

	"docport/models"
	"docport/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the treatment catalog and practitioner endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetSpecialtiesHandler handles GET /appointmentSpecialty.
func (h *CatalogHandler) GetSpecialtiesHandler(c *gin.Context) {
	names, err := h.Service.Specialties()
	if err != nil {
		respondServiceError(c, "failed to list specialties", err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// CreateTreatmentHandler handles POST /appointmentOption (admin-guarded).
func (h *CatalogHandler) CreateTreatmentHandler(c *gin.Context) {
	var option models.TreatmentOption
	if err := c.ShouldBindJSON(&option); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid treatment payload", "details": err.Error()})
		return
	}
	if option.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	created, err := h.Service.CreateTreatment(option)
	if err != nil {
		respondServiceError(c, "failed to create treatment option", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdatePricesHandler handles PUT /appointmentOption/price (admin-guarded).
// It applies the given price to every catalog entry.
func (h *CatalogHandler) UpdatePricesHandler(c *gin.Context) {
	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price payload", "details": err.Error()})
		return
	}

	modified, err := h.Service.UpdateAllPrices(req.Price)
	if err != nil {
		respondServiceError(c, "failed to update prices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": modified})
}

// GetDoctorsHandler handles GET /doctors (admin-guarded).
func (h *CatalogHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetDoctors()
	if err != nil {
		respondServiceError(c, "failed to list doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctorHandler handles POST /doctors (admin-guarded).
func (h *CatalogHandler) AddDoctorHandler(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor payload", "details": err.Error()})
		return
	}
	if doctor.Name == "" || doctor.Specialty == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and specialty are required"})
		return
	}

	created, err := h.Service.AddDoctor(doctor)
	if err != nil {
		respondServiceError(c, "failed to add doctor", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// RemoveDoctorHandler handles DELETE /doctors/:id (admin-guarded).
func (h *CatalogHandler) RemoveDoctorHandler(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.Service.RemoveDoctor(id)
	if err != nil {
		respondServiceError(c, "failed to remove doctor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
