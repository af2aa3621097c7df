// README: Catalog handlers; public listings and admin CRUD.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/types"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalog.Cities(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "true"))
	vehicles, err := h.catalog.Vehicles(c.Request.Context(), activeOnly)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.catalog.Packages(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

type createCityPayload struct {
	Name      string  `json:"name"`
	StateCode *string `json:"state_code"`
}

func (h *CatalogHandler) CreateCity(c *gin.Context) {
	var p createCityPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	city, err := h.catalog.AddCity(c.Request.Context(), p.Name, p.StateCode)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *CatalogHandler) DeleteCity(c *gin.Context) {
	if err := h.catalog.RemoveCity(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type createVehiclePayload struct {
	Name            string  `json:"name"`
	Model           *string `json:"model"`
	VehicleType     string  `json:"vehicle_type"`
	SeatingCapacity int     `json:"seating_capacity"`
	ImageURL        *string `json:"image_url"`
}

func (h *CatalogHandler) CreateVehicle(c *gin.Context) {
	var p createVehiclePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	v, err := h.catalog.AddVehicle(c.Request.Context(), catalog.Vehicle{
		Name:            p.Name,
		Model:           p.Model,
		VehicleType:     p.VehicleType,
		SeatingCapacity: p.SeatingCapacity,
		ImageURL:        p.ImageURL,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *CatalogHandler) SetVehicleActive(c *gin.Context) {
	var p struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.catalog.SetVehicleActive(c.Request.Context(), types.ID(c.Param("id")), p.Active); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

type createPackagePayload struct {
	Name       string `json:"name"`
	Hours      int    `json:"hours"`
	Kilometers int    `json:"kilometers"`
}

func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var p createPackagePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	pkg, err := h.catalog.AddPackage(c.Request.Context(), catalog.LocalPackage{
		Name:       p.Name,
		Hours:      p.Hours,
		Kilometers: p.Kilometers,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}
