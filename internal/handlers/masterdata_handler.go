package handlers

import (
	"net/http"
	"order_entry/internal/services"

	"github.com/gin-gonic/gin"
)

type MasterDataHandler struct {
	masterDataService services.MasterDataService
}

func NewMasterDataHandler(masterDataService services.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterDataService: masterDataService}
}

func (h *MasterDataHandler) GetCustomers(c *gin.Context) {
	customers, err := h.masterDataService.GetCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetDefaultIncoterms returns the default incoterms from the customer master,
// falling back to FOB for unknown customers.
func (h *MasterDataHandler) GetDefaultIncoterms(c *gin.Context) {
	customerID := c.Param("customer_id")

	incoterms, err := h.masterDataService.GetDefaultIncoterms(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load default incoterms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer_id": customerID,
		"incoterms":   incoterms,
	})
}

func (h *MasterDataHandler) GetIncoterms(c *gin.Context) {
	incoterms, err := h.masterDataService.GetIncoterms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load incoterms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"incoterms": incoterms})
}

func (h *MasterDataHandler) GetUnitsOfMeasure(c *gin.Context) {
	uoms, err := h.masterDataService.GetUnitsOfMeasure()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load units of measure"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"units_of_measure": uoms})
}

func (h *MasterDataHandler) GetPlants(c *gin.Context) {
	plants, err := h.masterDataService.GetPlants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plants": plants})
}

func (h *MasterDataHandler) GetStorageLocations(c *gin.Context) {
	plantCode := c.Param("plant_code")

	locations, err := h.masterDataService.GetStorageLocations(plantCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load storage locations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plant_code":        plantCode,
		"storage_locations": locations,
	})
}

func (h *MasterDataHandler) SearchMaterials(c *gin.Context) {
	query := c.Query("search")

	materials, err := h.masterDataService.SearchMaterials(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search materials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": materials})
}

// LookupMaterial resolves one material ID. An unknown material is a normal
// response with found=false, not a 404: the form renders it inline.
func (h *MasterDataHandler) LookupMaterial(c *gin.Context) {
	materialID := c.Param("material_id")

	lookup, err := h.masterDataService.LookupMaterial(materialID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up material"})
		return
	}
	c.JSON(http.StatusOK, lookup)
}
