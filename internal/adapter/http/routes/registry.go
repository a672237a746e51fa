package routes

import (
	"hvac_registry/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquipments    = "/equipments"
	PathModelFamilies = "/model-families"
	PathBrands        = "/brands"
	PathLocations     = "/locations"
	PathSync          = "/sync"
)

func addRegistryRoutes(
	rg *gin.RouterGroup,
	equipmentHandler *handlers.EquipmentHandler,
	referenceHandler *handlers.ReferenceHandler,
	modelFamilyHandler *handlers.ModelFamilyHandler,
	syncHandler *handlers.SyncHandler,
) {
	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", equipmentHandler.ListEquipments)
		equipments.POST("", equipmentHandler.CreateEquipment)
		equipments.GET("/export", equipmentHandler.ExportEquipments)
		equipments.POST("/import", equipmentHandler.ImportEquipments)
		equipments.GET("/:id", equipmentHandler.GetEquipment)
		equipments.PUT("/:id", equipmentHandler.UpdateEquipment)
		equipments.DELETE("/:id", equipmentHandler.DeleteEquipment)
	}

	families := rg.Group(PathModelFamilies)
	{
		families.GET("", modelFamilyHandler.ListModelFamilies)
		families.GET("/:family/profile", modelFamilyHandler.GetProfile)
	}

	brands := rg.Group(PathBrands)
	{
		brands.GET("", referenceHandler.ListBrands)
		brands.POST("", referenceHandler.AddBrand)
		brands.DELETE("/:id", referenceHandler.RemoveBrand)
	}

	locations := rg.Group(PathLocations)
	{
		locations.GET("", referenceHandler.ListLocations)
		locations.POST("", referenceHandler.AddLocation)
		locations.DELETE("/:id", referenceHandler.RemoveLocation)
	}

	rg.POST(PathSync, syncHandler.Sync)
}
