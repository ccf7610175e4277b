package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"bess-valuation/internal/api/models"
	"bess-valuation/internal/config"
)

// ListMills handles GET /api/v1/mills.
func ListMills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mills": presetList(config.DefaultMills())})
}

// ListTariffs handles GET /api/v1/tariffs.
func ListTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tariffs": presetList(config.DefaultTariffs())})
}

// ListTechnologies handles GET /api/v1/technologies.
func ListTechnologies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"technologies": presetList(config.DefaultTechnologies())})
}

func presetList[T any](catalog map[string]T) []models.PresetInfo {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.PresetInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.PresetInfo{ID: id, Body: catalog[id]})
	}
	return out
}
