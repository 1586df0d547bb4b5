package server

import (
	"errors"
	"net/http"
	"strconv"

	"airbnb-stats/services"
	"airbnb-stats/storage"

	"github.com/gin-gonic/gin"
)

// Router exposes a Dashboard over HTTP
type Router struct {
	dashboard *services.Dashboard
}

// NewRouter wires the dashboard handlers
func NewRouter(dashboard *services.Dashboard) *gin.Engine {
	r := &Router{dashboard: dashboard}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/boroughs", r.listBoroughs)
		api.GET("/price-options", r.priceOptions)
		api.GET("/dashboard", r.getDashboard)
		api.PUT("/price-range", r.setPriceRange)
		api.PUT("/borough", r.selectBorough)
		api.POST("/slots/:slot/cycle", r.cycleSlot)
		api.GET("/statistics/export", r.exportStatistics)
	}

	return router
}

func (r *Router) listBoroughs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boroughs": r.dashboard.Boroughs()})
}

func (r *Router) priceOptions(c *gin.Context) {
	format := func(prices []int) []string {
		out := make([]string, len(prices))
		for i, p := range prices {
			out[i] = services.FormatPriceOption(p)
		}
		return out
	}
	c.JSON(http.StatusOK, gin.H{
		"min": format(services.MinPriceOptions),
		"max": format(services.MaxPriceOptions),
	})
}

func (r *Router) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, r.dashboard.View())
}

// priceRangeReq takes string prices, either "100" or option labels such as "£100"
type priceRangeReq struct {
	Min string `json:"min" binding:"required"`
	Max string `json:"max" binding:"required"`
}

func (r *Router) setPriceRange(c *gin.Context) {
	var req priceRangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min and max are required"})
		return
	}
	minPrice, err := services.ParsePriceOption(req.Min)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxPrice, err := services.ParsePriceOption(req.Max)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.ValidatePriceRange(minPrice, maxPrice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := r.dashboard.SetPriceRange(minPrice, maxPrice)
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type boroughReq struct {
	Borough string `json:"borough" binding:"required"`
}

func (r *Router) selectBorough(c *gin.Context) {
	var req boroughReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "borough is required"})
		return
	}
	view, err := r.dashboard.SelectBorough(req.Borough)
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) cycleSlot(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be a number"})
		return
	}
	dir, err := services.ParseDirection(c.DefaultQuery("direction", "forward"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := r.dashboard.Cycle(slot, dir)
	if err != nil {
		r.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (r *Router) exportStatistics(c *gin.Context) {
	table := r.dashboard.Table()
	if table == nil {
		c.JSON(http.StatusConflict, gin.H{"error": services.ErrNotLoaded.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=borough_statistics.csv")
	if err := storage.EncodeBoroughStats(c.Writer, table); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}

func (r *Router) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUnknownBorough):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidSlot):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotLoaded):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
