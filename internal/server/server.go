// Package server exposes browsing and the cart over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/query"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Catalog is the read side of source.Adapter.
type Catalog interface {
	FetchRestaurants(ctx context.Context, loc models.Location, page int) (models.Page, error)
	FetchRestaurantDetail(ctx context.Context, id string) (models.RestaurantDetail, error)
}

type Handler struct {
	catalog  Catalog
	carts    *CartStore
	fallback models.Location
}

func NewHandler(catalog Catalog, carts *CartStore, fallback models.Location) *Handler {
	return &Handler{catalog: catalog, carts: carts, fallback: fallback}
}

// NewRouter wires the routes onto a gin engine.
func NewRouter(h *Handler, cfg models.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/filters", h.ListFilters)
		api.GET("/restaurants", h.ListRestaurants)
		api.GET("/restaurants/:id", h.GetRestaurant)
		api.POST("/carts", h.CreateCart)
		api.GET("/carts/:id", h.GetCart)
		api.PUT("/carts/:id/items", h.SetCartItem)
	}
	return r
}

func (h *Handler) ListFilters(c *gin.Context) {
	c.JSON(http.StatusOK, query.Filters())
}

type restaurantsResponse struct {
	models.Page
	Location models.Location `json:"location"`
	Query    string          `json:"query"`
	Filter   string          `json:"filter"`
}

// ListRestaurants serves one page for the given coordinates, narrowed by the
// search text and filter. Missing coordinates use the configured default.
func (h *Handler) ListRestaurants(c *gin.Context) {
	loc := h.fallback
	if raw := c.Query("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil || lat < -90 || lat > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
			return
		}
		loc.Lat = lat
	}
	if raw := c.Query("lng"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil || lng < -180 || lng > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lng"})
			return
		}
		loc.Lon = lng
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = p
	}

	result, err := h.catalog.FetchRestaurants(c.Request.Context(), loc, page)
	if err != nil {
		respondContextError(c, err)
		return
	}

	q := strings.TrimSpace(c.Query("q"))
	filter := query.ParseFilter(c.Query("filter"))
	result.Items = query.ApplyFilter(result.Items, q, filter)

	c.JSON(http.StatusOK, restaurantsResponse{Page: result, Location: loc, Query: q, Filter: filter})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}
	detail, err := h.catalog.FetchRestaurantDetail(c.Request.Context(), id)
	if err != nil {
		respondContextError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateCart(c *gin.Context) {
	id := h.carts.Create()
	summary, _ := h.carts.Get(id)
	c.JSON(http.StatusCreated, gin.H{"id": id, "cart": summary})
}

func (h *Handler) GetCart(c *gin.Context) {
	summary, ok := h.carts.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Upper bounds for a single cart line; cart events carry 32-bit fields.
const (
	maxItemQuantity = 999
	maxItemPrice    = 1_000_000
)

type cartItemRequest struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

func (h *Handler) SetCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Item.ID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}
	if req.Item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item price must not be negative"})
		return
	}
	if req.Item.Price > maxItemPrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item price is out of range"})
		return
	}
	if req.Quantity > maxItemQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is out of range"})
		return
	}

	summary, ok := h.carts.SetQuantity(c.Param("id"), req.Item, req.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func respondContextError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
}
