package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/store"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
)

// Handler serves the inventory form routes. The record store is injected
// explicitly rather than reached through package state.
type Handler struct {
	store *store.Store
}

// New returns a handler bound to the given store.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// Register wires the entity form routes onto e: list views, add forms,
// update forms keyed by path, and delete-by-key routes.
func (h *Handler) Register(e *echo.Echo) {
	// List views
	e.GET("/customers", h.ListCustomers)
	e.GET("/vendors", h.ListVendors)
	e.GET("/products", h.ListProducts)
	e.GET("/orders", h.ListOrders)
	e.GET("/order_items", h.ListOrderItems)

	// Add forms
	e.GET("/add_customer", h.NewCustomerForm)
	e.POST("/add_customer", h.AddCustomer)
	e.GET("/add_vendor", h.NewVendorForm)
	e.POST("/add_vendor", h.AddVendor)
	e.GET("/add_product", h.NewProductForm)
	e.POST("/add_product", h.AddProduct)
	e.GET("/add_order", h.NewOrderForm)
	e.POST("/add_order", h.AddOrder)
	e.GET("/add_order_item", h.NewOrderItemForm)
	e.POST("/add_order_item", h.AddOrderItem)

	// Update forms
	e.GET("/update_customer/:cust_id", h.EditCustomerForm)
	e.POST("/update_customer/:cust_id", h.UpdateCustomer)
	e.GET("/update_vendor/:vend_id", h.EditVendorForm)
	e.POST("/update_vendor/:vend_id", h.UpdateVendor)
	e.GET("/update_product/:prod_id", h.EditProductForm)
	e.POST("/update_product/:prod_id", h.UpdateProduct)
	e.GET("/update_order/:order_id", h.EditOrderForm)
	e.POST("/update_order/:order_id", h.UpdateOrder)
	e.GET("/update_order_item/:order_item/:order_id", h.EditOrderItemForm)
	e.POST("/update_order_item/:order_item/:order_id", h.UpdateOrderItem)

	// Delete by key
	e.GET("/remove_customer/:cust_id", h.RemoveCustomer)
	e.GET("/remove_vendor/:vend_id", h.RemoveVendor)
	e.GET("/remove_product/:prod_id", h.RemoveProduct)
	e.GET("/remove_order/:order_id", h.RemoveOrder)
	e.GET("/remove_order_item/:order_item/:order_id", h.RemoveOrderItem)
}

// Hello is a simple handler that returns a welcome message
// Used for health check and root endpoints
func (h *Handler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Inventory Service API is running",
		"version": "1.0.0",
	})
}

// storeError maps record-store failures onto HTTP responses: missing keys are
// 404, bad references are 400, restricted deletes and duplicate keys are 409.
func (h *Handler) storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrReferenceNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateKey), errors.Is(err, store.ErrInUse):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// trackCollectionSize refreshes the rows gauge for a collection
func (h *Handler) trackCollectionSize(entity string, m interface{}) {
	var count int64
	if err := h.store.DB().Model(m).Count(&count).Error; err != nil {
		return
	}
	prometheus.UpdateCollectionSize(entity, int(count))
}
