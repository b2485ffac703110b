package handler

import (
	"errors"
	"net/http"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderRequest defines the structure for order creation/update requests.
// order_date is opaque text and is stored as submitted.
type OrderRequest struct {
	ID         string `json:"order_id" form:"order_id"`
	Date       string `json:"order_date" form:"order_date"`
	CustomerID string `json:"cust_id" form:"cust_id"`
}

func (r *OrderRequest) fields() model.Order {
	return model.Order{
		ID:         r.ID,
		Date:       r.Date,
		CustomerID: r.CustomerID,
	}
}

// ListOrders returns all orders
func (h *Handler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	orders, err := h.store.ListOrders()
	if err != nil {
		log.Error("Failed to retrieve orders", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// NewOrderForm returns the data backing the blank order form: the customer
// list the form offers for the cust_id field.
func (h *Handler) NewOrderForm(c echo.Context) error {
	log := logger.FromContext(c)

	customers, err := h.store.ListCustomers()
	if err != nil {
		log.Error("Failed to retrieve customers", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"order": nil, "customers": customers})
}

// AddOrder creates a new order from the submitted form
func (h *Handler) AddOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "create")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id is required"})
	}
	if req.CustomerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cust_id is required"})
	}

	order := req.fields()

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateOrder(&order); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			prometheus.RecordDuplicateKey("order")
			log.Warn("Order already exists", zap.String("order_id", req.ID))
			return c.JSON(http.StatusConflict, echo.Map{"error": "order_id is exist"})
		}
		log.Error("Failed to create order", zap.String("order_id", req.ID), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("orders", &model.Order{})

	log.Info("Order created successfully",
		zap.String("order_id", order.ID),
		zap.String("cust_id", order.CustomerID))
	return c.Redirect(http.StatusSeeOther, "/orders")
}

// EditOrderForm returns the data backing the order edit form: the current
// record plus the customer list.
func (h *Handler) EditOrderForm(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "get")

	id := c.Param("order_id")

	defer prometheus.TrackDBOperation("query")(time.Now())

	order, err := h.store.GetOrder(id)
	if err != nil {
		log.Warn("Order not found", zap.String("order_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	customers, err := h.store.ListCustomers()
	if err != nil {
		log.Error("Failed to retrieve customers", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"order": order, "customers": customers})
}

// UpdateOrder overwrites an existing order from the submitted form.
// The key in the path is authoritative; an order_id field in the body is ignored.
func (h *Handler) UpdateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "update")

	id := c.Param("order_id")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("order_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.CustomerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cust_id is required"})
	}

	fields := req.fields()

	defer prometheus.TrackDBOperation("update")(time.Now())

	order, err := h.store.UpdateOrder(id, &fields)
	if err != nil {
		log.Warn("Failed to update order", zap.String("order_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	log.Info("Order updated successfully", zap.String("order_id", order.ID))
	return c.Redirect(http.StatusSeeOther, "/orders")
}

// RemoveOrder deletes an order by its key. Orders still owning line items are
// not deleted.
func (h *Handler) RemoveOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "delete")

	id := c.Param("order_id")

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteOrder(id); err != nil {
		log.Warn("Failed to delete order", zap.String("order_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("orders", &model.Order{})

	log.Info("Order deleted successfully", zap.String("order_id", id))
	return c.Redirect(http.StatusFound, "/orders")
}
