package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inventory-service/internal/model"
	"inventory-service/internal/store"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderItemRequest defines the structure for order line creation/update
// requests. order_item and quantity arrive as form text; binding rejects
// non-numeric input.
type OrderItemRequest struct {
	OrderID   string  `json:"order_id" form:"order_id"`
	LineNo    int     `json:"order_item" form:"order_item"`
	ProductID string  `json:"prod_id" form:"prod_id"`
	Quantity  int     `json:"quantity" form:"quantity"`
	ItemPrice float64 `json:"item_price" form:"item_price"`
}

func (r *OrderItemRequest) fields() model.OrderItem {
	return model.OrderItem{
		OrderID:   r.OrderID,
		LineNo:    r.LineNo,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		ItemPrice: r.ItemPrice,
	}
}

// orderItemKey extracts the composite (order_item, order_id) key from the path
func orderItemKey(c echo.Context) (string, int, error) {
	lineNo, err := strconv.Atoi(c.Param("order_item"))
	if err != nil {
		return "", 0, err
	}
	return c.Param("order_id"), lineNo, nil
}

// ListOrderItems returns all order line items
func (h *Handler) ListOrderItems(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_item", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	items, err := h.store.ListOrderItems()
	if err != nil {
		log.Error("Failed to retrieve order items", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"order_items": items})
}

// NewOrderItemForm returns the data backing the blank order line form: the
// order and product lists the form offers for its reference fields.
func (h *Handler) NewOrderItemForm(c echo.Context) error {
	log := logger.FromContext(c)

	orders, err := h.store.ListOrders()
	if err != nil {
		log.Error("Failed to retrieve orders", zap.Error(err))
		return h.storeError(c, err)
	}
	products, err := h.store.ListProducts()
	if err != nil {
		log.Error("Failed to retrieve products", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"order_item": nil,
		"orders":     orders,
		"products":   products,
	})
}

// AddOrderItem creates a new order line from the submitted form
func (h *Handler) AddOrderItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_item", "create")

	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.OrderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order_id is required"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "prod_id is required"})
	}

	item := req.fields()

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateOrderItem(&item); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			prometheus.RecordDuplicateKey("order_item")
			log.Warn("Order item already exists",
				zap.String("order_id", req.OrderID),
				zap.Int("order_item", req.LineNo))
			return c.JSON(http.StatusConflict, echo.Map{"error": "this primary key already exist"})
		}
		log.Error("Failed to create order item",
			zap.String("order_id", req.OrderID),
			zap.Int("order_item", req.LineNo),
			zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("order_items", &model.OrderItem{})

	log.Info("Order item created successfully",
		zap.String("order_id", item.OrderID),
		zap.Int("order_item", item.LineNo),
		zap.String("prod_id", item.ProductID))
	return c.Redirect(http.StatusSeeOther, "/order_items")
}

// EditOrderItemForm returns the data backing the order line edit form: the
// current record plus the order and product lists.
func (h *Handler) EditOrderItemForm(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_item", "get")

	orderID, lineNo, err := orderItemKey(c)
	if err != nil {
		log.Error("Invalid order item number", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order item number"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	item, err := h.store.GetOrderItem(orderID, lineNo)
	if err != nil {
		log.Warn("Order item not found",
			zap.String("order_id", orderID),
			zap.Int("order_item", lineNo),
			zap.Error(err))
		return h.storeError(c, err)
	}

	orders, err := h.store.ListOrders()
	if err != nil {
		log.Error("Failed to retrieve orders", zap.Error(err))
		return h.storeError(c, err)
	}
	products, err := h.store.ListProducts()
	if err != nil {
		log.Error("Failed to retrieve products", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"order_item": item,
		"orders":     orders,
		"products":   products,
	})
}

// UpdateOrderItem overwrites an existing order line from the submitted form.
// The composite key in the path is authoritative; key fields in the body are
// ignored.
func (h *Handler) UpdateOrderItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_item", "update")

	orderID, lineNo, err := orderItemKey(c)
	if err != nil {
		log.Error("Invalid order item number", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order item number"})
	}

	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("order_id", orderID),
			zap.Int("order_item", lineNo),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "prod_id is required"})
	}

	fields := req.fields()

	defer prometheus.TrackDBOperation("update")(time.Now())

	item, err := h.store.UpdateOrderItem(orderID, lineNo, &fields)
	if err != nil {
		log.Warn("Failed to update order item",
			zap.String("order_id", orderID),
			zap.Int("order_item", lineNo),
			zap.Error(err))
		return h.storeError(c, err)
	}

	log.Info("Order item updated successfully",
		zap.String("order_id", item.OrderID),
		zap.Int("order_item", item.LineNo))
	return c.Redirect(http.StatusSeeOther, "/order_items")
}

// RemoveOrderItem deletes an order line by its composite key
func (h *Handler) RemoveOrderItem(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_item", "delete")

	orderID, lineNo, err := orderItemKey(c)
	if err != nil {
		log.Error("Invalid order item number", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid order item number"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteOrderItem(orderID, lineNo); err != nil {
		log.Warn("Failed to delete order item",
			zap.String("order_id", orderID),
			zap.Int("order_item", lineNo),
			zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("order_items", &model.OrderItem{})

	log.Info("Order item deleted successfully",
		zap.String("order_id", orderID),
		zap.Int("order_item", lineNo))
	return c.Redirect(http.StatusFound, "/order_items")
}
