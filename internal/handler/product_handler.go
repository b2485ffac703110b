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

// ProductRequest defines the structure for product creation/update requests.
// prod_price arrives as form text; binding rejects non-numeric input.
type ProductRequest struct {
	ID          string  `json:"prod_id" form:"prod_id"`
	VendorID    string  `json:"vend_id" form:"vend_id"`
	Name        string  `json:"prod_name" form:"prod_name"`
	Price       float64 `json:"prod_price" form:"prod_price"`
	Description string  `json:"prod_desc" form:"prod_desc"`
}

func (r *ProductRequest) fields() model.Product {
	return model.Product{
		ID:          r.ID,
		VendorID:    r.VendorID,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
	}
}

// ListProducts returns all products
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	products, err := h.store.ListProducts()
	if err != nil {
		log.Error("Failed to retrieve products", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// NewProductForm returns the data backing the blank product form: the vendor
// list the form offers for the vend_id field.
func (h *Handler) NewProductForm(c echo.Context) error {
	log := logger.FromContext(c)

	vendors, err := h.store.ListVendors()
	if err != nil {
		log.Error("Failed to retrieve vendors", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product": nil, "vendors": vendors})
}

// AddProduct creates a new product from the submitted form
func (h *Handler) AddProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "prod_id is required"})
	}
	if req.VendorID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vend_id is required"})
	}

	product := req.fields()

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateProduct(&product); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			prometheus.RecordDuplicateKey("product")
			log.Warn("Product already exists", zap.String("prod_id", req.ID))
			return c.JSON(http.StatusConflict, echo.Map{"error": "product_id is exist"})
		}
		log.Error("Failed to create product", zap.String("prod_id", req.ID), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("products", &model.Product{})

	log.Info("Product created successfully",
		zap.String("prod_id", product.ID),
		zap.String("vend_id", product.VendorID))
	return c.Redirect(http.StatusSeeOther, "/products")
}

// EditProductForm returns the data backing the product edit form: the current
// record plus the vendor list.
func (h *Handler) EditProductForm(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "get")

	id := c.Param("prod_id")

	defer prometheus.TrackDBOperation("query")(time.Now())

	product, err := h.store.GetProduct(id)
	if err != nil {
		log.Warn("Product not found", zap.String("prod_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	vendors, err := h.store.ListVendors()
	if err != nil {
		log.Error("Failed to retrieve vendors", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product": product, "vendors": vendors})
}

// UpdateProduct overwrites an existing product from the submitted form.
// The key in the path is authoritative; a prod_id field in the body is ignored.
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "update")

	id := c.Param("prod_id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("prod_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.VendorID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vend_id is required"})
	}

	fields := req.fields()

	defer prometheus.TrackDBOperation("update")(time.Now())

	product, err := h.store.UpdateProduct(id, &fields)
	if err != nil {
		log.Warn("Failed to update product", zap.String("prod_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	log.Info("Product updated successfully", zap.String("prod_id", product.ID))
	return c.Redirect(http.StatusSeeOther, "/products")
}

// RemoveProduct deletes a product by its key. Products still referenced by
// order items are not deleted.
func (h *Handler) RemoveProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "delete")

	id := c.Param("prod_id")

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteProduct(id); err != nil {
		log.Warn("Failed to delete product", zap.String("prod_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("products", &model.Product{})

	log.Info("Product deleted successfully", zap.String("prod_id", id))
	return c.Redirect(http.StatusFound, "/products")
}
