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

// VendorRequest defines the structure for vendor creation/update requests
type VendorRequest struct {
	ID      string `json:"vend_id" form:"vend_id"`
	Name    string `json:"vend_name" form:"vend_name"`
	Address string `json:"vend_address" form:"vend_address"`
	City    string `json:"vend_city" form:"vend_city"`
	State   string `json:"vend_state" form:"vend_state"`
	Zip     string `json:"vend_zip" form:"vend_zip"`
	Country string `json:"vend_country" form:"vend_country"`
}

func (r *VendorRequest) fields() model.Vendor {
	return model.Vendor{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
		Country: r.Country,
	}
}

// ListVendors returns all vendors
func (h *Handler) ListVendors(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("vendor", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	vendors, err := h.store.ListVendors()
	if err != nil {
		log.Error("Failed to retrieve vendors", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"vendors": vendors})
}

// NewVendorForm returns the data backing the blank vendor form
func (h *Handler) NewVendorForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"vendor": nil})
}

// AddVendor creates a new vendor from the submitted form
func (h *Handler) AddVendor(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("vendor", "create")

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vend_id is required"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vend_name is required"})
	}

	vendor := req.fields()

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateVendor(&vendor); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			prometheus.RecordDuplicateKey("vendor")
			log.Warn("Vendor already exists", zap.String("vend_id", req.ID))
			return c.JSON(http.StatusConflict, echo.Map{"error": "vendor_id is exist"})
		}
		log.Error("Failed to create vendor", zap.String("vend_id", req.ID), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("vendors", &model.Vendor{})

	log.Info("Vendor created successfully", zap.String("vend_id", vendor.ID))
	return c.Redirect(http.StatusSeeOther, "/vendors")
}

// EditVendorForm returns the data backing the vendor edit form
func (h *Handler) EditVendorForm(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("vendor", "get")

	id := c.Param("vend_id")

	defer prometheus.TrackDBOperation("query")(time.Now())

	vendor, err := h.store.GetVendor(id)
	if err != nil {
		log.Warn("Vendor not found", zap.String("vend_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"vendor": vendor})
}

// UpdateVendor overwrites an existing vendor from the submitted form.
// The key in the path is authoritative; a vend_id field in the body is ignored.
func (h *Handler) UpdateVendor(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("vendor", "update")

	id := c.Param("vend_id")

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("vend_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vend_name is required"})
	}

	fields := req.fields()

	defer prometheus.TrackDBOperation("update")(time.Now())

	vendor, err := h.store.UpdateVendor(id, &fields)
	if err != nil {
		log.Warn("Failed to update vendor", zap.String("vend_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	log.Info("Vendor updated successfully", zap.String("vend_id", vendor.ID))
	return c.Redirect(http.StatusSeeOther, "/vendors")
}

// RemoveVendor deletes a vendor by its key. Vendors still owning products are
// not deleted.
func (h *Handler) RemoveVendor(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("vendor", "delete")

	id := c.Param("vend_id")

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteVendor(id); err != nil {
		log.Warn("Failed to delete vendor", zap.String("vend_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("vendors", &model.Vendor{})

	log.Info("Vendor deleted successfully", zap.String("vend_id", id))
	return c.Redirect(http.StatusFound, "/vendors")
}
