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

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	ID      string `json:"cust_id" form:"cust_id"`
	Name    string `json:"cust_name" form:"cust_name"`
	Address string `json:"cust_address" form:"cust_address"`
	City    string `json:"cust_city" form:"cust_city"`
	State   string `json:"cust_state" form:"cust_state"`
	Zip     string `json:"cust_zip" form:"cust_zip"`
	Country string `json:"cust_country" form:"cust_country"`
	Contact string `json:"cust_contact" form:"cust_contact"`
	Email   string `json:"cust_email" form:"cust_email"`
}

func (r *CustomerRequest) fields() model.Customer {
	return model.Customer{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
		Country: r.Country,
		Contact: r.Contact,
		Email:   r.Email,
	}
}

// ListCustomers returns all customers
func (h *Handler) ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	customers, err := h.store.ListCustomers()
	if err != nil {
		log.Error("Failed to retrieve customers", zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"customers": customers})
}

// NewCustomerForm returns the data backing the blank customer form
func (h *Handler) NewCustomerForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"customer": nil})
}

// AddCustomer creates a new customer from the submitted form
func (h *Handler) AddCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "create")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cust_id is required"})
	}

	customer := req.fields()

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := h.store.CreateCustomer(&customer); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			prometheus.RecordDuplicateKey("customer")
			log.Warn("Customer already exists", zap.String("cust_id", req.ID))
			return c.JSON(http.StatusConflict, echo.Map{"error": "customer_id is exist"})
		}
		log.Error("Failed to create customer", zap.String("cust_id", req.ID), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("customers", &model.Customer{})

	log.Info("Customer created successfully", zap.String("cust_id", customer.ID))
	return c.Redirect(http.StatusSeeOther, "/customers")
}

// EditCustomerForm returns the data backing the customer edit form
func (h *Handler) EditCustomerForm(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "get")

	id := c.Param("cust_id")

	defer prometheus.TrackDBOperation("query")(time.Now())

	customer, err := h.store.GetCustomer(id)
	if err != nil {
		log.Warn("Customer not found", zap.String("cust_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"customer": customer})
}

// UpdateCustomer overwrites an existing customer from the submitted form.
// The key in the path is authoritative; a cust_id field in the body is ignored.
func (h *Handler) UpdateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "update")

	id := c.Param("cust_id")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("cust_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	fields := req.fields()

	defer prometheus.TrackDBOperation("update")(time.Now())

	customer, err := h.store.UpdateCustomer(id, &fields)
	if err != nil {
		log.Warn("Failed to update customer", zap.String("cust_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	log.Info("Customer updated successfully", zap.String("cust_id", customer.ID))
	return c.Redirect(http.StatusSeeOther, "/customers")
}

// RemoveCustomer deletes a customer by its key
func (h *Handler) RemoveCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("customer", "delete")

	id := c.Param("cust_id")

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.store.DeleteCustomer(id); err != nil {
		log.Warn("Failed to delete customer", zap.String("cust_id", id), zap.Error(err))
		return h.storeError(c, err)
	}

	go h.trackCollectionSize("customers", &model.Customer{})

	log.Info("Customer deleted successfully", zap.String("cust_id", id))
	return c.Redirect(http.StatusFound, "/customers")
}
