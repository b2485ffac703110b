package store

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inventory-service/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	s, err := New(db)
	require.NoError(t, err)
	return s
}

func seedCustomer(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.CreateCustomer(&model.Customer{ID: id, Name: "Customer " + id}))
}

func seedVendor(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.CreateVendor(&model.Vendor{ID: id, Name: "Vendor " + id}))
}

func seedProduct(t *testing.T, s *Store, id, vendorID string) {
	t.Helper()
	require.NoError(t, s.CreateProduct(&model.Product{ID: id, VendorID: vendorID, Name: "Product " + id, Price: 9.99}))
}

func seedOrder(t *testing.T, s *Store, id, customerID string) {
	t.Helper()
	require.NoError(t, s.CreateOrder(&model.Order{ID: id, Date: "2024-01-15", CustomerID: customerID}))
}

func TestCreateAndGetCustomer(t *testing.T) {
	s := newTestStore(t)

	customer := model.Customer{
		ID:      "C1",
		Name:    "Acme Ltd",
		Address: "1 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62701",
		Country: "USA",
		Contact: "Jane Doe",
		Email:   "jane@acme.test",
	}
	require.NoError(t, s.CreateCustomer(&customer))

	got, err := s.GetCustomer("C1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", got.Name)
	assert.Equal(t, "jane@acme.test", got.Email)
}

func TestCreateCustomerDuplicateKey(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateCustomer(&model.Customer{ID: "C1", Name: "Original"}))

	err := s.CreateCustomer(&model.Customer{ID: "C1", Name: "Impostor"})
	require.ErrorIs(t, err, ErrDuplicateKey)

	// The existing row must be left unmodified
	got, err := s.GetCustomer("C1")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
}

func TestGetCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCustomer("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateCustomer("ghost", &model.Customer{Name: "whoever"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCustomerOverwritesFieldsAndPreservesKey(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")

	updated, err := s.UpdateCustomer("C1", &model.Customer{
		// A different ID in the payload is ignored: the lookup key wins
		ID:    "C2",
		Name:  "Renamed",
		City:  "Boston",
		Email: "new@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, "C1", updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Boston", updated.City)

	_, err = s.GetCustomer("C2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")

	require.NoError(t, s.DeleteCustomer("C1"))

	_, err := s.GetCustomer("C1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteCustomer("C1"), ErrNotFound)
}

func TestDeleteCustomerRestrictedByOrders(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedOrder(t, s, "O1", "C1")

	assert.ErrorIs(t, s.DeleteCustomer("C1"), ErrInUse)

	require.NoError(t, s.DeleteOrder("O1"))
	require.NoError(t, s.DeleteCustomer("C1"))
}

func TestCreateProductRequiresExistingVendor(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateProduct(&model.Product{ID: "P1", VendorID: "ghost", Name: "Widget"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestUpdateProductRequiresExistingVendor(t *testing.T) {
	s := newTestStore(t)
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")

	_, err := s.UpdateProduct("P1", &model.Product{VendorID: "ghost", Name: "Widget"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestDeleteVendorRestrictedByProducts(t *testing.T) {
	s := newTestStore(t)
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")

	// Deleting a vendor with dependent products is rejected rather than
	// leaving the product with a dangling vend_id
	assert.ErrorIs(t, s.DeleteVendor("V1"), ErrInUse)

	products, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "V1", products[0].VendorID)

	require.NoError(t, s.DeleteProduct("P1"))
	require.NoError(t, s.DeleteVendor("V1"))
}

func TestUpdateProductOverwritesFields(t *testing.T) {
	s := newTestStore(t)
	seedVendor(t, s, "V1")
	seedVendor(t, s, "V2")
	seedProduct(t, s, "P1", "V1")

	updated, err := s.UpdateProduct("P1", &model.Product{
		VendorID:    "V2",
		Name:        "Deluxe Widget",
		Price:       19.95,
		Description: "now with more widget",
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", updated.ID)
	assert.Equal(t, "V2", updated.VendorID)
	assert.Equal(t, 19.95, updated.Price)
}

func TestCreateOrderRequiresExistingCustomer(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateOrder(&model.Order{ID: "O1", Date: "2024-01-15", CustomerID: "ghost"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestOrderDateStoredVerbatim(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")

	// Order dates are opaque text, never parsed or validated
	require.NoError(t, s.CreateOrder(&model.Order{ID: "O1", Date: "sometime next week", CustomerID: "C1"}))

	got, err := s.GetOrder("O1")
	require.NoError(t, err)
	assert.Equal(t, "sometime next week", got.Date)
}

func TestOrderItemKeysScopedPerOrder(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")
	seedOrder(t, s, "O1", "C1")
	seedOrder(t, s, "O2", "C1")

	// Line 1 may exist on both O1 and O2
	require.NoError(t, s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "P1", Quantity: 2, ItemPrice: 9.99}))
	require.NoError(t, s.CreateOrderItem(&model.OrderItem{OrderID: "O2", LineNo: 1, ProductID: "P1", Quantity: 1, ItemPrice: 9.99}))

	// But not twice on O1
	err := s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "P1", Quantity: 5, ItemPrice: 9.99})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	got, err := s.GetOrderItem("O1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestOrderItemReferences(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")
	seedOrder(t, s, "O1", "C1")

	err := s.CreateOrderItem(&model.OrderItem{OrderID: "ghost", LineNo: 1, ProductID: "P1"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	err = s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "ghost"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestOrderItemPriceIndependentOfProduct(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")
	seedOrder(t, s, "O1", "C1")

	require.NoError(t, s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "P1", Quantity: 1, ItemPrice: 5.00}))

	// Changing the product price does not touch the line's snapshot
	_, err := s.UpdateProduct("P1", &model.Product{VendorID: "V1", Name: "Product P1", Price: 42.00})
	require.NoError(t, err)

	got, err := s.GetOrderItem("O1", 1)
	require.NoError(t, err)
	assert.Equal(t, 5.00, got.ItemPrice)
}

func TestUpdateOrderItem(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")
	seedProduct(t, s, "P2", "V1")
	seedOrder(t, s, "O1", "C1")
	require.NoError(t, s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "P1", Quantity: 1, ItemPrice: 5.00}))

	updated, err := s.UpdateOrderItem("O1", 1, &model.OrderItem{ProductID: "P2", Quantity: 3, ItemPrice: 7.50})
	require.NoError(t, err)
	assert.Equal(t, "O1", updated.OrderID)
	assert.Equal(t, 1, updated.LineNo)
	assert.Equal(t, "P2", updated.ProductID)
	assert.Equal(t, 3, updated.Quantity)

	_, err = s.UpdateOrderItem("O1", 99, &model.OrderItem{ProductID: "P1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderRestrictedByItems(t *testing.T) {
	s := newTestStore(t)
	seedCustomer(t, s, "C1")
	seedVendor(t, s, "V1")
	seedProduct(t, s, "P1", "V1")
	seedOrder(t, s, "O1", "C1")
	require.NoError(t, s.CreateOrderItem(&model.OrderItem{OrderID: "O1", LineNo: 1, ProductID: "P1", Quantity: 1, ItemPrice: 5.00}))

	assert.ErrorIs(t, s.DeleteOrder("O1"), ErrInUse)
	assert.ErrorIs(t, s.DeleteProduct("P1"), ErrInUse)

	require.NoError(t, s.DeleteOrderItem("O1", 1))
	assert.ErrorIs(t, s.DeleteOrderItem("O1", 1), ErrNotFound)

	require.NoError(t, s.DeleteOrder("O1"))
	require.NoError(t, s.DeleteProduct("P1"))
}

func TestListOrderedByKey(t *testing.T) {
	s := newTestStore(t)
	seedVendor(t, s, "V2")
	seedVendor(t, s, "V1")
	seedVendor(t, s, "V3")

	vendors, err := s.ListVendors()
	require.NoError(t, err)
	require.Len(t, vendors, 3)
	assert.Equal(t, "V1", vendors[0].ID)
	assert.Equal(t, "V2", vendors[1].ID)
	assert.Equal(t, "V3", vendors[2].ID)
}
