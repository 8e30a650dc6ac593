package store_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumiere-jewelry/storefront/internal/storage"
	"github.com/lumiere-jewelry/storefront/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()

	backend := storage.NewMemory()
	s, err := store.New(store.Config{AdminPassword: "admin123"}, backend)
	require.NoError(t, err)

	return s, backend
}

func TestStore_SeedsWhenSlotsAbsent(t *testing.T) {
	s, _ := newTestStore(t)

	products := s.Products()
	assert.Len(t, products, 6)

	categories := map[store.Category]bool{}
	outOfStock := 0
	for _, p := range products {
		categories[p.Category] = true
		if p.Stock == 0 {
			outOfStock++
		}
	}
	assert.True(t, categories[store.CategoryChain])
	assert.True(t, categories[store.CategoryRing])
	assert.True(t, categories[store.CategoryBracelet])
	assert.Equal(t, 1, outOfStock)

	orders := s.Orders()
	require.Len(t, orders, 3)
	statuses := map[store.OrderStatus]bool{}
	for _, o := range orders {
		statuses[o.Status] = true
	}
	assert.True(t, statuses[store.OrderPending])
	assert.True(t, statuses[store.OrderProcessing])
	assert.True(t, statuses[store.OrderShipped])

	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Inquiries())
	assert.False(t, s.IsAdmin())
}

func TestStore_AddToCart(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddToCart("1"))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].Product.ID)
	assert.Equal(t, 1, cart[0].Quantity)

	// Same product again increments the existing line.
	require.NoError(t, s.AddToCart("1"))

	cart = s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	err := s.AddToCart("no-such-product")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, s.Cart(), 1)
}

func TestStore_UpdateCartQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantGone bool
		wantQty  int
	}{
		{name: "sets_quantity_verbatim", quantity: 5, wantQty: 5},
		{name: "zero_removes_line", quantity: 0, wantGone: true},
		{name: "negative_removes_line", quantity: -1, wantGone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			require.NoError(t, s.AddToCart("3"))

			s.UpdateCartQuantity("3", tt.quantity)

			cart := s.Cart()
			if tt.wantGone {
				assert.Empty(t, cart)
			} else {
				require.Len(t, cart, 1)
				assert.Equal(t, tt.wantQty, cart[0].Quantity)
			}
		})
	}
}

func TestStore_RemoveFromCart(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddToCart("1"))

	s.RemoveFromCart("1")
	assert.Empty(t, s.Cart())

	// Unknown id is a silent no-op.
	s.RemoveFromCart("no-such-product")
	assert.Empty(t, s.Cart())
}

func TestStore_ClearCart(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddToCart("1"))
	require.NoError(t, s.AddToCart("3"))

	s.ClearCart()

	assert.Empty(t, s.Cart())
}

func TestStore_Summary(t *testing.T) {
	s, _ := newTestStore(t)

	sum := s.Summary()
	assert.Zero(t, sum.Subtotal)
	assert.Zero(t, sum.Shipping)
	assert.Zero(t, sum.Total)

	require.NoError(t, s.AddToCart("3")) // 449
	s.UpdateCartQuantity("3", 2)

	sum = s.Summary()
	assert.Equal(t, 898.0, sum.Subtotal)
	assert.Equal(t, 25.0, sum.Shipping)
	assert.Equal(t, 923.0, sum.Total)
}

func TestStore_AddProduct(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddProduct(store.Product{
		Name:     "Rope Chain",
		Price:    999,
		Category: store.CategoryChain,
		Stock:    4,
	})

	assert.Regexp(t, `^PROD-\d+$`, created.ID)

	got, found := s.Product(created.ID)
	require.True(t, found)
	assert.Equal(t, created, got)
	assert.Len(t, s.Products(), 7)
}

func TestStore_UpdateProduct(t *testing.T) {
	s, _ := newTestStore(t)

	price := 599.0
	stock := -2
	updated, found := s.UpdateProduct("3", store.ProductPatch{Price: &price, Stock: &stock})
	require.True(t, found)
	assert.Equal(t, 599.0, updated.Price)
	assert.Equal(t, -2, updated.Stock)

	// Untouched fields survive the merge.
	assert.Equal(t, "Delicate Gold Necklace", updated.Name)

	before := s.Products()
	_, found = s.UpdateProduct("no-such-product", store.ProductPatch{Price: &price})
	assert.False(t, found)
	assert.Empty(t, cmp.Diff(before, s.Products()))
}

func TestStore_DeleteProduct(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.DeleteProduct("6"))
	_, found := s.Product("6")
	assert.False(t, found)
	assert.Len(t, s.Products(), 5)

	assert.False(t, s.DeleteProduct("6"))
}

func TestStore_DeleteProductKeepsOrderSnapshots(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddToCart("1"))
	order, err := s.CreateOrder(store.CustomerInfo{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		ShippingAddress: "1 Ocean Dr, Miami, FL 33139",
	})
	require.NoError(t, err)

	require.True(t, s.DeleteProduct("1"))

	got, found := s.Order(order.ID)
	require.True(t, found)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Classic Cuban Link Chain", got.Items[0].ProductName)
	assert.Equal(t, 1299.0, got.Items[0].Price)
}

func TestStore_CreateOrder(t *testing.T) {
	s, _ := newTestStore(t)

	// productA x2 and productB x1 at catalog prices.
	require.NoError(t, s.AddToCart("3")) // 449
	s.UpdateCartQuantity("3", 2)
	require.NoError(t, s.AddToCart("5")) // 6499

	stockBeforeA, _ := s.Product("3")
	stockBeforeB, _ := s.Product("5")

	order, err := s.CreateOrder(store.CustomerInfo{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		ShippingAddress: "1 Ocean Dr, Miami, FL 33139",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d+$`, order.ID)
	assert.Equal(t, store.OrderPending, order.Status)
	assert.Equal(t, 449.0*2+6499, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, store.OrderItem{ProductID: "3", ProductName: "Delicate Gold Necklace", Quantity: 2, Price: 449}, order.Items[0])
	assert.Equal(t, store.OrderItem{ProductID: "5", ProductName: "Diamond Tennis Bracelet", Quantity: 1, Price: 6499}, order.Items[1])

	assert.Empty(t, s.Cart())

	afterA, _ := s.Product("3")
	afterB, _ := s.Product("5")
	assert.Equal(t, stockBeforeA.Stock-2, afterA.Stock)
	assert.Equal(t, stockBeforeB.Stock-1, afterB.Stock)

	stored, found := s.Order(order.ID)
	require.True(t, found)
	assert.Empty(t, cmp.Diff(order, stored))
}

func TestStore_CreateOrder_EmptyCart(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateOrder(store.CustomerInfo{Name: "Jane Doe"})
	assert.ErrorIs(t, err, store.ErrEmptyCart)
	assert.Len(t, s.Orders(), 3)
}

func TestStore_CreateOrder_DropsStaleCartLines(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddToCart("1"))
	require.NoError(t, s.AddToCart("3"))
	require.True(t, s.DeleteProduct("1"))

	order, err := s.CreateOrder(store.CustomerInfo{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		ShippingAddress: "1 Ocean Dr, Miami, FL 33139",
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "3", order.Items[0].ProductID)

	// A cart made entirely of stale lines is treated as empty.
	require.NoError(t, s.AddToCart("3"))
	require.True(t, s.DeleteProduct("3"))
	_, err = s.CreateOrder(store.CustomerInfo{Name: "Jane Doe"})
	assert.ErrorIs(t, err, store.ErrEmptyCart)
}

func TestStore_CreateOrder_ChargesCartLinePrices(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddToCart("3")) // 449 at time of add
	s.UpdateCartQuantity("3", 2)

	// A later catalog price edit must not change what the cart charges.
	newPrice := 999.0
	_, found := s.UpdateProduct("3", store.ProductPatch{Price: &newPrice})
	require.True(t, found)

	sum := s.Summary()
	order, err := s.CreateOrder(store.CustomerInfo{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		ShippingAddress: "1 Ocean Dr, Miami, FL 33139",
	})
	require.NoError(t, err)

	assert.Equal(t, sum.Subtotal, order.Total)
	assert.Equal(t, 898.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 449.0, order.Items[0].Price)
}

func TestStore_CreateOrder_StockMayGoNegative(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddToCart("6")) // stock 1
	s.UpdateCartQuantity("6", 3)

	_, err := s.CreateOrder(store.CustomerInfo{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		ShippingAddress: "1 Ocean Dr, Miami, FL 33139",
	})
	require.NoError(t, err)

	p, found := s.Product("6")
	require.True(t, found)
	assert.Equal(t, -2, p.Stock)
}

func TestStore_UpdateOrderStatus(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.UpdateOrderStatus("ORD-001", store.OrderDelivered))
	order, found := s.Order("ORD-001")
	require.True(t, found)
	assert.Equal(t, store.OrderDelivered, order.Status)

	// Any valid status is reachable from any other, including backwards.
	require.NoError(t, s.UpdateOrderStatus("ORD-001", store.OrderPending))

	err := s.UpdateOrderStatus("ORD-001", store.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	err = s.UpdateOrderStatus("no-such-order", store.OrderShipped)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Inquiries(t *testing.T) {
	s, _ := newTestStore(t)

	inq := s.AddInquiry("Jane Doe", "jane@example.com", "", "Looking for a custom engagement ring.")

	assert.Regexp(t, `^INQ-\d+$`, inq.ID)
	assert.Equal(t, store.InquiryNew, inq.Status)
	assert.NotEmpty(t, inq.Date)
	assert.Len(t, s.Inquiries(), 1)

	require.NoError(t, s.UpdateInquiryStatus(inq.ID, store.InquiryReplied))
	assert.Equal(t, store.InquiryReplied, s.Inquiries()[0].Status)

	err := s.UpdateInquiryStatus(inq.ID, store.InquiryStatus("archived"))
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	err = s.UpdateInquiryStatus("no-such-inquiry", store.InquiryRead)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Login(t *testing.T) {
	s, backend := newTestStore(t)

	assert.False(t, s.Login("wrong"))
	assert.False(t, s.IsAdmin())
	_, found, err := backend.Get(storage.KeyIsAdmin)
	require.NoError(t, err)
	assert.False(t, found)

	assert.True(t, s.Login("admin123"))
	assert.True(t, s.IsAdmin())
	raw, found, err := backend.Get(storage.KeyIsAdmin)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "true", string(raw))

	s.Logout()
	assert.False(t, s.IsAdmin())
	_, found, err = backend.Get(storage.KeyIsAdmin)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_LoginWithHashedCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	s, err := store.New(store.Config{AdminPasswordHash: string(hash)}, storage.NewMemory())
	require.NoError(t, err)

	assert.False(t, s.Login("admin123"))
	assert.True(t, s.Login("s3cret"))
}

func TestStore_RehydratesFromPersistedState(t *testing.T) {
	backend := storage.NewMemory()

	first, err := store.New(store.Config{AdminPassword: "admin123"}, backend)
	require.NoError(t, err)

	require.NoError(t, first.AddToCart("1"))
	first.AddProduct(store.Product{Name: "Rope Chain", Price: 999, Category: store.CategoryChain, Stock: 4})
	first.AddInquiry("Jane Doe", "jane@example.com", "555-0100", "Do you resize rings?")
	require.NoError(t, first.UpdateOrderStatus("ORD-003", store.OrderProcessing))
	require.True(t, first.Login("admin123"))

	// A second store over the same backend sees identical collections.
	second, err := store.New(store.Config{AdminPassword: "admin123"}, backend)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first.Products(), second.Products()))
	assert.Empty(t, cmp.Diff(first.Orders(), second.Orders()))
	assert.Empty(t, cmp.Diff(first.Cart(), second.Cart()))
	assert.Empty(t, cmp.Diff(first.Inquiries(), second.Inquiries()))
	assert.True(t, second.IsAdmin())
}
