package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumiere-jewelry/storefront/internal/storage"
)

// Config carries the admin credential the store checks on Login. When
// PasswordHash is set it must be a bcrypt hash and takes precedence over
// the plain Password comparison.
type Config struct {
	AdminPassword     string
	AdminPasswordHash string
}

// Store is the single source of truth for the storefront: catalog, order
// book, inquiry list, the cart and the admin-session flag. It hydrates
// once from the storage backend (seeding defaults for slots never written)
// and re-persists a collection after every mutation. Safe for concurrent
// use.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	cfg     Config
	ids     idGenerator

	products  []Product
	orders    []Order
	cart      []CartItem
	inquiries []Inquiry
	isAdmin   bool
}

func New(cfg Config, backend storage.Backend) (*Store, error) {
	s := &Store{backend: backend, cfg: cfg}

	found, err := loadSlot(backend, storage.KeyProducts, &s.products)
	if err != nil {
		return nil, err
	}
	if !found {
		s.products = seedProducts()
	}

	found, err = loadSlot(backend, storage.KeyOrders, &s.orders)
	if err != nil {
		return nil, err
	}
	if !found {
		s.orders = seedOrders()
	}

	found, err = loadSlot(backend, storage.KeyCart, &s.cart)
	if err != nil {
		return nil, err
	}
	if !found {
		s.cart = []CartItem{}
	}

	found, err = loadSlot(backend, storage.KeyInquiries, &s.inquiries)
	if err != nil {
		return nil, err
	}
	if !found {
		s.inquiries = []Inquiry{}
	}

	raw, found, err := backend.Get(storage.KeyIsAdmin)
	if err != nil {
		return nil, fmt.Errorf("store: failed to hydrate admin flag: %w", err)
	}
	s.isAdmin = found && string(raw) == "true"

	log.Info().
		Int("products", len(s.products)).
		Int("orders", len(s.orders)).
		Int("cart_items", len(s.cart)).
		Int("inquiries", len(s.inquiries)).
		Msg("Store hydrated")

	return s, nil
}

func loadSlot(backend storage.Backend, key string, dest any) (bool, error) {
	raw, found, err := backend.Get(key)
	if err != nil {
		return false, fmt.Errorf("store: failed to hydrate slot %q: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("store: failed to decode slot %q: %w", key, err)
	}
	return true, nil
}

// persist writes one collection back to its slot. Durability is
// best-effort: a failed write is logged and the in-memory state stands.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("slot", key).Msg("Failed to serialize collection")
		return
	}
	if err := s.backend.Put(key, raw); err != nil {
		log.Error().Err(err).Str("slot", key).Msg("Failed to persist collection")
	}
}

// Products returns a copy of the catalog.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddProduct assigns a fresh id and appends the product to the catalog.
// Field values are stored verbatim.
func (s *Store) AddProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.ids.next("PROD")
	s.products = append(s.products, p)
	s.persist(storage.KeyProducts, s.products)

	log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("Product added")
	return p
}

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *Category
	ImageURL    *string
	Stock       *int
	Featured    *bool
}

// UpdateProduct merges patch into the matching product. Unknown ids are a
// silent no-op, reported through the returned flag.
func (s *Store) UpdateProduct(id string, patch ProductPatch) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		s.persist(storage.KeyProducts, s.products)
		return *p, true
	}
	return Product{}, false
}

// DeleteProduct removes the product from the catalog. Past orders keep
// their snapshots; cart lines referencing the product are re-validated at
// checkout.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(storage.KeyProducts, s.products)
			log.Info().Str("product_id", id).Msg("Product deleted")
			return true
		}
	}
	return false
}

// Cart returns a copy of the cart contents.
func (s *Store) Cart() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// AddToCart puts one unit of the product in the cart, incrementing the
// quantity when the product is already there. Stock is not checked here;
// the storefront refuses out-of-stock adds before calling.
func (s *Store) AddToCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product Product
	found := false
	for _, p := range s.products {
		if p.ID == productID {
			product = p
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("store: product %s: %w", productID, ErrNotFound)
	}

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity++
			s.persist(storage.KeyCart, s.cart)
			return nil
		}
	}

	s.cart = append(s.cart, CartItem{Product: product, Quantity: 1})
	s.persist(storage.KeyCart, s.cart)
	return nil
}

// RemoveFromCart drops the matching line. Absent ids are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID)
}

func (s *Store) removeFromCartLocked(productID string) {
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.persist(storage.KeyCart, s.cart)
			return
		}
	}
}

// UpdateCartQuantity sets the line's quantity verbatim. A quantity of zero
// or less removes the line, same as RemoveFromCart.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		return
	}

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			s.persist(storage.KeyCart, s.cart)
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []CartItem{}
	s.persist(storage.KeyCart, s.cart)
}

// CartSummary mirrors the storefront totals: flat shipping on a non-empty
// cart, order total excludes it.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

const flatShipping = 25

func (s *Store) Summary() CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum CartSummary
	for _, item := range s.cart {
		sum.Subtotal += item.Product.Price * float64(item.Quantity)
	}
	if sum.Subtotal > 0 {
		sum.Shipping = flatShipping
	}
	sum.Total = sum.Subtotal + sum.Shipping
	return sum
}

// Orders returns a copy of the order book.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		out[i] = o
	}
	return out
}

func (s *Store) Order(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			items := make([]OrderItem, len(o.Items))
			copy(items, o.Items)
			o.Items = items
			return o, true
		}
	}
	return Order{}, false
}

func (s *Store) UpdateOrderStatus(orderID string, status OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(status) {
			return fmt.Errorf("store: order %s cannot move from %s to %s: %w",
				orderID, s.orders[i].Status, status, ErrInvalidStatus)
		}
		s.orders[i].Status = status
		s.persist(storage.KeyOrders, s.orders)
		log.Info().Str("order_id", orderID).Stringer("status", status).Msg("Order status updated")
		return nil
	}
	return fmt.Errorf("store: order %s: %w", orderID, ErrNotFound)
}

// CustomerInfo is the checkout form.
type CustomerInfo struct {
	Name            string
	Email           string
	ShippingAddress string
}

// CreateOrder turns the cart into an order: cart lines whose product has
// left the catalog are dropped, the surviving lines are snapshotted into
// order items at the cart-line prices (the same prices Summary charges),
// stock is decremented per line (no floor, so oversold items go
// negative), the order is appended and the cart emptied. Refuses a cart
// with no valid lines.
func (s *Store) CreateOrder(customer CustomerInfo) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := make(map[string]int, len(s.products))
	for i, p := range s.products {
		live[p.ID] = i
	}

	var items []OrderItem
	var total float64
	for _, line := range s.cart {
		if _, ok := live[line.Product.ID]; !ok {
			log.Warn().Str("product_id", line.Product.ID).Msg("Dropping cart line for deleted product")
			continue
		}
		items = append(items, OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
		total += line.Product.Price * float64(line.Quantity)
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	order := Order{
		ID:              s.ids.next("ORD"),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		Items:           items,
		Total:           total,
		Status:          OrderPending,
		Date:            time.Now().Format("2006-01-02"),
		ShippingAddress: customer.ShippingAddress,
	}

	s.orders = append(s.orders, order)
	for _, item := range items {
		s.products[live[item.ProductID]].Stock -= item.Quantity
	}
	s.cart = []CartItem{}

	s.persist(storage.KeyOrders, s.orders)
	s.persist(storage.KeyProducts, s.products)
	s.persist(storage.KeyCart, s.cart)

	log.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("Order created")

	return order, nil
}

// Inquiries returns a copy of the inquiry list.
func (s *Store) Inquiries() []Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Inquiry, len(s.inquiries))
	copy(out, s.inquiries)
	return out
}

// AddInquiry records a contact submission with a fresh id, the current
// timestamp and status new.
func (s *Store) AddInquiry(name, email, phone, message string) Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	inq := Inquiry{
		ID:      s.ids.next("INQ"),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Date:    time.Now().UTC().Format(time.RFC3339),
		Status:  InquiryNew,
	}
	s.inquiries = append(s.inquiries, inq)
	s.persist(storage.KeyInquiries, s.inquiries)

	log.Info().Str("inquiry_id", inq.ID).Msg("Inquiry received")
	return inq
}

func (s *Store) UpdateInquiryStatus(inquiryID string, status InquiryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID != inquiryID {
			continue
		}
		if !s.inquiries[i].Status.CanTransitionTo(status) {
			return fmt.Errorf("store: inquiry %s cannot move from %s to %s: %w",
				inquiryID, s.inquiries[i].Status, status, ErrInvalidStatus)
		}
		s.inquiries[i].Status = status
		s.persist(storage.KeyInquiries, s.inquiries)
		return nil
	}
	return fmt.Errorf("store: inquiry %s: %w", inquiryID, ErrNotFound)
}

// Login checks the shared admin secret. On a match the admin flag is set
// and persisted; a mismatch leaves the session untouched.
func (s *Store) Login(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.AdminPasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) != nil {
			return false
		}
	} else if password != s.cfg.AdminPassword {
		return false
	}

	s.isAdmin = true
	if err := s.backend.Put(storage.KeyIsAdmin, []byte("true")); err != nil {
		log.Error().Err(err).Msg("Failed to persist admin flag")
	}
	log.Info().Msg("Admin logged in")
	return true
}

// Logout clears the admin flag and removes it from storage.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isAdmin = false
	if err := s.backend.Delete(storage.KeyIsAdmin); err != nil {
		log.Error().Err(err).Msg("Failed to clear admin flag")
	}
	log.Info().Msg("Admin logged out")
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}
