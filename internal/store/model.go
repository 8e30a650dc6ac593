package store

type Category string

const (
	CategoryChain    Category = "chain"
	CategoryRing     Category = "ring"
	CategoryBracelet Category = "bracelet"
	CategoryOther    Category = "other"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	switch c {
	case CategoryChain, CategoryRing, CategoryBracelet, CategoryOther:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// CanTransitionTo reports whether the move to next is allowed. Every move
// between valid statuses is currently permitted; restricting the graph
// (e.g. refusing delivered -> pending) only requires changing this method.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.Valid()
}

type InquiryStatus string

const (
	InquiryNew     InquiryStatus = "new"
	InquiryRead    InquiryStatus = "read"
	InquiryReplied InquiryStatus = "replied"
)

func (s InquiryStatus) String() string {
	return string(s)
}

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryRead, InquiryReplied:
		return true
	}
	return false
}

func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	return next.Valid()
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured,omitempty"`
}

// CartItem pairs a product with a quantity. The embedded product is the
// catalog entry as of the last cart mutation, not a live reference.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem is a snapshot of a cart line at checkout. Later catalog edits
// or deletions never touch it.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	Date            string      `json:"date"`
	ShippingAddress string      `json:"shippingAddress"`
}

type Inquiry struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Message string        `json:"message"`
	Date    string        `json:"date"`
	Status  InquiryStatus `json:"status"`
}
