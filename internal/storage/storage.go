package storage

// Slot keys. Each key holds the serialized form of one whole collection;
// writes always replace the full value.
const (
	KeyProducts  = "products"
	KeyOrders    = "orders"
	KeyCart      = "cart"
	KeyInquiries = "inquiries"
	KeyIsAdmin   = "isAdmin"
)

// Backend is a durable key/value slot store. Get reports whether the key
// exists so callers can distinguish "never persisted" from an empty value.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
