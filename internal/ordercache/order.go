package ordercache

import "fmt"

// =============================================================================
// TYPES
// =============================================================================

type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

func (s Side) String() string {
	return string(s)
}

// IsValid reports whether the side is one of the two accepted tokens.
// Matching is case-sensitive: "buy" is not a valid side.
func (s Side) IsValid() bool {
	return s == Buy || s == Sell
}

// =============================================================================
// ORDER
// =============================================================================

// Order is a plain value record. The cache stores and returns copies, so a
// record is never mutated after it has been accepted.
type Order struct {
	OrderID    string
	SecurityID string
	Side       Side
	Qty        uint64
	User       string
	Company    string
}

func NewOrder(orderID, securityID string, side Side, qty uint64, user, company string) Order {
	return Order{
		OrderID:    orderID,
		SecurityID: securityID,
		Side:       side,
		Qty:        qty,
		User:       user,
		Company:    company,
	}
}

func (o Order) String() string {
	return fmt.Sprintf("[ID:%s Sec:%s %s qty:%d user:%s company:%s]",
		o.OrderID, o.SecurityID, o.Side, o.Qty, o.User, o.Company)
}
