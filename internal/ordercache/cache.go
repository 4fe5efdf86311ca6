package ordercache

import "go.uber.org/zap"

// =============================================================================
// CACHE
// =============================================================================

// Cache indexes one set of orders three ways: by order id (the owning store),
// by user and by security. The secondary indexes hold ids only, never records,
// and every mutation goes through install/remove so the three views cannot
// drift apart.
//
// The cache is not safe for concurrent use. Callers that share an instance
// across goroutines must serialize access themselves.
type Cache struct {
	orders        map[string]Order
	ordersByUser  map[string]map[string]struct{}
	ordersBySecID map[string][]string

	log *zap.Logger
}

func NewCache() *Cache {
	return NewCacheWithLogger(zap.NewNop())
}

// NewCacheWithLogger attaches a diagnostic logger. Dropped orders are reported
// at debug level; the logger never changes cache behavior.
func NewCacheWithLogger(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		orders:        make(map[string]Order),
		ordersByUser:  make(map[string]map[string]struct{}),
		ordersBySecID: make(map[string][]string),
		log:           log,
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// validate checks a candidate order, cheapest rejection first. The duplicate
// check runs right after the id check so a replayed order is dropped before
// any field inspection.
func (c *Cache) validate(o Order) error {
	if o.OrderID == "" {
		return ErrEmptyOrderID
	}
	if _, exists := c.orders[o.OrderID]; exists {
		return ErrDuplicateOrderID
	}
	if o.SecurityID == "" {
		return ErrEmptySecurityID
	}
	if o.User == "" {
		return ErrEmptyUser
	}
	if o.Company == "" {
		return ErrEmptyCompany
	}
	if o.Qty == 0 {
		return ErrZeroQty
	}
	if !o.Side.IsValid() {
		return ErrInvalidSide
	}
	return nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// AddOrder validates the order and installs it across all indexes. Invalid
// and duplicate orders are dropped silently: a malformed tick from an
// upstream feed must not halt ingestion. First writer wins on id collisions.
func (c *Cache) AddOrder(o Order) {
	if err := c.validate(o); err != nil {
		c.log.Debug("order dropped",
			zap.String("order_id", o.OrderID),
			zap.Error(err))
		return
	}
	c.install(o)
}

// CancelOrder removes the order with this id. Unknown ids are a no-op.
func (c *Cache) CancelOrder(orderID string) {
	order, exists := c.orders[orderID]
	if !exists {
		return
	}
	c.remove(order)
}

// CancelOrdersForUser removes every order owned by the user. The id set is
// snapshotted first because remove prunes the very set being walked.
func (c *Cache) CancelOrdersForUser(user string) {
	ids, exists := c.ordersByUser[user]
	if !exists {
		return
	}

	snapshot := make([]string, 0, len(ids))
	for id := range ids {
		snapshot = append(snapshot, id)
	}

	for _, id := range snapshot {
		c.CancelOrder(id)
	}
}

// CancelOrdersForSecIDWithMinimumQty removes every order for the security
// with qty >= minQty. Candidates are collected before cancelling so the
// security group is not mutated while being scanned. An empty securityID or
// a zero minQty is a no-op.
func (c *Cache) CancelOrdersForSecIDWithMinimumQty(securityID string, minQty uint64) {
	if securityID == "" || minQty == 0 {
		return
	}

	ids, exists := c.ordersBySecID[securityID]
	if !exists {
		return
	}

	var toCancel []string
	for _, id := range ids {
		if order, ok := c.orders[id]; ok && order.Qty >= minQty {
			toCancel = append(toCancel, id)
		}
	}

	for _, id := range toCancel {
		c.CancelOrder(id)
	}
}

// =============================================================================
// QUERIES
// =============================================================================

// GetAllOrders returns a copy of every cached order. Ordering is unspecified.
func (c *Cache) GetAllOrders() []Order {
	all := make([]Order, 0, len(c.orders))
	for _, order := range c.orders {
		all = append(all, order)
	}
	return all
}

// Len returns the number of cached orders.
func (c *Cache) Len() int {
	return len(c.orders)
}

// GetOrder returns the order with this id, if present.
func (c *Cache) GetOrder(orderID string) (Order, bool) {
	order, exists := c.orders[orderID]
	return order, exists
}

// =============================================================================
// INDEX MAINTENANCE
// =============================================================================

// install writes the order into all three indexes. Only called with a
// validated, non-duplicate order.
func (c *Cache) install(o Order) {
	c.orders[o.OrderID] = o

	users := c.ordersByUser[o.User]
	if users == nil {
		users = make(map[string]struct{})
		c.ordersByUser[o.User] = users
	}
	users[o.OrderID] = struct{}{}

	c.ordersBySecID[o.SecurityID] = append(c.ordersBySecID[o.SecurityID], o.OrderID)
}

// remove deletes the order from all three indexes, pruning user and security
// groups that become empty so stale keys do not accumulate under churn.
func (c *Cache) remove(o Order) {
	delete(c.orders, o.OrderID)

	if users, exists := c.ordersByUser[o.User]; exists {
		delete(users, o.OrderID)
		if len(users) == 0 {
			delete(c.ordersByUser, o.User)
		}
	}

	if ids, exists := c.ordersBySecID[o.SecurityID]; exists {
		for i := 0; i < len(ids); i++ {
			if ids[i] == o.OrderID {
				ids = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		if len(ids) == 0 {
			delete(c.ordersBySecID, o.SecurityID)
		} else {
			c.ordersBySecID[o.SecurityID] = ids
		}
	}
}
