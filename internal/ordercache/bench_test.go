package ordercache

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func randomOrders(rng *rand.Rand, n, securities, users, companies int) []Order {
	orders := make([]Order, n)
	for i := range orders {
		side := Buy
		if rng.Intn(2) == 1 {
			side = Sell
		}
		orders[i] = NewOrder(
			fmt.Sprintf("ORDER%d", i),
			fmt.Sprintf("SEC%d", rng.Intn(securities)),
			side,
			uint64(rng.Intn(9901)+100),
			fmt.Sprintf("USER%d", rng.Intn(users)),
			fmt.Sprintf("COMP%d", rng.Intn(companies)),
		)
	}
	return orders
}

func BenchmarkAddOrder(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	orders := randomOrders(rng, b.N, 100, 100, 100)
	c := NewCache()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.AddOrder(orders[i])
	}
}

func BenchmarkCancelOrder(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	orders := randomOrders(rng, b.N, 100, 100, 100)
	c := NewCache()
	for _, o := range orders {
		c.AddOrder(o)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.CancelOrder(orders[i].OrderID)
	}
}

func BenchmarkGetMatchingSizeForSecurity(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	c := NewCache()
	for _, o := range randomOrders(rng, 10_000, 100, 100, 100) {
		c.AddOrder(o)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.GetMatchingSizeForSecurity(fmt.Sprintf("SEC%d", i%100))
	}
}

// TestBulkInsertAndMatchSweep exercises the load the cache is sized for: a
// million accepted inserts followed by a matching sweep over every security.
func TestBulkInsertAndMatchSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping million-order sweep in short mode")
	}

	const (
		numOrders     = 1_000_000
		numSecurities = 1_000
	)

	rng := rand.New(rand.NewSource(42))
	orders := randomOrders(rng, numOrders, numSecurities, 1_000, 1_000)
	c := NewCache()

	start := time.Now()
	for _, o := range orders {
		c.AddOrder(o)
	}
	insertElapsed := time.Since(start)

	assertEqual(t, numOrders, c.Len(), "accepted order count")

	start = time.Now()
	var total uint64
	for i := 0; i < numSecurities; i++ {
		total += c.GetMatchingSizeForSecurity(fmt.Sprintf("SEC%d", i))
	}
	sweepElapsed := time.Since(start)

	assertTrue(t, total > 0, "sweep across a full book should cross quantity")
	t.Logf("inserted %d orders in %v, swept %d securities in %v, total matched %d",
		numOrders, insertElapsed, numSecurities, sweepElapsed, total)
}
