package ordercache

import "sort"

// matchLeg is the scratch state for one order during a matching pass:
// quantity still unmatched plus the company that gates eligibility.
type matchLeg struct {
	remaining uint64
	company   string
}

// GetMatchingSizeForSecurity returns the total quantity that can cross
// between opposite sides of the security. Orders from the same company never
// match each other, regardless of user or side.
//
// The allocation is greedy, not globally optimal: both sides are sorted by
// descending quantity (stable, so equal quantities keep insertion order) and
// each buy drains sells in that order until it is exhausted. With company
// exclusions a different visit order can produce a different legal total, so
// the policy here is part of the contract.
//
// The pass works on scratch copies only; the cache is never mutated, and
// repeated calls on an unchanged cache return the same value.
func (c *Cache) GetMatchingSizeForSecurity(securityID string) uint64 {
	if securityID == "" {
		return 0
	}

	ids, exists := c.ordersBySecID[securityID]
	if !exists || len(ids) < 2 {
		return 0
	}

	var buys, sells []matchLeg
	for _, id := range ids {
		order := c.orders[id]
		switch order.Side {
		case Buy:
			buys = append(buys, matchLeg{remaining: order.Qty, company: order.Company})
		case Sell:
			sells = append(sells, matchLeg{remaining: order.Qty, company: order.Company})
		}
	}
	if len(buys) == 0 || len(sells) == 0 {
		return 0
	}

	sort.SliceStable(buys, func(i, j int) bool {
		return buys[i].remaining > buys[j].remaining
	})
	sort.SliceStable(sells, func(i, j int) bool {
		return sells[i].remaining > sells[j].remaining
	})

	var total uint64
	for b := range buys {
		if buys[b].remaining == 0 {
			continue
		}
		for s := range sells {
			if sells[s].remaining == 0 {
				continue
			}
			if sells[s].company == buys[b].company {
				continue
			}

			fill := min(buys[b].remaining, sells[s].remaining)
			buys[b].remaining -= fill
			sells[s].remaining -= fill
			total += fill

			if buys[b].remaining == 0 {
				break
			}
		}
	}

	return total
}
