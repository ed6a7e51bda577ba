package analytics

import (
	"sort"
	"time"
)

// BuildRFM derives the recency/frequency/monetary values of every customer
// from the lifetime aggregate and scores each component into quintiles.
// Recency is measured in whole days relative to now; its score is reversed
// so the most recent customers score 5.
func BuildRFM(customers []CustomerMetrics, now time.Time) []RFMCustomer {
	rfm := make([]RFMCustomer, len(customers))
	recency := make([]float64, len(customers))
	frequency := make([]float64, len(customers))
	monetary := make([]float64, len(customers))

	for i, c := range customers {
		days := int(now.Sub(c.LastOrder).Hours() / 24)
		rfm[i] = RFMCustomer{
			CustomerID:  c.CustomerID,
			RecencyDays: days,
			Frequency:   c.TotalOrders,
			Monetary:    c.TotalRevenue,
		}
		recency[i] = float64(days)
		frequency[i] = float64(c.TotalOrders)
		monetary[i] = c.TotalRevenue
	}

	recencyBuckets := quintileByValue(recency)
	frequencyBuckets := quintileByRank(frequency)
	monetaryBuckets := quintileByValue(monetary)

	for i := range rfm {
		rfm[i].RecencyScore = 6 - recencyBuckets[i] // low days = high score
		rfm[i].FrequencyScore = frequencyBuckets[i]
		rfm[i].MonetaryScore = monetaryBuckets[i]
		rfm[i].RFMScore = rfm[i].RecencyScore + rfm[i].FrequencyScore + rfm[i].MonetaryScore
	}

	return rfm
}

// quintileByValue assigns each value a bucket 1-5 so the population splits
// into approximately equal quintiles. Equal values always land in the same
// bucket, the one of their first sorted position.
func quintileByValue(values []float64) []int {
	n := len(values)
	buckets := make([]int, n)
	if n == 0 {
		return buckets
	}

	order := sortedOrder(values)

	// Bucket of the first sorted position of each distinct value.
	valueBucket := make(map[float64]int, n)
	for pos, idx := range order {
		v := values[idx]
		if _, seen := valueBucket[v]; !seen {
			valueBucket[v] = pos*5/n + 1
		}
	}

	for i, v := range values {
		buckets[i] = valueBucket[v]
	}
	return buckets
}

// quintileByRank assigns buckets from first-occurrence ranks: ties are broken
// by input order, so heavily tied distributions (order counts) still split
// into equal quintiles.
func quintileByRank(values []float64) []int {
	n := len(values)
	buckets := make([]int, n)
	if n == 0 {
		return buckets
	}

	for pos, idx := range sortedOrder(values) {
		buckets[idx] = pos*5/n + 1
	}
	return buckets
}

// sortedOrder returns the indices of values in ascending order, stable over
// the input order for ties.
func sortedOrder(values []float64) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})
	return order
}
