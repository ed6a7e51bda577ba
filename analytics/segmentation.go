package analytics

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

// SegmentCount is the fixed number of customer segments.
const SegmentCount = 4

// SegmentNames are the human-readable segment labels, ordered from the
// weakest to the strongest cluster. Names are attached by ranking cluster
// centroids on their mean RFM score, not by raw cluster index: K-Means label
// order is not semantically stable, the centroid ranking is.
var SegmentNames = [SegmentCount]string{
	"At Risk Customers",
	"New Customers",
	"Loyal Customers",
	"VIP Customers",
}

// SegmentationProcessor scores customers with RFM quintiles and clusters them
// into the fixed customer segments.
type SegmentationProcessor struct {
	dataService *DataService
	logger      *utils.ETLLogger
	seed        int64
}

// NewSegmentationProcessor creates a SegmentationProcessor. The seed fixes
// the K-Means initialization so repeated runs assign identical segments.
func NewSegmentationProcessor(dataService *DataService, seed int64, logger *utils.ETLLogger) *SegmentationProcessor {
	return &SegmentationProcessor{
		dataService: dataService,
		logger:      logger,
		seed:        seed,
	}
}

// Process loads the customer aggregate, computes RFM scores and segments the
// customers. Returns the scored customers with their segment assignments.
func (p *SegmentationProcessor) Process(now time.Time) ([]RFMCustomer, []SegmentSummary, error) {
	startTime := time.Now()
	p.logger.Info("Starting customer segmentation")

	customers, err := p.dataService.GetCustomerMetrics()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load customer metrics: %w", err)
	}
	if len(customers) < SegmentCount {
		return nil, nil, fmt.Errorf("need at least %d customers with orders to segment, got %d", SegmentCount, len(customers))
	}
	p.logger.Info("Loaded %d customers with at least one order", len(customers))

	rfm := BuildRFM(customers, now)
	p.logRFMRanges(rfm)

	rfm, summaries, err := Segment(rfm, p.seed)
	if err != nil {
		return nil, nil, err
	}

	for _, s := range summaries {
		p.logger.Info("Segment %q: %d customers, avg recency %.1f days, avg frequency %.1f, avg monetary %.2f",
			s.SegmentName, s.Customers, s.AvgRecency, s.AvgFrequency, s.AvgMonetary)
	}

	p.logger.Info("Customer segmentation finished. Duration: %v", time.Since(startTime))
	return rfm, summaries, nil
}

// Segment clusters the scored customers on their three RFM score components
// and attaches segment names by centroid ranking.
func Segment(rfm []RFMCustomer, seed int64) ([]RFMCustomer, []SegmentSummary, error) {
	points := make([][]float64, len(rfm))
	for i, c := range rfm {
		points[i] = []float64{
			float64(c.RecencyScore),
			float64(c.FrequencyScore),
			float64(c.MonetaryScore),
		}
	}

	rng := rand.New(rand.NewSource(seed))
	result, err := KMeans(points, SegmentCount, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to cluster customers: %w", err)
	}

	names := nameByCentroidRank(result.Centroids)

	for i := range rfm {
		rfm[i].SegmentID = result.Labels[i]
		rfm[i].SegmentName = names[result.Labels[i]]
	}

	return rfm, summarize(rfm, names), nil
}

// nameByCentroidRank maps each cluster index to a segment name by sorting the
// centroids on their summed RFM score, ascending: the weakest cluster becomes
// "At Risk Customers", the strongest "VIP Customers".
func nameByCentroidRank(centroids [][]float64) []string {
	type ranked struct {
		cluster int
		score   float64
	}

	rankings := make([]ranked, len(centroids))
	for c, centroid := range centroids {
		sum := 0.0
		for _, v := range centroid {
			sum += v
		}
		rankings[c] = ranked{cluster: c, score: sum}
	}

	sort.SliceStable(rankings, func(a, b int) bool {
		return rankings[a].score < rankings[b].score
	})

	names := make([]string, len(centroids))
	for rank, r := range rankings {
		names[r.cluster] = SegmentNames[rank]
	}
	return names
}

// summarize aggregates per-segment averages for reporting.
func summarize(rfm []RFMCustomer, names []string) []SegmentSummary {
	summaries := make([]SegmentSummary, len(names))
	for c := range summaries {
		summaries[c] = SegmentSummary{SegmentID: c, SegmentName: names[c]}
	}

	for _, customer := range rfm {
		s := &summaries[customer.SegmentID]
		s.Customers++
		s.AvgRecency += float64(customer.RecencyDays)
		s.AvgFrequency += float64(customer.Frequency)
		s.AvgMonetary += customer.Monetary
		s.AvgRFMScore += float64(customer.RFMScore)
	}

	for c := range summaries {
		if summaries[c].Customers == 0 {
			continue
		}
		n := float64(summaries[c].Customers)
		summaries[c].AvgRecency /= n
		summaries[c].AvgFrequency /= n
		summaries[c].AvgMonetary /= n
		summaries[c].AvgRFMScore /= n
	}

	return summaries
}

// logRFMRanges logs the spread of the raw RFM values.
func (p *SegmentationProcessor) logRFMRanges(rfm []RFMCustomer) {
	if len(rfm) == 0 {
		return
	}

	minR, maxR := rfm[0].RecencyDays, rfm[0].RecencyDays
	minF, maxF := rfm[0].Frequency, rfm[0].Frequency
	minM, maxM := rfm[0].Monetary, rfm[0].Monetary
	for _, c := range rfm[1:] {
		if c.RecencyDays < minR {
			minR = c.RecencyDays
		}
		if c.RecencyDays > maxR {
			maxR = c.RecencyDays
		}
		if c.Frequency < minF {
			minF = c.Frequency
		}
		if c.Frequency > maxF {
			maxF = c.Frequency
		}
		if c.Monetary < minM {
			minM = c.Monetary
		}
		if c.Monetary > maxM {
			maxM = c.Monetary
		}
	}

	p.logger.Info("Recency range: %d - %d days", minR, maxR)
	p.logger.Info("Frequency range: %d - %d orders", minF, maxF)
	p.logger.Info("Monetary range: %.2f - %.2f", minM, maxM)
}
