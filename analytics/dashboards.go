package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ngna3007/TheGioiDiDong-AnalyticsPlatform/etl/utils"
)

const histogramBins = 20

// Dashboards renders the four-panel analysis charts to PNG files.
type Dashboards struct {
	outputDir string
	logger    *utils.ETLLogger
}

// NewDashboards creates a Dashboards writer over the analysis output
// directory.
func NewDashboards(outputDir string, logger *utils.ETLLogger) *Dashboards {
	return &Dashboards{
		outputDir: outputDir,
		logger:    logger,
	}
}

// CustomerAnalysis renders customer_analysis.png: order and revenue
// distributions plus region and tier breakdowns.
func (d *Dashboards) CustomerAnalysis(customers []CustomerMetrics) error {
	if len(customers) == 0 {
		d.logger.Warn("No customer metrics, skipping customer dashboard")
		return nil
	}

	orders := make([]float64, len(customers))
	revenue := make([]float64, len(customers))
	lifetime := make([]float64, len(customers))
	regionCounts := make(map[string]int)
	tierCounts := make(map[string]int)
	for i, c := range customers {
		orders[i] = float64(c.TotalOrders)
		revenue[i] = c.TotalRevenue
		lifetime[i] = float64(c.LifetimeDays)
		regionCounts[c.Region]++
		tierCounts[c.Tier]++
	}

	d.logger.Info("Customer analysis: %d customers, avg orders %.2f, avg revenue %.2f, avg lifetime %.0f days",
		len(customers), stat.Mean(orders, nil), stat.Mean(revenue, nil), stat.Mean(lifetime, nil))

	ordersHist, err := histogramPlot("Orders per Customer", "Orders", orders)
	if err != nil {
		return err
	}
	revenueHist, err := histogramPlot("Customer Revenue", "Total Revenue", revenue)
	if err != nil {
		return err
	}
	regionBars, err := breakdownPlot("Customers by Region", regionCounts)
	if err != nil {
		return err
	}
	tierBars, err := breakdownPlot("Customers by Tier", tierCounts)
	if err != nil {
		return err
	}

	return d.write("customer_analysis.png", [][]*plot.Plot{
		{ordersHist, revenueHist},
		{regionBars, tierBars},
	})
}

// ProductAnalysis renders product_analysis.png: top categories by count and
// revenue, price distribution, orders-vs-revenue scatter.
func (d *Dashboards) ProductAnalysis(products []ProductMetrics) error {
	if len(products) == 0 {
		d.logger.Warn("No product metrics, skipping product dashboard")
		return nil
	}

	prices := make([]float64, len(products))
	scatter := make(plotter.XYs, len(products))
	categoryCounts := make(map[string]int)
	categoryRevenue := make(map[string]float64)
	for i, p := range products {
		prices[i] = p.AvgPrice
		scatter[i] = plotter.XY{X: float64(p.TotalOrders), Y: p.TotalRevenue}
		categoryCounts[p.CategoryL1]++
		categoryRevenue[p.CategoryL1] += p.TotalRevenue
	}

	d.logger.Info("Product analysis: %d products, avg price %.2f", len(products), stat.Mean(prices, nil))

	topCategories, err := breakdownPlot("Products by Category", topN(categoryCounts, 10))
	if err != nil {
		return err
	}
	revenueByCat, err := breakdownFloatPlot("Revenue by Category", topNFloat(categoryRevenue, 10))
	if err != nil {
		return err
	}
	priceHist, err := histogramPlot("Product Prices", "Average Price", prices)
	if err != nil {
		return err
	}
	ordersRevenue, err := scatterPlot("Orders vs Revenue per Product", "Total Orders", "Total Revenue", scatter)
	if err != nil {
		return err
	}

	return d.write("product_analysis.png", [][]*plot.Plot{
		{topCategories, revenueByCat},
		{priceHist, ordersRevenue},
	})
}

// OrderPatterns renders order_patterns.png: monthly volume, hour-of-day
// profile, order value distribution and items per order.
func (d *Dashboards) OrderPatterns(items []OrderItemRecord) error {
	if len(items) == 0 {
		d.logger.Warn("No delivered order items, skipping order pattern dashboard")
		return nil
	}

	monthlyOrders := make(map[string]map[string]bool)
	hourlyOrders := make(map[int]map[string]bool)
	orderValues := make(map[string]float64)
	orderItems := make(map[string]int)
	for _, item := range items {
		month := item.PurchaseTimestamp.Format("2006-01")
		if monthlyOrders[month] == nil {
			monthlyOrders[month] = make(map[string]bool)
		}
		monthlyOrders[month][item.OrderID] = true

		hour := item.PurchaseTimestamp.Hour()
		if hourlyOrders[hour] == nil {
			hourlyOrders[hour] = make(map[string]bool)
		}
		hourlyOrders[hour][item.OrderID] = true

		orderValues[item.OrderID] += item.Price
		orderItems[item.OrderID]++
	}

	months := make([]string, 0, len(monthlyOrders))
	for month := range monthlyOrders {
		months = append(months, month)
	}
	sort.Strings(months)
	monthly := make(plotter.XYs, len(months))
	for i, month := range months {
		monthly[i] = plotter.XY{X: float64(i), Y: float64(len(monthlyOrders[month]))}
	}

	hourly := make(plotter.Values, 24)
	for hour, orders := range hourlyOrders {
		hourly[hour] = float64(len(orders))
	}

	values := make([]float64, 0, len(orderValues))
	for _, v := range orderValues {
		values = append(values, v)
	}
	itemCounts := make([]float64, 0, len(orderItems))
	for _, n := range orderItems {
		itemCounts = append(itemCounts, float64(n))
	}

	d.logger.Info("Order patterns: %d orders over %d months, avg order value %.2f",
		len(orderValues), len(months), stat.Mean(values, nil))

	monthlyLine, err := linePlot("Monthly Order Volume", "Month", "Orders", monthly, months)
	if err != nil {
		return err
	}
	hourlyBars, err := valueBarPlot("Orders by Hour of Day", "Hour", hourly, hourLabels())
	if err != nil {
		return err
	}
	valueHist, err := histogramPlot("Order Value", "Order Value", values)
	if err != nil {
		return err
	}
	itemsHist, err := histogramPlot("Items per Order", "Items", itemCounts)
	if err != nil {
		return err
	}

	return d.write("order_patterns.png", [][]*plot.Plot{
		{monthlyLine, hourlyBars},
		{valueHist, itemsHist},
	})
}

// SegmentationResults renders customer_segmentation.png: recency/frequency
// and frequency/monetary scatters colored by nothing (one series), segment
// sizes and average RFM score per segment.
func (d *Dashboards) SegmentationResults(rfm []RFMCustomer, summaries []SegmentSummary) error {
	if len(rfm) == 0 {
		d.logger.Warn("No segmented customers, skipping segmentation dashboard")
		return nil
	}

	recFreq := make(plotter.XYs, len(rfm))
	freqMon := make(plotter.XYs, len(rfm))
	for i, c := range rfm {
		recFreq[i] = plotter.XY{X: float64(c.RecencyDays), Y: float64(c.Frequency)}
		freqMon[i] = plotter.XY{X: float64(c.Frequency), Y: c.Monetary}
	}

	segmentCounts := make(map[string]int)
	segmentScores := make(map[string]float64)
	for _, s := range summaries {
		segmentCounts[s.SegmentName] = s.Customers
		segmentScores[s.SegmentName] = s.AvgRFMScore
	}

	rfScatter, err := scatterPlot("Recency vs Frequency", "Recency (days)", "Frequency (orders)", recFreq)
	if err != nil {
		return err
	}
	fmScatter, err := scatterPlot("Frequency vs Monetary", "Frequency (orders)", "Monetary", freqMon)
	if err != nil {
		return err
	}
	sizeBars, err := breakdownPlot("Customers per Segment", segmentCounts)
	if err != nil {
		return err
	}
	scoreBars, err := breakdownFloatPlot("Average RFM Score per Segment", segmentScores)
	if err != nil {
		return err
	}

	return d.write("customer_segmentation.png", [][]*plot.Plot{
		{rfScatter, fmScatter},
		{sizeBars, scoreBars},
	})
}

// write tiles the 2x2 plots onto one PNG canvas.
func (d *Dashboards) write(filename string, plots [][]*plot.Plot) error {
	if err := os.MkdirAll(d.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create analysis output directory: %w", err)
	}

	img := vgimg.New(vg.Points(1000), vg.Points(800))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	path := filepath.Join(d.outputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	d.logger.Info("Dashboard written to %s", path)
	return nil
}

// histogramPlot builds a single histogram panel.
func histogramPlot(title, xLabel string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return nil, fmt.Errorf("failed to build histogram %q: %w", title, err)
	}
	p.Add(h)
	return p, nil
}

// breakdownPlot builds a bar panel from label counts, sorted descending.
func breakdownPlot(title string, counts map[string]int) (*plot.Plot, error) {
	asFloat := make(map[string]float64, len(counts))
	for label, n := range counts {
		asFloat[label] = float64(n)
	}
	return breakdownFloatPlot(title, asFloat)
}

// breakdownFloatPlot builds a bar panel from label values, sorted descending.
func breakdownFloatPlot(title string, byLabel map[string]float64) (*plot.Plot, error) {
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(a, b int) bool {
		if byLabel[labels[a]] != byLabel[labels[b]] {
			return byLabel[labels[a]] > byLabel[labels[b]]
		}
		return labels[a] < labels[b]
	})

	values := make(plotter.Values, len(labels))
	for i, label := range labels {
		values[i] = byLabel[label]
	}

	return valueBarPlot(title, "", values, labels)
}

// valueBarPlot builds a bar panel with nominal X labels.
func valueBarPlot(title, xLabel string, values plotter.Values, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart %q: %w", title, err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// scatterPlot builds a scatter panel.
func scatterPlot(title, xLabel, yLabel string, xys plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter %q: %w", title, err)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	return p, nil
}

// linePlot builds a line panel with nominal X labels.
func linePlot(title, xLabel, yLabel string, xys plotter.XYs, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build line chart %q: %w", title, err)
	}
	p.Add(line)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// topN keeps the n largest entries of the counts map.
func topN(counts map[string]int, n int) map[string]int {
	asFloat := make(map[string]float64, len(counts))
	for label, v := range counts {
		asFloat[label] = float64(v)
	}
	kept := topNFloat(asFloat, n)

	result := make(map[string]int, len(kept))
	for label, v := range kept {
		result[label] = int(v)
	}
	return result
}

// topNFloat keeps the n largest entries of the values map.
func topNFloat(values map[string]float64, n int) map[string]float64 {
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(a, b int) bool {
		if values[labels[a]] != values[labels[b]] {
			return values[labels[a]] > values[labels[b]]
		}
		return labels[a] < labels[b]
	})
	if len(labels) > n {
		labels = labels[:n]
	}

	result := make(map[string]float64, len(labels))
	for _, label := range labels {
		result[label] = values[label]
	}
	return result
}

// hourLabels returns "0".."23".
func hourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = fmt.Sprintf("%d", h)
	}
	return labels
}
