//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/hsaleemsupra/lattice-ibe/ibe"
	"github.com/hsaleemsupra/lattice-ibe/ntru"
	"github.com/hsaleemsupra/lattice-ibe/prof"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Median: quantileSorted(cp, 0.5),
		Max:    cp[n-1],
	}
}

func quantileSorted(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

// freedmanDiaconisBins picks a histogram bin count from the IQR.
func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	iqr := quantileSorted(cp, 0.75) - quantileSorted(cp, 0.25)
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	if bw <= 0 {
		if n < 200 {
			return n
		}
		return 200
	}
	k := int(math.Ceil((cp[n-1] - cp[0]) / bw))
	if k < 50 {
		k = 50
	}
	if k > 2000 {
		k = 2000
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64) *charts.Bar {
	st := computeStats(values)
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		xLabels[i] = fmt.Sprintf("%.2f", 0.5*(edges[i]+edges[i+1]))
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f", st.Count, st.Mean, st.Std, st.Median)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// newProfileChart plots the Gram-Schmidt norm against the row index.
// The trapdoor quality shows up directly: both N-row blocks should stay
// within the keygen acceptance bound.
func newProfileChart(norms []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Gram-Schmidt norm profile"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	xLabels := make([]string, len(norms))
	items := make([]opts.LineData, len(norms))
	for i, v := range norms {
		xLabels[i] = fmt.Sprintf("%d", i)
		items[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(xLabels).AddSeries("‖b*_i‖", items)
	return line
}

func appendInt64(vals []float64, xs []int64) []float64 {
	for _, v := range xs {
		vals = append(vals, float64(v))
	}
	return vals
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func main() {
	n := flag.Int("n", 256, "ring degree (power of two)")
	runs := flag.Int("runs", 4, "number of master keygen runs")
	extracts := flag.Int("extracts", 8, "identity key extractions per run")
	outDir := flag.String("out", "Measure_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	par, err := ntru.NewParams(*n, ntru.StandardQ)
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	prng, err := utils.NewPRNG()
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	var allF, allG, allFbig, allGbig, allH, allS2 []float64
	var lastProfile []float64
	for i := 0; i < *runs; i++ {
		log.Printf("[analysis] run %d/%d", i+1, *runs)
		start := time.Now()
		mpk, msk, err := ibe.Keygen(par, prng)
		if err != nil {
			log.Fatalf("keygen: %v", err)
		}
		prof.Track(start, "keygen")

		allF = appendInt64(allF, msk.Basis.F)
		allG = appendInt64(allG, msk.Basis.G)
		allFbig = appendInt64(allFbig, msk.Basis.BigF)
		allGbig = appendInt64(allGbig, msk.Basis.BigG)
		allH = appendInt64(allH, mpk.H)
		lastProfile = msk.GSNorms()

		for j := 0; j < *extracts; j++ {
			id, err := ibe.HashIdentity([]byte(fmt.Sprintf("analysis-%d-%d", i, j)), par)
			if err != nil {
				log.Fatalf("hash identity: %v", err)
			}
			start = time.Now()
			key, err := msk.Extract(id, prng)
			if err != nil {
				log.Fatalf("extract: %v", err)
			}
			prof.Track(start, "extract")
			allS2 = appendInt64(allS2, key.S2)
		}
	}

	outStats := map[string]summaryStats{
		"f":  computeStats(allF),
		"g":  computeStats(allG),
		"F":  computeStats(allFbig),
		"G":  computeStats(allGbig),
		"h":  computeStats(allH),
		"s2": computeStats(allS2),
	}
	timings := map[string][]float64{}
	for _, e := range prof.SnapshotAndReset() {
		timings[e.Label] = append(timings[e.Label], e.Dur.Seconds())
	}
	for label, vals := range timings {
		outStats["time_"+label+"_s"] = computeStats(vals)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("ibe_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newProfileChart(lastProfile))
	add := func(name string, vals []float64) {
		if len(vals) == 0 {
			return
		}
		page.AddCharts(newHistogramChart(name, vals))
	}
	add("f (master secret)", allF)
	add("g (master secret)", allG)
	add("F (completion)", allFbig)
	add("G (completion)", allGbig)
	add("h (master public)", allH)
	add("s2 (identity keys)", allS2)

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("ibe_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
