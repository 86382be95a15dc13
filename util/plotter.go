package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"eatscout-server/models"
)

// PlotVenues generates an HTML file rendering a scored result set as a geo
// scatter chart. Debug aid for eyeballing a ranking.
func PlotVenues(response models.DiscoveryResponse, outputPath string) {
	points := make([]opts.GeoData, 0, len(response.Venues))
	for _, v := range response.Venues {
		if v.Lat == nil || v.Lng == nil {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  v.Name,
			Value: []float64{*v.Lng, *v.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Discovery Result Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Discovery result map generated: " + outputPath)
}
