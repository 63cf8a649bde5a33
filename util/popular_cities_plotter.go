package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cafe-server/models"
)

// PlotPopularCities renders a bar chart of cafés per city into an HTML file.
func PlotPopularCities(cities []models.PopularCity, outputPath string) error {
	names := make([]string, 0, len(cities))
	counts := make([]opts.BarData, 0, len(cities))
	for _, city := range cities {
		names = append(names, city.CityName)
		counts = append(counts, opts.BarData{Value: city.CafesCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Popular Cities",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Cafes per city",
		}),
	)
	bar.SetXAxis(names)
	bar.AddSeries("Cafes", counts,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
