package services

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"tripplanner/internal/models/response_models"
)

type MapServiceInterface interface {
	RenderMap(w io.Writer, plan *response_models.TripPlan) error
}

type MapService struct{}

func NewMapService() MapServiceInterface {
	return &MapService{}
}

// RenderMap writes a standalone HTML page with one scatter series per day.
func (m *MapService) RenderMap(w io.Writer, plan *response_models.TripPlan) error {
	title := "Trip plan"
	if plan.Destination != nil && plan.Destination.City.Name != "" {
		title = "Trip to " + plan.Destination.City.Name
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1000px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d days, %d stops per day", plan.TripDays, plan.Pace),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	for _, day := range plan.Itinerary {
		points := make([]opts.GeoData, 0, len(day.Stops))
		for _, stop := range day.Stops {
			points = append(points, opts.GeoData{
				Name:  fmt.Sprintf("%s (%s)", stop.Name, stop.TimeSlot),
				Value: []float64{stop.GeoCode.Longitude, stop.GeoCode.Latitude},
			})
		}
		geo.AddSeries(fmt.Sprintf("Day %d", day.Day), types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	return geo.Render(w)
}
