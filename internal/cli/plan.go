package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripplanner/internal/infra"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/providers"
	"tripplanner/internal/services"
	"tripplanner/pkg/memcache"
)

const (
	keyCity        = "city"
	keyPace        = "pace"
	keyBudget      = "budget"
	keyDays        = "days"
	keyNoFamous    = "no-famous"
	keyAlignBudget = "align-budget"
	keyPOIsFile    = "pois"
	keyMapFile     = "map"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a trip plan as JSON",
		Long: `plan discovers points of interest for --city and schedules them into days.
With --pois the plan is built offline from a JSON array of points of interest.`,
		Example: `  planctl plan --city Paris --pace 4 --budget mid
  planctl plan --pois pois.json --pace 3 --map trip.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd)
		},
	}

	cmd.Flags().String(keyCity, "", "destination city")
	cmd.Flags().String(keyPace, strconv.Itoa(services.DefaultSpotsPerDay), "stops per day")
	cmd.Flags().String(keyBudget, services.DefaultTier, "budget tier: budget, mid or luxury")
	cmd.Flags().Int(keyDays, services.DefaultMaxDays, "maximum number of days")
	cmd.Flags().Bool(keyNoFamous, false, "keep the discovered order instead of moving famous landmarks first")
	cmd.Flags().Bool(keyAlignBudget, false, "spread entrance fees over the planned days")
	cmd.Flags().String(keyPOIsFile, "", "plan offline from this JSON file")
	cmd.Flags().String(keyMapFile, "", "also write an HTML map of the plan to this file")
	_ = a.v.BindPFlags(cmd.Flags())

	return cmd
}

func (a *app) runPlan(cmd *cobra.Command) error {
	prioritize := !a.v.GetBool(keyNoFamous)
	align := a.v.GetBool(keyAlignBudget)
	query := request_models.PlanQuery{
		City:             a.v.GetString(keyCity),
		Pace:             a.v.GetString(keyPace),
		Budget:           a.v.GetString(keyBudget),
		Days:             strconv.Itoa(a.v.GetInt(keyDays)),
		PrioritizeFamous: strconv.FormatBool(prioritize),
		AlignBudget:      strconv.FormatBool(align),
	}

	cfg := a.serviceConfig()
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	itinerary := services.NewItineraryService(services.NewLandmarkClassifier(cfg.FamousMarkers))
	budget := services.NewBudgetService()

	var plan *response_models.TripPlan
	if path := a.v.GetString(keyPOIsFile); path != "" {
		pois, err := readPOIs(path)
		if err != nil {
			return err
		}
		opts := services.NewPreviewOptions(request_models.PreviewPlanRequest{
			Pace:             request_models.LooseString(query.Pace),
			Budget:           query.Budget,
			Days:             request_models.LooseString(query.Days),
			PrioritizeFamous: &prioritize,
			AlignBudget:      align,
		})
		plan = services.NewPlannerService(nil, itinerary, budget, log).PlanFromPOIs(opts, pois)
	} else {
		opts, err := services.NewPlanOptions(query)
		if err != nil {
			return fmt.Errorf("--city or --pois is required: %w", err)
		}

		client := &http.Client{Timeout: cfg.HTTPTimeout}
		destinations := services.NewDestinationService(services.DestinationDeps{
			Geocoder: providers.NewAmadeusClient(cfg.Amadeus, client, memcache.NewTTLStore[string](), log),
			Finder:   providers.NewOverpassClient(cfg.Overpass, client, log),
			Weather:  providers.NewOpenWeatherClient(cfg.OpenWeather, client, log),
			Images:   providers.NewUnsplashClient(cfg.Unsplash, client, log),
			Logger:   log,
		})

		plan, err = services.NewPlannerService(destinations, itinerary, budget, log).Plan(cmd.Context(), opts)
		if err != nil {
			return err
		}
	}

	if path := a.v.GetString(keyMapFile); path != "" {
		if err := writeMap(path, plan); err != nil {
			return err
		}
		log.Info("map written", zap.String("path", path))
	}

	return writeJSON(cmd.OutOrStdout(), plan)
}

func readPOIs(path string) ([]response_models.POI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pois: %w", err)
	}
	var pois []request_models.InputPOI
	if err := json.Unmarshal(raw, &pois); err != nil {
		return nil, fmt.Errorf("decode pois %s: %w", path, err)
	}
	return request_models.ToPOIs(pois), nil
}

func writeMap(path string, plan *response_models.TripPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map file: %w", err)
	}
	if err := services.NewMapService().RenderMap(f, plan); err != nil {
		_ = f.Close()
		return fmt.Errorf("render map: %w", err)
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
