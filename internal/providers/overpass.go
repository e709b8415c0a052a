package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

const (
	DefaultPOIName     = "Historical Monument"
	DefaultPOICategory = "SIGHTSEEING"
	overpassResultCap  = 60
)

// POIFinder discovers attractions around a point. A nil error with an empty
// slice means the area has no attractions; a failed lookup is an error.
type POIFinder interface {
	FindPOIs(ctx context.Context, center response_models.Coordinates) ([]response_models.POI, error)
}

type OverpassClient struct {
	endpoint string
	radius   int
	t        *transport
}

func NewOverpassClient(cfg config.OverpassConfig, httpClient *http.Client, log *zap.Logger) *OverpassClient {
	radius := cfg.RadiusMeters
	if radius <= 0 {
		radius = 10000
	}
	return &OverpassClient{
		endpoint: cfg.URL,
		radius:   radius,
		t:        newTransport("overpass", httpClient, log),
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

func BuildOverpassQuery(lat, lon float64, radius int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radius,
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64))
	return "[out:json][timeout:25];(" +
		`nwr["tourism"~"museum|monument|viewpoint|attraction|theme_park"]` + around + ";" +
		`nwr["historic"~"castle|ruins|monument|fort"]` + around + ";" +
		fmt.Sprintf(");out center %d;", overpassResultCap)
}

func (o *OverpassClient) FindPOIs(ctx context.Context, center response_models.Coordinates) ([]response_models.POI, error) {
	q := url.Values{}
	q.Set("data", BuildOverpassQuery(center.Latitude, center.Longitude, o.radius))
	endpoint := o.endpoint + "?" + q.Encode()

	resp, err := o.t.doWithRetry(ctx, "interpreter", func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("overpass query: %v: %w", err, utils.ErrPOIDataUnavailable)
	}
	defer resp.Body.Close()

	// overloaded instances answer 200 with an HTML error page
	if !isJSON(resp) {
		return nil, fmt.Errorf("overpass returned %q: %w", resp.Header.Get("Content-Type"), utils.ErrPOIDataUnavailable)
	}

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode overpass: %v: %w", err, utils.ErrPOIDataUnavailable)
	}

	pois := make([]response_models.POI, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		pois = append(pois, el.toPOI(center))
	}
	return pois, nil
}

func (el overpassElement) toPOI(fallback response_models.Coordinates) response_models.POI {
	lat, lon := el.Lat, el.Lon
	if lat == 0 {
		lat = fallback.Latitude
		if el.Center != nil && el.Center.Lat != 0 {
			lat = el.Center.Lat
		}
	}
	if lon == 0 {
		lon = fallback.Longitude
		if el.Center != nil && el.Center.Lon != 0 {
			lon = el.Center.Lon
		}
	}

	name := el.Tags["name"]
	if name == "" {
		name = DefaultPOIName
	}

	category := CategoryFromTags(el.Tags)
	return response_models.POI{
		OSMID:       el.ID,
		Name:        name,
		Category:    category,
		EntranceFee: EstimateEntranceFee(category),
		GeoCode:     response_models.Coordinates{Latitude: lat, Longitude: lon},
		Tags:        classifyingTags(el.Tags),
	}
}

// CategoryFromTags prefers the tourism tag, then historic.
func CategoryFromTags(tags map[string]string) string {
	if v := tags["tourism"]; v != "" {
		return strings.ToUpper(v)
	}
	if v := tags["historic"]; v != "" {
		return strings.ToUpper(v)
	}
	return DefaultPOICategory
}

func EstimateEntranceFee(category string) float64 {
	switch {
	case strings.Contains(category, "MUSEUM"):
		return 15
	case strings.Contains(category, "CASTLE"), strings.Contains(category, "FORT"):
		return 20
	case strings.Contains(category, "VIEWPOINT"):
		return 5
	default:
		return 10
	}
}

func classifyingTags(tags map[string]string) []string {
	var out []string
	for _, k := range []string{"tourism", "historic"} {
		if v := tags[k]; v != "" {
			out = append(out, k+"="+v)
		}
	}
	sort.Strings(out)
	return out
}
