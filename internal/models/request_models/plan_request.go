package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tripplanner/internal/models/response_models"
)

// PlanQuery is bound from the query string of the plan and map endpoints.
// Every field stays a string so malformed values fall back to defaults instead of failing the bind.
type PlanQuery struct {
	City             string `form:"city"`
	Pace             string `form:"pace"`
	Budget           string `form:"budget"`
	Days             string `form:"days"`
	PrioritizeFamous string `form:"prioritizeFamous"`
	AlignBudget      string `form:"alignBudget"`
}

// PreviewPlanRequest plans over a caller-supplied POI list.
// The flags are read from either prioritizeFamous/alignBudget or their snake_case forms.
type PreviewPlanRequest struct {
	POIs             []InputPOI  `json:"pois"`
	Pace             LooseString `json:"pace"`
	Budget           string      `json:"budget"`
	Days             LooseString `json:"days"`
	PrioritizeFamous *bool       `json:"prioritize_famous"`
	AlignBudget      bool        `json:"align_budget"`
}

func (r *PreviewPlanRequest) UnmarshalJSON(b []byte) error {
	type plain PreviewPlanRequest
	var aux struct {
		plain
		PrioritizeFamousCamel *bool `json:"prioritizeFamous"`
		AlignBudgetCamel      *bool `json:"alignBudget"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*r = PreviewPlanRequest(aux.plain)
	if aux.PrioritizeFamousCamel != nil {
		r.PrioritizeFamous = aux.PrioritizeFamousCamel
	}
	if aux.AlignBudgetCamel != nil {
		r.AlignBudget = *aux.AlignBudgetCamel
	}
	return nil
}

// InputPOI is a POI read from callers, who may use entranceFee/geoCode/osmId
// as well as the snake_case keys POI is written with.
type InputPOI response_models.POI

func (p *InputPOI) UnmarshalJSON(b []byte) error {
	type plain response_models.POI
	var aux struct {
		plain
		EntranceFeeCamel *float64                     `json:"entranceFee"`
		GeoCodeCamel     *response_models.Coordinates `json:"geoCode"`
		OSMIDCamel       *int64                       `json:"osmId"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*p = InputPOI(aux.plain)
	if aux.EntranceFeeCamel != nil {
		p.EntranceFee = *aux.EntranceFeeCamel
	}
	if aux.GeoCodeCamel != nil {
		p.GeoCode = *aux.GeoCodeCamel
	}
	if aux.OSMIDCamel != nil {
		p.OSMID = *aux.OSMIDCamel
	}
	return nil
}

func ToPOIs(in []InputPOI) []response_models.POI {
	out := make([]response_models.POI, len(in))
	for i, p := range in {
		out[i] = response_models.POI(p)
	}
	return out
}

// LooseString accepts a JSON string or number, e.g. "pace": 3 or "pace": "3".
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = LooseString(n.String())
	return nil
}
