package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewPlanRequestAcceptsNumbersAndStrings(t *testing.T) {
	var req PreviewPlanRequest
	err := json.Unmarshal([]byte(`{"pace": 3, "days": "5", "budget": "luxury", "pois": [{"name": "Louvre", "category": "MUSEUM", "entrance_fee": 15}]}`), &req)
	require.NoError(t, err)

	assert.Equal(t, LooseString("3"), req.Pace)
	assert.Equal(t, LooseString("5"), req.Days)
	assert.Equal(t, "luxury", req.Budget)
	require.Len(t, req.POIs, 1)
	assert.Equal(t, "MUSEUM", req.POIs[0].Category)
	assert.Nil(t, req.PrioritizeFamous)
}

func TestLooseStringRejectsObjects(t *testing.T) {
	var req PreviewPlanRequest
	err := json.Unmarshal([]byte(`{"pace": {"n": 3}}`), &req)
	assert.Error(t, err)
}

func TestLooseStringNull(t *testing.T) {
	var req PreviewPlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"pace": null}`), &req))
	assert.Equal(t, LooseString(""), req.Pace)
}

func TestPreviewPlanRequestAcceptsCamelCaseKeys(t *testing.T) {
	body := `{
		"prioritizeFamous": false,
		"alignBudget": true,
		"pois": [
			{"name": "Lookout", "category": "VIEWPOINT", "entranceFee": 5, "geoCode": {"latitude": 38.7, "longitude": -9.1}, "osmId": 42},
			{"name": "Castle", "category": "CASTLE", "entrance_fee": 20, "geo_code": {"latitude": 38.71, "longitude": -9.13}}
		]
	}`
	var req PreviewPlanRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.PrioritizeFamous)
	assert.False(t, *req.PrioritizeFamous)
	assert.True(t, req.AlignBudget)

	pois := ToPOIs(req.POIs)
	require.Len(t, pois, 2)
	assert.Equal(t, 5.0, pois[0].EntranceFee)
	assert.Equal(t, 38.7, pois[0].GeoCode.Latitude)
	assert.Equal(t, -9.1, pois[0].GeoCode.Longitude)
	assert.Equal(t, int64(42), pois[0].OSMID)
	assert.Equal(t, 20.0, pois[1].EntranceFee)
	assert.Equal(t, 38.71, pois[1].GeoCode.Latitude)
}

func TestPreviewPlanRequestSnakeCaseFlags(t *testing.T) {
	var req PreviewPlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"prioritize_famous": false, "align_budget": true}`), &req))

	require.NotNil(t, req.PrioritizeFamous)
	assert.False(t, *req.PrioritizeFamous)
	assert.True(t, req.AlignBudget)
}

func TestInputPOIRejectsBadFee(t *testing.T) {
	var p InputPOI
	assert.Error(t, json.Unmarshal([]byte(`{"entranceFee": "free"}`), &p))
}
