package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFamousLandmarkDefaults(t *testing.T) {
	l := NewLandmarkClassifier(nil)

	assert.True(t, l.IsFamousLandmark("MUSEUM"))
	assert.True(t, l.IsFamousLandmark("CASTLE"))
	assert.True(t, l.IsFamousLandmark("FORT"))
	assert.True(t, l.IsFamousLandmark("MONUMENT"))
	assert.True(t, l.IsFamousLandmark("ART_MUSEUM"))
	assert.True(t, l.IsFamousLandmark("FORTRESS"))

	assert.False(t, l.IsFamousLandmark("VIEWPOINT"))
	assert.False(t, l.IsFamousLandmark("SIGHTSEEING"))
	assert.False(t, l.IsFamousLandmark("museum"), "matching is case-sensitive on normalized categories")
	assert.False(t, l.IsFamousLandmark(""))
}

func TestLandmarkClassifierCustomMarkers(t *testing.T) {
	l := NewLandmarkClassifier([]string{" palace ", "", "TEMPLE"})

	assert.Equal(t, []string{"PALACE", "TEMPLE"}, l.Markers())
	assert.True(t, l.IsFamousLandmark("PALACE"))
	assert.False(t, l.IsFamousLandmark("MUSEUM"))
}

func TestLandmarkClassifierBlankMarkersFallBack(t *testing.T) {
	l := NewLandmarkClassifier([]string{" ", ""})
	assert.Equal(t, DefaultFamousMarkers, l.Markers())
}
