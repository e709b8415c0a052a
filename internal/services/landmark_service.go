package services

import "strings"

var DefaultFamousMarkers = []string{"MUSEUM", "CASTLE", "FORT", "MONUMENT"}

type LandmarkClassifier interface {
	IsFamousLandmark(category string) bool
	Markers() []string
}

type landmarkClassifier struct {
	markers []string
}

// NewLandmarkClassifier upper-cases the markers and drops blanks.
// An empty set falls back to DefaultFamousMarkers.
func NewLandmarkClassifier(markers []string) LandmarkClassifier {
	cleaned := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m != "" {
			cleaned = append(cleaned, m)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, DefaultFamousMarkers...)
	}
	return &landmarkClassifier{markers: cleaned}
}

// IsFamousLandmark is a case-sensitive substring test; categories arrive upper-cased.
func (l *landmarkClassifier) IsFamousLandmark(category string) bool {
	for _, m := range l.markers {
		if strings.Contains(category, m) {
			return true
		}
	}
	return false
}

func (l *landmarkClassifier) Markers() []string {
	out := make([]string, len(l.markers))
	copy(out, l.markers)
	return out
}
