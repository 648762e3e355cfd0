package config

import (
	"encoding/json"
	"fmt"
	"os"

	"fraudguard/internal/apperrors"
)

// City is a location the travel-time estimator can reason about.
type City struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ReferenceData is the immutable lookup configuration for the specialist
// evaluators. It is loaded once at process start and passed explicitly into
// each component; nothing mutates it at request time, so reads need no locks.
type ReferenceData struct {
	BlacklistedMerchants []string           `json:"blacklisted_merchants"`
	CategoryRiskScores   map[string]float64 `json:"category_risk_scores"`
	HighRiskLocations    []string           `json:"high_risk_locations"`
	CityCoordinates      map[string]City    `json:"city_coordinates"`
}

// DefaultReferenceData returns the built-in lookup tables.
func DefaultReferenceData() *ReferenceData {
	return &ReferenceData{
		BlacklistedMerchants: []string{
			"Suspicious Online Store",
			"Fake Electronics Ltd",
			"Scam Services Inc",
			"Fraudulent Marketplace",
		},
		CategoryRiskScores: map[string]float64{
			"grocery":         0.1,
			"restaurant":      0.2,
			"gas_station":     0.3,
			"online_retail":   0.4,
			"online_services": 0.5,
			"electronics":     0.6,
			"luxury_goods":    0.7,
			"cryptocurrency":  0.8,
			"cash_advance":    0.9,
		},
		HighRiskLocations: []string{
			"Unknown",
			"Tor Network",
			"VPN Location",
		},
		CityCoordinates: map[string]City{
			"New York, NY":      {Lat: 40.7128, Lon: -74.0060},
			"Boston, MA":        {Lat: 42.3601, Lon: -71.0589},
			"Chicago, IL":       {Lat: 41.8781, Lon: -87.6298},
			"Detroit, MI":       {Lat: 42.3314, Lon: -83.0458},
			"Miami, FL":         {Lat: 25.7617, Lon: -80.1918},
			"Phoenix, AZ":       {Lat: 33.4484, Lon: -112.0740},
			"Las Vegas, NV":     {Lat: 36.1699, Lon: -115.1398},
			"Los Angeles, CA":   {Lat: 34.0522, Lon: -118.2437},
			"San Francisco, CA": {Lat: 37.7749, Lon: -122.4194},
			"Oakland, CA":       {Lat: 37.8044, Lon: -122.2712},
			"Seattle, WA":       {Lat: 47.6062, Lon: -122.3321},
			"London, UK":        {Lat: 51.5074, Lon: -0.1278},
			"Tokyo, JP":         {Lat: 35.6762, Lon: 139.6503},
		},
	}
}

// LoadReferenceData returns the reference tables, overridden from the JSON
// file named by REFERENCE_DATA_FILE when set. Invalid or incomplete data is a
// startup failure, never a per-request error.
func LoadReferenceData() (*ReferenceData, error) {
	ref := DefaultReferenceData()

	if path := GetEnv("REFERENCE_DATA_FILE", ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Configuration(fmt.Sprintf("reading reference data file %q: %v", path, err))
		}
		ref = &ReferenceData{}
		if err := json.Unmarshal(raw, ref); err != nil {
			return nil, apperrors.Configuration(fmt.Sprintf("parsing reference data file %q: %v", path, err))
		}
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return ref, nil
}

// Validate checks that the required tables are usable.
func (r *ReferenceData) Validate() error {
	if len(r.CategoryRiskScores) == 0 {
		return apperrors.Configuration("category risk table is empty")
	}
	for category, score := range r.CategoryRiskScores {
		if score < 0 || score > 1 {
			return apperrors.Configuration(fmt.Sprintf("category %q risk score %.2f is outside [0,1]", category, score))
		}
	}
	for city, coord := range r.CityCoordinates {
		if coord.Lat < -90 || coord.Lat > 90 || coord.Lon < -180 || coord.Lon > 180 {
			return apperrors.Configuration(fmt.Sprintf("city %q has invalid coordinates", city))
		}
	}
	return nil
}

// BlacklistSet returns the blacklist as a membership set.
func (r *ReferenceData) BlacklistSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.BlacklistedMerchants))
	for _, m := range r.BlacklistedMerchants {
		set[m] = struct{}{}
	}
	return set
}

// HighRiskLocationSet returns the high-risk locations as a membership set.
func (r *ReferenceData) HighRiskLocationSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.HighRiskLocations))
	for _, l := range r.HighRiskLocations {
		set[l] = struct{}{}
	}
	return set
}
