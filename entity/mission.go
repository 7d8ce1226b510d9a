package entity

// MissionMetadata carries the structured observation parameters recorded with
// a mission. The backend stores every field as a string; the last four are
// optional and omitted when empty.
type MissionMetadata struct {
	Telescope         string `json:"telescope"`
	Target            string `json:"target"`
	ExposureTime      string `json:"exposure_time"`
	WeatherConditions string `json:"weather_conditions"`
	Observer          string `json:"observer"`
	Priority          string `json:"priority"`
	Altitude          string `json:"altitude,omitempty"`
	Overlap           string `json:"overlap,omitempty"`
	Sidelap           string `json:"sidelap,omitempty"`
	GroundResolution  string `json:"ground_resolution,omitempty"`
}

// Mission is an observation session under (organization, project). The wire
// field "mission" is the display label, distinct from Key.
type Mission struct {
	ID       string          `json:"id"`
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Label    string          `json:"mission"`
	Location string          `json:"location"`
	Date     string          `json:"date"`
	Metadata MissionMetadata `json:"metadata"`
}
