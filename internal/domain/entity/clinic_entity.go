package entity

// Clinic is a service location from the core backend. Every field but ID
// is optional upstream.
type Clinic struct {
	ID            int64    `json:"id"`
	ClinicName    string   `json:"clinic_name"`
	Services      string   `json:"services"`
	Location      string   `json:"location"`
	Phone         string   `json:"phone"`
	Website       string   `json:"website"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	GoogleLink    string   `json:"google_link"`
	SourceCountry string   `json:"source_country"`
	PhoneCombined string   `json:"phone_combined"`
	EmailCombined string   `json:"email_combined"`
}

// ClinicInput is the create/update payload. Empty fields are left out so an
// update only touches what was sent.
type ClinicInput struct {
	ClinicName    string   `json:"clinic_name,omitempty"`
	Services      string   `json:"services,omitempty"`
	Location      string   `json:"location,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Website       string   `json:"website,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleLink    string   `json:"google_link,omitempty"`
	SourceCountry string   `json:"source_country,omitempty"`
	PhoneCombined string   `json:"phone_combined,omitempty"`
	EmailCombined string   `json:"email_combined,omitempty"`
}

// ClinicFilter maps onto the backend's skip/limit/country query. Country
// matches source_country.
type ClinicFilter struct {
	Skip    int
	Limit   int
	Country string
}
