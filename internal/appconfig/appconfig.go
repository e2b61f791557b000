// Package appconfig defines the client application configuration bundle
// produced by provisioning and consumed by the firelift client.
package appconfig

// Config is the web-app connection configuration for a provisioned project.
// It is the only artifact handed back to the caller; the server keeps no
// copy once the response is written.
type Config struct {
	APIKey            string `json:"apiKey" yaml:"apiKey"`
	AuthDomain        string `json:"authDomain" yaml:"authDomain"`
	ProjectID         string `json:"projectId" yaml:"projectId"`
	StorageBucket     string `json:"storageBucket" yaml:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId" yaml:"messagingSenderId"`
	AppID             string `json:"appId" yaml:"appId"`
	MeasurementID     string `json:"measurementId,omitempty" yaml:"measurementId,omitempty"`
}

// mandatory lists the fields that must be non-empty for a Config to be
// considered complete. MessagingSenderID and MeasurementID are optional.
var mandatory = []struct {
	name string
	get  func(Config) string
}{
	{"apiKey", func(c Config) string { return c.APIKey }},
	{"authDomain", func(c Config) string { return c.AuthDomain }},
	{"projectId", func(c Config) string { return c.ProjectID }},
	{"storageBucket", func(c Config) string { return c.StorageBucket }},
	{"appId", func(c Config) string { return c.AppID }},
}

// MissingFields returns the names of all mandatory fields that are empty,
// in declaration order.
func (c Config) MissingFields() []string {
	var missing []string
	for _, f := range mandatory {
		if f.get(c) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Valid reports whether every mandatory field is non-empty.
func (c Config) Valid() bool {
	return len(c.MissingFields()) == 0
}

// VerifyMinimal reports whether the config carries the two fields the
// verification endpoint checks: apiKey and projectId. It is a schema check
// only and never touches the network.
func (c Config) VerifyMinimal() bool {
	return c.APIKey != "" && c.ProjectID != ""
}
