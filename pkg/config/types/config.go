package types

// Config is the sginfo appliance inventory, read from a JSON file.
type Config struct {
	Appliances map[string]Appliance `json:"appliances"`
}

// Appliance is one proxy appliance to fetch sysinfo from.
type Appliance struct {
	Host     string `json:"host"`
	Port     int    `json:"port,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	Insecure bool   `json:"insecure,omitempty"`
}
