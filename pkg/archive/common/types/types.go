package types

import (
	"time"

	sysinfoTypes "github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

type SearchType string

const (
	SearchSerial   SearchType = "serial"
	SearchList     SearchType = "list"
	SearchMetadata SearchType = "metadata"
)

type Metadata struct {
	SchemaVersion uint       `json:"schema_version,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	LastModified  time.Time  `json:"last_modified,omitempty"`
	Downloaded    *time.Time `json:"downloaded,omitempty"`
}

// Entry is one archived parse result. Serial is the appliance serial number;
// ID falls back to a random UUID when the dump carries no serial.
type Entry struct {
	ID            string              `json:"id,omitempty"`
	Serial        string              `json:"serial,omitempty"`
	ApplianceName string              `json:"appliance_name,omitempty"`
	ModelNumber   string              `json:"model_number,omitempty"`
	SGOSVersion   string              `json:"sgos_version,omitempty"`
	StoredAt      time.Time           `json:"stored_at,omitempty"`
	Report        sysinfoTypes.Report `json:"report"`
}
