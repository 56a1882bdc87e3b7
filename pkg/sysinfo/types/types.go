package types

import (
	"slices"
	"time"
)

// Report is the parsed form of a single SGOS sysinfo dump. Every field is
// best-effort: a field stays at its zero value when the source section is
// missing or its pattern did not match. A Report is never reused across
// parses; re-parsing produces a fresh one.
type Report struct {
	// FormatVersion is the "Version <major>.<minor>" marker from the
	// leading _ReportInfo chunk of the dump.
	FormatVersion string `json:"format_version,omitempty"`

	// Sections holds the raw body of every named section, keyed by section
	// name. A malformed dump with duplicate section names keeps only the
	// last occurrence.
	Sections map[string]string `json:"sections,omitempty"`

	ApplianceName          string     `json:"appliance_name,omitempty"`
	ModelNumber            string     `json:"model_number,omitempty"`
	SupportedConfiguration bool       `json:"supported_configuration,omitempty"`
	SerialNumber           string     `json:"serial_number,omitempty"`
	SGOSVersion            string     `json:"sgos_version,omitempty"`
	SGOSMajorVersion       string     `json:"sgos_major_version,omitempty"`
	SGOSReleaseID          string     `json:"sgos_release_id,omitempty"`
	SysinfoTime            *time.Time `json:"sysinfo_time,omitempty"`
	SysinfoEpoch           int64      `json:"sysinfo_epoch,omitempty"`
	Timezone               string     `json:"timezone,omitempty"`
	// TimezoneOffset is seconds east of UTC at the sysinfo time.
	TimezoneOffset         int    `json:"timezone_offset,omitempty"`
	HardwareRebootDuration *int64 `json:"hardware_reboot_duration,omitempty"`
	SoftwareRebootDuration *int64 `json:"software_reboot_duration,omitempty"`
	DefaultGateway         string `json:"default_gateway,omitempty"`
	SSLAccelerator         string `json:"ssl_accelerator,omitempty"`

	Interfaces        map[string]Interface   `json:"interfaces,omitempty"`
	CACertificates    map[string]Certificate `json:"ca_certificates,omitempty"`
	LicenseComponents []LicenseComponent     `json:"license_components,omitempty"`

	WCCPEnabled       *bool              `json:"wccp_enabled,omitempty"`
	WCCPVersion       int                `json:"wccp_version,omitempty"`
	WCCPServiceGroups []WCCPServiceGroup `json:"wccp_service_groups,omitempty"`

	StaticBypassList    string         `json:"static_bypass_list,omitempty"`
	StaticRouteTable    string         `json:"static_route_table,omitempty"`
	VPMCPL              string         `json:"vpm_cpl,omitempty"`
	VPMXML              string         `json:"vpm_xml,omitempty"`
	PACFile             string         `json:"pac_file,omitempty"`
	WCCPRawConfig       string         `json:"wccp_raw_config,omitempty"`
	ContentFilterStatus string         `json:"content_filter_status,omitempty"`
	ContentFilter       *ContentFilter `json:"content_filter,omitempty"`
}

// SectionNames returns all section names in sorted order.
func (r *Report) SectionNames() []string {
	ns := make([]string, 0, len(r.Sections))
	for n := range r.Sections {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Section looks up one raw section body by exact name.
func (r *Report) Section(name string) (string, bool) {
	body, ok := r.Sections[name]
	return body, ok
}

// Interface holds per-network-interface facts merged from the hardware
// summary block and the software configuration block. A field found in one
// source is not overwritten by its absence in the other.
type Interface struct {
	ID           string `json:"id,omitempty"`
	MACAddress   string `json:"mac_address,omitempty"`
	LinkStatus   string `json:"link_status,omitempty"`
	Capabilities string `json:"capabilities,omitempty"`
	IPAddress    string `json:"ip_address,omitempty"`
	Netmask      string `json:"netmask,omitempty"`
}

// Certificate is one CA certificate from the software configuration, with
// attributes derived from the embedded PEM via crypto/x509.
type Certificate struct {
	Name string `json:"name,omitempty"`
	PEM  string `json:"pem,omitempty"`

	SelfSigned         bool       `json:"self_signed,omitempty"`
	SHA1Fingerprint    string     `json:"sha1_fingerprint,omitempty"`
	SHA256Fingerprint  string     `json:"sha256_fingerprint,omitempty"`
	PublicKey          string     `json:"public_key,omitempty"`
	PublicKeyAlgorithm string     `json:"public_key_algorithm,omitempty"`
	PublicKeyBits      int        `json:"public_key_bits,omitempty"`
	Subject            string     `json:"subject,omitempty"`
	Issuer             string     `json:"issuer,omitempty"`
	SerialNumber       string     `json:"serial_number,omitempty"`
	NotBefore          *time.Time `json:"not_before,omitempty"`
	NotAfter           *time.Time `json:"not_after,omitempty"`
	SignatureAlgorithm string     `json:"signature_algorithm,omitempty"`
}

// LicenseComponent is the normalized "Label: value" set of one licensing
// block. Keys are lowercased with whitespace collapsed to underscores; the
// label set varies by component and firmware, so it stays an open map.
type LicenseComponent map[string]string

// WCCPServiceGroup is one "service-group <n> ... end" block from the inline
// WCCP settings.
type WCCPServiceGroup struct {
	ID                int      `json:"id"`
	ForwardingType    string   `json:"forwarding_type,omitempty"`
	MulticastTTL      int      `json:"multicast_ttl,omitempty"`
	Priority          int      `json:"priority,omitempty"`
	Protocol          int      `json:"protocol,omitempty"`
	RouterAffinity    string   `json:"router_affinity,omitempty"`
	Interface         string   `json:"interface,omitempty"`
	ServiceFlags      []string `json:"service_flags,omitempty"`
	Ports             []int    `json:"ports,omitempty"`
	PrimaryHashWeight string   `json:"primary_hash_weight,omitempty"`
	HomeRouters       []string `json:"home_routers,omitempty"`
	AssignmentType    string   `json:"assignment_type,omitempty"`
	MaskScheme        string   `json:"mask_scheme,omitempty"`
	MaskValue         string   `json:"mask_value,omitempty"`
}

// ContentFilter is the labeled part of the Content Filter Status section.
type ContentFilter struct {
	Provider          string                 `json:"provider,omitempty"`
	Status            string                 `json:"status,omitempty"`
	DownloadURL       string                 `json:"download_url,omitempty"`
	DownloadUsername  string                 `json:"download_username,omitempty"`
	AutomaticDownload string                 `json:"automatic_download,omitempty"`
	LookupMode        string                 `json:"lookup_mode,omitempty"`
	DatabaseVersion   string                 `json:"database_version,omitempty"`
	DatabaseDate      string                 `json:"database_date,omitempty"`
	DatabaseExpires   string                 `json:"database_expires,omitempty"`
	DatabaseSize      string                 `json:"database_size,omitempty"`
	Dynamic           *DynamicCategorization `json:"dynamic_categorization,omitempty"`
}

// DynamicCategorization is the nested sub-block of the content filter status.
type DynamicCategorization struct {
	Service string `json:"service,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Secure  string `json:"secure,omitempty"`
	Gateway string `json:"gateway,omitempty"`
	Errors  string `json:"errors,omitempty"`
}
