// Package extract holds the per-concept field extractors. Each extractor
// reads one or more named sections of a report and fills in typed fields.
// Extractors are independent and idempotent: a missing section or an
// unmatched pattern leaves the target fields unset, nothing ever fails the
// parse.
package extract

import (
	"github.com/swg-tools/sginfo/pkg/sysinfo/types"
)

// Section names consumed by the extractors.
const (
	versionInformation    = "Version Information"
	hardwareInformation   = "Hardware Information"
	softwareConfiguration = "Software Configuration"
	routingTable          = "TCP/IP Routing Table"
	policy                = "Policy"
	licensingStatistics   = "Licensing Statistics"
	contentFilterStatus   = "Content Filter Status"
)

// Run applies every extractor in order. VersionInfo runs before
// SoftwareConfig because the timezone offset needs the sysinfo epoch.
func Run(r *types.Report) {
	for _, f := range []func(*types.Report){
		VersionInfo,
		HardwareInfo,
		SoftwareConfig,
		Policy,
		StaticRouteTable,
		CACertificates,
		Licensing,
		ContentFilter,
		PACFile,
		WCCP,
	} {
		f(r)
	}
}
