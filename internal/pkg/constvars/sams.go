package constvars

// SAMS endpoints. The base URL is configurable; the CGI paths are fixed by
// the remote service.
const (
	SamsDefaultBaseUrl = "https://www.genecascade.org/sams-cgi"

	SamsLoginPath      = "/login.cgi"
	SamsExportAllPath  = "/ExportPhenopacket.cgi"
	SamsExportByIDPath = "/export_phenopacket.cgi"

	SamsQueryExportAll  = "export_all"
	SamsQueryExternalID = "external_id"

	SamsFormFieldEmail    = "email"
	SamsFormFieldPassword = "password"

	// Session cookie set by a successful login; its presence in the local
	// cookie jar is the login-state sentinel.
	SamsSessionCookieName = "SAMSI"
)

const (
	ResourcePhenopacket = "Phenopacket"
)

// Sentinel onset selectors accepted by the phenopacket onset filter. Any
// other value is taken as a literal timestamp.
const (
	OnsetSelectorEarliest = "earliest"
	OnsetSelectorLatest   = "latest"
)
