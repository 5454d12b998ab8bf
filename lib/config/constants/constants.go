package constants

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

var SupportedExporterKinds = []ExporterKind{Datadog}
