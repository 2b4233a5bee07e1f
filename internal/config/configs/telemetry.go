package configs

// Telemetry configures OpenTelemetry tracing. Tracing is off unless an
// endpoint is set.
type Telemetry struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"spendguard"`
}
