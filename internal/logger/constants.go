package logger

// Context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyJob       = "job"
)

// Log level string values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format string values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "gildedrose"
	DefaultVersion     = "dev"
)

// Environments that enable source locations in log lines
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyJob         = "job"
)
