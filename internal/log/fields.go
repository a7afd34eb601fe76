package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldDate      = "date"
	FieldMonth     = "month"
	FieldHours     = "hours"
	FieldRate      = "rate"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentTracker = "tracker"
	ComponentStore   = "store"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAdd      = "add"
	OpList     = "list"
	OpLoad     = "load"
	OpSave     = "save"
	OpSync     = "sync"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
