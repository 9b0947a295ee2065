package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldUnit       = "unit"
	FieldAmountCent = "amount_cents"
	FieldRowRef     = "row_ref"
	FieldProofName  = "proof_name"
	FieldBackend    = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentSheets  = "sheets"
	ComponentDrive   = "drive"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpAppend   = "append"
	OpUpload   = "upload"
	OpExport   = "export"
	OpValidate = "validate"
	OpSync     = "sync"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
