package ports

// LoggerPort is the diagnostic log sink. It never writes to the report output.
type LoggerPort interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string, err error)
	Close()
}
