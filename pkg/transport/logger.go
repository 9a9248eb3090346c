package transport

// Logger receives per-call diagnostics. Each entry carries one structured
// field named key holding obj.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// NopLogger drops every entry. It is used when no Logger is configured.
type NopLogger struct{}

func (NopLogger) InfoObj(string, string, interface{})  {}
func (NopLogger) DebugObj(string, string, interface{}) {}
func (NopLogger) WarnObj(string, string, interface{})  {}
func (NopLogger) ErrorObj(string, string, interface{}) {}

func loggerOrNop(log Logger) Logger {
	if log == nil {
		return NopLogger{}
	}
	return log
}
