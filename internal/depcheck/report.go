package depcheck

import "log"

// Logger is the minimal logging collaborator the status reporter needs.
type Logger interface {
	Successf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// stdLogger writes leveled lines through the standard library logger.
type stdLogger struct{}

func (stdLogger) Successf(format string, args ...interface{}) { log.Printf("[OK] "+format, args...) }
func (stdLogger) Warnf(format string, args ...interface{})    { log.Printf("[WARN] "+format, args...) }
func (stdLogger) Infof(format string, args ...interface{})    { log.Printf("[INFO] "+format, args...) }

// LogStatus runs the check once and logs the outcome. Intended to be
// called from application startup; the returned flag tells the caller
// whether to enable PDF export.
func LogStatus() bool {
	return LogStatusTo(stdLogger{})
}

// LogStatusTo is LogStatus with an injected logging collaborator.
func LogStatusTo(l Logger) bool {
	available, message := Check()
	if available {
		l.Successf("%s", message)
		return true
	}
	l.Warnf("%s", message)
	l.Infof("PDF export needs the Pango runtime; all other features keep working without it")
	l.Infof("Install steps: README.md, PDF export prerequisites")
	return false
}
