package debug

import "time"

// LogLevel represents the severity of a log entry.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Component identifies which subsystem emitted a log entry.
type Component int

const (
	ComponentAnalyzer Component = iota
	ComponentFramebuffer
	ComponentPipeline
	ComponentPreset
	ComponentScript
	ComponentDriver
	ComponentStudio
)

func (c Component) String() string {
	switch c {
	case ComponentAnalyzer:
		return "Analyzer"
	case ComponentFramebuffer:
		return "Framebuffer"
	case ComponentPipeline:
		return "Pipeline"
	case ComponentPreset:
		return "Preset"
	case ComponentScript:
		return "Script"
	case ComponentDriver:
		return "Driver"
	case ComponentStudio:
		return "Studio"
	default:
		return "Unknown"
	}
}

// LogEntry is one ring-buffer slot.
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Message   string
}
