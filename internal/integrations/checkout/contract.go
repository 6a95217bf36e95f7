package checkout

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder записывает метрики исходящих вызовов (опционально)
type MetricsRecorder interface {
	RecordOutbound(target string, outcome string, seconds float64)
}
