package cancel_scheduled

// Scheduler интерфейс планировщика отложенных сообщений
type Scheduler interface {
	Cancel(id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
