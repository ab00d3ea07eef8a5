package tgclient

// Logger интерфейс для логирования
// Клиент логирует ошибки валидации, исходящие запросы и ошибки транспорта;
// логирование не влияет на поток выполнения (fire-and-forget)
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// nopLogger заглушка, используется если логгер не передан
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
