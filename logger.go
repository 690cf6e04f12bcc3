package pricegen

// Logger is an interface of a logger behaviour used by pricegen,
// with it the user will be able to configure logging level and message format
// at free will. The idea is to have a generic interface already implemented
// by some logging packages (logrus.Logger and logrus.Entry), without importing them directly.
type Logger interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
}
