package pkgconfig

// Config is a read-only view over the application configuration.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	IsSet(key string) bool
	Close() error
}
