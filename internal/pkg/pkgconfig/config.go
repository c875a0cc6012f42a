package pkgconfig

import "time"

// Config exposes typed getters over a key/value configuration source.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetDuration(key string) time.Duration
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}
