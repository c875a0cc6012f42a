// Package pkgconfig reads configuration values for the service.
//
// Business code depends on the Config interface; the Viper implementation
// loads a YAML file and lets environment variables prefixed with GOCONFIRM_
// override any key (dots become underscores).
package pkgconfig
