// Package config defines the settings used by the camera-sentinel binary
// and provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the camera service endpoint and credentials, the
// raw expected-mode schedule and the SMTP notification settings. Secrets
// may be supplied via environment variables instead of the file.
package config
