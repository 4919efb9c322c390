// Package camera implements the HTTP client for the camera service used
// as the mode observation source. The client logs in once per run and
// lists base stations with their current operating mode; the protocol
// beyond that is out of scope for the monitor.
package camera
