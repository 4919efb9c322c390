// Package sentinel implements the single check-and-notify pass: it builds
// the expected-mode schedule, observes every camera base station and
// notifies the operator by email when an observed mode deviates from the
// schedule. The pass is stateless and meant to be run periodically by an
// external scheduler such as cron.
package sentinel
