// Package config resolves the handful of knobs a flowbatch solve
// needs — batch volume, pivot limits, RNG seed, log level — following
// the functional-options pattern the rest of the module uses for
// algorithm options, applied here to a long-lived Config value instead
// of a single call's Options.
package config
