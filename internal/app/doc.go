// Package app wires the pipeline together: options from the cli package,
// resolved settings, an isolated logger, and the classify → sequence →
// execute run loop.
package app
