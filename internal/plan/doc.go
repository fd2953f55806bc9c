// Package plan holds the step catalog and the dependency sequencer. The
// catalog is a fixed dispatch table from file kind to an importer-invocation
// template; the sequencer turns a classified inventory into one total order
// using explicit integer ranks per category. Both are pure, so plan building
// can be repeated (by tests or by a dry run) without side effects.
package plan
