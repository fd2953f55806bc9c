// Package study implements the file classifier: it scans a study directory,
// recognizes each meta file by its fixed filename vocabulary (with the meta
// header's alteration-type discriminators as a fallback), and produces typed
// descriptors for the planner. It is strictly read-only and re-entrant.
package study
