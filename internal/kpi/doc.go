// Package kpi generates deterministic mock sustainability metrics.
//
// generate.go provides the pure Generate(siteID, period) function. Every
// field is sampled from a SHA-256 digest of "<siteID>:<period>", so the
// same inputs always produce the same Record — across calls, processes
// and platforms — without any stored state or randomness.
//
// compare.go provides Compare, which generates two records for the same
// site and derives deltas plus "up"/"down"/"flat" trend flags using
// fixed dead-zone thresholds (5 g waste, 0.05 kg CO2, 2 pp vegetarian).
//
// Both functions are referentially transparent and safe for unbounded
// concurrent use.
package kpi
