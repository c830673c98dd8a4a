// Package sites holds the static site directory.
//
// Site is the reference entity (site_id, name, region, segment).
// Directory is a thread-safe keyed table with stable List ordering;
// the only write operation is Replace, used when the config file is
// reloaded. Defaults() returns the five built-in demo sites.
package sites
