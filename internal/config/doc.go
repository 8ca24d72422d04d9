// Package config loads the vpilot device tree.
//
// The configuration is a YAML document whose top level maps group names to
// mappings of device key to display label:
//
//	Kuchnia:
//	  lamp1: "Lampka kuchenna"
//	  lamp2: "Lampa nad stołem"
//	Wentylatory: {}
//
// Groups whose value is empty or null are accepted and kept, but have no
// devices and are not offered for navigation. Device keys must be unique
// across the whole document because device state is keyed by device key
// alone; a repeated key is rejected with a *DuplicateKeyError.
//
// An empty document is rejected with ErrEmptyConfig. Read and YAML syntax
// errors are returned wrapped.
package config
