// Package model defines stable boundary types for API layers.
//
// These structs are the only types intended for direct JSON/YAML
// serialization by consumers. Scalar semantics live in package varbin; this
// package only projects catalog calls and their errors onto DTOs.
package model
