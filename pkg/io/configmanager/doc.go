// Package configmanager loads and persists the handson cluster description.
//
// Configuration is resolved Viper-style with the priority
// defaults < ho.yaml < HO_* environment variables, and the loaded description
// is validated before any command acts on it.
package configmanager
