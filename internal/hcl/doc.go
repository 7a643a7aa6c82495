// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for finding and parsing settings files,
// evaluating their expressions and CTY-to-Go data binding.
package hcl
