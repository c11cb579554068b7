// Package application wires configuration and logging into the packer and
// runs one input file per call, keeping the main package focused on CLI
// parsing.
package application
