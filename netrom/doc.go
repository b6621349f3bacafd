// Package netrom encodes and decodes the NET/ROM routing-broadcast
// payload carried in the information field of an AX.25 UI frame whose
// PID is 0xCF. It builds on package ax25 for address encoding but knows
// nothing about frame assembly, control fields, or transport.
package netrom
