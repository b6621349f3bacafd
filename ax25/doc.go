// Package ax25 implements a transport-agnostic codec for AX.25 v2.2
// amateur packet-radio link-layer frames: address encoding, the
// modulo-8 control field, and whole-frame assembly/disassembly with
// repeater-path handling.
//
// It operates purely on in-memory values and byte slices. It knows
// nothing about KISS, sockets, serial ports, or radios - those are
// transport concerns that sit above this package and consume its
// byte output.
package ax25
