// Package otp generates one-time passcodes delivered over a messaging channel.
//
// Codes are random alphanumeric strings. A declarative override table can pin
// a fixed code to specific contact numbers, which keeps operational carve-outs
// (demo and test accounts) out of the generation logic itself.
package otp
