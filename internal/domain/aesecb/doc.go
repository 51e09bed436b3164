// Package aesecb defines the core types and contracts of the AES-128/AES-256 ECB dispatch layer:
// key schedules and their lifecycle, the block backend capability, the ECB driver strategies and the
// error kinds raised when a caller precondition or a backend fails.
package aesecb
