package backend

import "golang.org/x/sys/cpu"

// SupportsHardwareAES reports whether the CPU has AES instructions that crypto/aes uses.
func SupportsHardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES || cpu.PPC64.IsPOWER8
}
