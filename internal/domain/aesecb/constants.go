package aesecb

// BlockSize is the AES block size in bytes
const BlockSize = 16

// KeySize128 is the AES-128 key size in bytes
const KeySize128 = 16

// KeySize256 is the AES-256 key size in bytes
const KeySize256 = 32

// ScheduleSize128 is the expanded key size for AES-128 (11 round keys)
const ScheduleSize128 = 16 * 11

// ScheduleSize256 is the expanded key size for AES-256 (15 round keys)
const ScheduleSize256 = 16 * 15

// Backend names
const (
	BackendSoftware = "software"
	BackendCPU      = "cpu"
	BackendExternal = "external"
	BackendHardware = "hardware"
)

// Driver strategy names
const (
	StrategySingleBlock = "single-block"
	StrategyChunked     = "chunked"
	StrategyStream      = "stream"
	StrategyParallel    = "parallel"
)
