package windebug

// NewMultiplexerForPID creates a multiplexer treating pid as its own process.
func NewMultiplexerForPID(pid int) *Multiplexer {
	return newMultiplexer(pid)
}
