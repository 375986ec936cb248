package ssh

// Reap runs one tick of the idle connection reaper.
func (p *Pool) Reap() { p.reap() }

// PoolKey exposes the key connections are shared by.
var PoolKey = poolKey
