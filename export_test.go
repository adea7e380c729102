package formcheck

// SetHostResolver swaps the DNS probe behind the urlActive rule and returns a
// restore function, so tests stay off the network.
func SetHostResolver(fn func(host string) bool) (restore func()) {
	prev := hostResolves
	hostResolves = fn
	return func() { hostResolves = prev }
}
