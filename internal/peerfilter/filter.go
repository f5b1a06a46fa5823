package peerfilter

// ConnectionFilter is the engine's per-connection filter contract. The
// engine may invoke it twice for one connection: once before the handshake
// completes (attributes possibly incomplete) and once after, with handshake
// set accordingly.
type ConnectionFilter func(peer PeerInfo, handshake bool, stopFiltering *bool) bool

// WrapFilter adapts a classification rule to the engine's filter contract.
// A negative pre-handshake observation sets stopFiltering, telling the
// engine to skip further filtering passes for that connection. That can
// miss a peer whose identity only turns bad after the handshake; the
// tradeoff is inherited from the plugin API and kept as-is.
func WrapFilter(rule RuleFunc) ConnectionFilter {
	return func(peer PeerInfo, handshake bool, stopFiltering *bool) bool {
		matched := rule(peer)
		if stopFiltering != nil {
			*stopFiltering = !handshake && !matched
		}
		return matched
	}
}
