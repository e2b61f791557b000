// Package clientcfg implements the client side of configuration handling:
// deciding which configuration bundle is authoritative (environment over
// persisted store), normalizing pasted configuration text into a validated
// record, and persisting the chosen record plus a stable requester
// identity.
package clientcfg
