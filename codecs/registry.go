package codecs

import (
	"sync"
)

/*
Registry manages named codec implementations so that services can look codecs
up by name at route-registration time -- for instance when resolving a codec
named in a config file.

Lookup never happens per-request; a route's codec is fixed when the route is
registered.
*/
type Registry struct {
	mtx         sync.RWMutex
	codecs      map[string]Codec
	defaultName string
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec under name, replacing any previous registration. The
// first codec registered becomes the registry default.
func (registry *Registry) Register(name string, registered Codec) {
	registry.mtx.Lock()
	defer registry.mtx.Unlock()

	if len(registry.codecs) == 0 {
		registry.defaultName = name
	}
	registry.codecs[name] = registered
}

// Get returns the codec registered under name.
func (registry *Registry) Get(name string) (Codec, bool) {
	registry.mtx.RLock()
	defer registry.mtx.RUnlock()

	found, ok := registry.codecs[name]
	return found, ok
}

// Default returns the default codec, or nil for an empty registry.
func (registry *Registry) Default() Codec {
	registry.mtx.RLock()
	defer registry.mtx.RUnlock()

	return registry.codecs[registry.defaultName]
}

// DefaultRegistry holds the codecs that ship with this module. Msgpack is the
// default.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register("msgpack", Msgpack{})
	DefaultRegistry.Register("cbor", NewCBOR())
	DefaultRegistry.Register("bson", BSON{})
	DefaultRegistry.Register("gob", Gob{})
}
