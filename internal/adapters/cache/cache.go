// Package cache stores raw match data payloads so repeated analyses do not
// re-fetch from the open-data host.
//
// Two backends exist: a disk JSON cache (the default, no infrastructure
// required) and a redis cache for shared deployments.
package cache

import "context"

// Cache is a byte-payload store keyed by opaque strings.
type Cache interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the payload under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error
}

// nopCache never hits and never stores.
type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (nopCache) Set(context.Context, string, []byte) error         { return nil }

// Nop returns a cache that caches nothing.
func Nop() Cache { return nopCache{} }
