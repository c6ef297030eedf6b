package roles

import (
	"sync"

	"github.com/mmynk/tontine/internal/models"
)

type cacheKey struct {
	userID string
	email  string
}

type groupEntry struct {
	gen   uint64
	roles map[cacheKey]models.Role
}

// cache holds resolved roles per group. Each invalidation bumps the group's
// generation so a resolution that raced with a write is never stored.
type cache struct {
	mu     sync.Mutex
	groups map[string]*groupEntry
}

func newCache() *cache {
	return &cache{groups: make(map[string]*groupEntry)}
}

func (c *cache) entry(groupID string) *groupEntry {
	e, ok := c.groups[groupID]
	if !ok {
		e = &groupEntry{roles: make(map[cacheKey]models.Role)}
		c.groups[groupID] = e
	}
	return e
}

func (c *cache) get(groupID string, caller Caller) (models.Role, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.groups[groupID]
	if !ok {
		return "", false
	}
	role, ok := e.roles[cacheKey{caller.UserID, caller.Email}]
	return role, ok
}

func (c *cache) generation(groupID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry(groupID).gen
}

func (c *cache) put(groupID string, caller Caller, role models.Role, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry(groupID)
	if e.gen != gen {
		return
	}
	e.roles[cacheKey{caller.UserID, caller.Email}] = role
}

func (c *cache) invalidate(groupID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry(groupID)
	e.gen++
	clear(e.roles)
}
