package tokenstore

import (
	"sync"
	"time"

	"golang.org/x/oauth2"
)

var GlobalTokenStore *TokenStore
var once sync.Once

type TokenStore struct {
	store map[string]TokenEntry
	mutex sync.Mutex
}

type TokenEntry struct {
	Token      *oauth2.Token
	Expiration time.Time
}

func init() {
	once.Do(func() {
		GlobalTokenStore = NewTokenStore()
	})
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		store: make(map[string]TokenEntry),
	}
}

func (ts *TokenStore) SetToken(name string, entry TokenEntry) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	ts.store[name] = entry
}

// GetToken returns the stored token and whether it is still valid. An
// expired token comes back with false so the caller can refresh it.
func (ts *TokenStore) GetToken(name string) (*oauth2.Token, bool) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()

	entry, found := ts.store[name]
	if !found {
		return nil, false
	}
	if entry.Expiration.Before(time.Now()) {
		return entry.Token, false
	}
	return entry.Token, true
}

func (ts *TokenStore) IsTokenValid(name string) bool {
	_, valid := ts.GetToken(name)
	return valid
}
