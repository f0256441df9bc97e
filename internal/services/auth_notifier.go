package services

import (
	"sync"

	"wayfare/internal/models/response_models"
)

type AuthEvent string

const (
	AuthEventSignedIn  AuthEvent = "signed-in"
	AuthEventSignedOut AuthEvent = "signed-out"
)

type AuthListener func(event AuthEvent, profile response_models.UserProfile)

// AuthNotifier fans auth state changes out to in-process subscribers.
// Subscribe returns a handle that Unsubscribe accepts, so listeners can
// detach without identity comparisons on funcs.
type AuthNotifier struct {
	mu        sync.RWMutex
	next      int
	listeners map[int]AuthListener
}

func NewAuthNotifier() *AuthNotifier {
	return &AuthNotifier{listeners: make(map[int]AuthListener)}
}

func (n *AuthNotifier) Subscribe(listener AuthListener) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	n.listeners[n.next] = listener
	return n.next
}

func (n *AuthNotifier) Unsubscribe(handle int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.listeners, handle)
}

func (n *AuthNotifier) Emit(event AuthEvent, profile response_models.UserProfile) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, listener := range n.listeners {
		listener(event, profile)
	}
}
