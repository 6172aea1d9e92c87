package board

import (
	"sync"

	"gearguard/pkg/client"
)

// View holds the locally displayed status of each request: the confirmed
// value plus the proposals still awaiting the store's answer. The newest
// unanswered proposal is displayed unless a later issued one has already
// committed.
type View struct {
	mu        sync.Mutex
	confirmed map[uint64]client.Status
	committed map[uint64]uint64
	tentative map[uint64][]pending
	seq       uint64
}

type pending struct {
	status client.Status
	seq    uint64
}

// Token identifies one tentative change.
type Token struct {
	id  uint64
	seq uint64
}

func NewView() *View {
	return &View{
		confirmed: make(map[uint64]client.Status),
		committed: make(map[uint64]uint64),
		tentative: make(map[uint64][]pending),
	}
}

// Load records freshly fetched statuses as confirmed.
func (v *View) Load(requests []client.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range requests {
		v.confirmed[r.ID] = r.Status
	}
}

// Forget drops a removed request.
func (v *View) Forget(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.confirmed, id)
	delete(v.committed, id)
	delete(v.tentative, id)
}

// Propose shows status for id until the returned token is committed or
// rolled back.
func (v *View) Propose(id uint64, status client.Status) Token {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.tentative[id] = append(v.tentative[id], pending{status: status, seq: v.seq})
	return Token{id: id, seq: v.seq}
}

// Commit confirms the proposal unless a later issued proposal for the same
// id has already committed.
func (v *View) Commit(tok Token, status client.Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.drop(tok)
	if tok.seq > v.committed[tok.id] {
		v.committed[tok.id] = tok.seq
		v.confirmed[tok.id] = status
	}
}

// Rollback discards only this proposal. Older proposals still in flight keep
// their place.
func (v *View) Rollback(tok Token) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.drop(tok)
}

func (v *View) drop(tok Token) {
	list := v.tentative[tok.id]
	for i, p := range list {
		if p.seq == tok.seq {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(v.tentative, tok.id)
		return
	}
	v.tentative[tok.id] = list
}

// shown must be called with mu held.
func (v *View) shown(id uint64) (client.Status, bool) {
	if list := v.tentative[id]; len(list) > 0 {
		if newest := list[len(list)-1]; newest.seq > v.committed[id] {
			return newest.status, true
		}
	}
	s, ok := v.confirmed[id]
	return s, ok
}

// Status is the status to display for id.
func (v *View) Status(id uint64) (client.Status, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.shown(id)
}

// Pending reports whether id has an unanswered proposal.
func (v *View) Pending(id uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tentative[id]) > 0
}

// Apply returns a copy of requests with displayed statuses substituted.
func (v *View) Apply(requests []client.Request) []client.Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]client.Request, len(requests))
	for i, r := range requests {
		if s, ok := v.shown(r.ID); ok {
			r.Status = s
		}
		out[i] = r
	}
	return out
}
