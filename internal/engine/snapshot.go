package engine

import (
	"sync"
	"time"

	"github.com/mkraev/sellerboard/internal/model"
)

// Snapshot — неизменяемый результат одного успешного обновления: оба окна
// сразу, либо ни одного. Окна пересекаются и не выводятся друг из друга.
type Snapshot struct {
	Report      []model.Posting
	Operational []model.Posting
	From        time.Time
	To          time.Time
	FetchedAt   time.Time
}

type userState struct {
	seq  uint64
	snap *Snapshot
}

// SnapshotCache держит последний успешный снимок по оператору.
// Begin/Commit дают last-request-wins: результат обновления, которое успели
// обогнать, отбрасывается вместо смешивания со свежими данными.
type SnapshotCache struct {
	mu     sync.RWMutex
	states map[int]*userState
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{states: make(map[int]*userState)}
}

// Begin регистрирует начало обновления и возвращает его номер.
func (c *SnapshotCache) Begin(userID int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.states[userID]
	if st == nil {
		st = &userState{}
		c.states[userID] = st
	}
	st.seq++
	return st.seq
}

// Commit применяет снимок, только если обновление всё ещё последнее.
func (c *SnapshotCache) Commit(userID int, seq uint64, snap *Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.states[userID]
	if st == nil || st.seq != seq {
		return false
	}
	st.snap = snap
	return true
}

func (c *SnapshotCache) Get(userID int) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := c.states[userID]
	if st == nil || st.snap == nil {
		return nil, false
	}
	return st.snap, true
}
