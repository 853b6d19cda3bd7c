package ledger

import (
	"context"
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
)

const memoryShards = 64

// MemoryStore is an in-process ledger. Locking is sharded by (doctor, date)
// so reservations for different doctors or different days never contend.
type MemoryStore struct {
	shards [memoryShards]memoryShard
}

type memoryShard struct {
	mu    sync.Mutex
	slots map[slotKey]struct{}
}

type slotKey struct {
	doctorID uint
	dateKey  string
	slotTime string
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.shards {
		s.shards[i].slots = make(map[slotKey]struct{})
	}
	return s
}

func (s *MemoryStore) shard(doctorID uint, dateKey string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(strconv.FormatUint(uint64(doctorID), 10)))
	h.Write([]byte(dateKey))
	return &s.shards[h.Sum32()%memoryShards]
}

func (s *MemoryStore) IsFree(_ context.Context, doctorID uint, dateKey, slotTime string) (bool, error) {
	sh := s.shard(doctorID, dateKey)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, booked := sh.slots[slotKey{doctorID, dateKey, slotTime}]
	return !booked, nil
}

func (s *MemoryStore) Reserve(_ context.Context, doctorID uint, dateKey, slotTime string) error {
	sh := s.shard(doctorID, dateKey)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	key := slotKey{doctorID, dateKey, slotTime}
	if _, booked := sh.slots[key]; booked {
		return ErrAlreadyBooked
	}
	sh.slots[key] = struct{}{}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, doctorID uint, dateKey, slotTime string) error {
	sh := s.shard(doctorID, dateKey)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	key := slotKey{doctorID, dateKey, slotTime}
	if _, booked := sh.slots[key]; !booked {
		return ErrNotFound
	}
	delete(sh.slots, key)
	return nil
}

func (s *MemoryStore) BookedSlots(_ context.Context, doctorID uint) (map[string][]string, error) {
	booked := make(map[string][]string)
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for key := range sh.slots {
			if key.doctorID == doctorID {
				booked[key.dateKey] = append(booked[key.dateKey], key.slotTime)
			}
		}
		sh.mu.Unlock()
	}
	for date := range booked {
		sort.Strings(booked[date])
	}
	return booked, nil
}
