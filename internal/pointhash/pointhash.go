// Package pointhash implements an open-addressed point set, the
// membership register the MLCS engine's uncover step uses to avoid
// reconsidering a slice point twice (the H register of spec.md §4.6;
// the engine has no CleanM register).
//
// Ported from original_source/src/pointHash.c. The C table hashes the
// point's raw bytes with a hand-rolled polynomial hash re-seeded modulo
// the table size on every byte; here the bytes are hashed once per probe
// with github.com/zeebo/xxh3 and only the final probe index depends on
// the table size, but the surrounding open-addressing/linear-probing,
// prime-sized growth table, and expand-on-insert/shrink-on-delete policy
// are unchanged.
package pointhash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"mlcs/point"
)

var primes = []int{
	3, 5, 7, 11, 17, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611, 402653189, 805306457,
	1610612741,
}

func nextPrime(m int) int {
	for _, p := range primes {
		if p > m {
			return p
		}
	}
	return primes[len(primes)-1]
}

func prevPrime(m int) int {
	r := primes[0]
	for _, p := range primes {
		if p >= m {
			break
		}
		r = p
	}
	return r
}

// Set is an open-addressed set of points, used to track points already
// considered while propagating a rank update.
type Set struct {
	dim int
	buf []point.Point // nil slot == empty
	n   int
}

// New allocates an empty set for dim-dimensional points.
func New(dim int) *Set {
	return &Set{dim: dim, buf: make([]point.Point, 3)}
}

func keyBytes(p point.Point) []byte {
	b := make([]byte, 8*len(p))
	for i, v := range p {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(v))
	}
	return b
}

func (s *Set) findPosition(p point.Point) int {
	i := int(xxh3.Hash(keyBytes(p)) % uint64(len(s.buf)))
	for s.buf[i] != nil && !s.buf[i].Equals(p) {
		i++
		i %= len(s.buf)
	}
	return i
}

func (s *Set) expand(m int) {
	old := s.buf
	s.buf = make([]point.Point, m)
	s.n = 0
	for _, p := range old {
		if p != nil {
			s.insertRaw(p)
		}
	}
}

func (s *Set) insertRaw(p point.Point) {
	s.n++
	s.buf[s.findPosition(p)] = p
}

// Insert adds p to the set. p must not already be present.
func (s *Set) Insert(p point.Point) {
	if 2*(s.n+1) > len(s.buf) {
		s.expand(nextPrime(len(s.buf)))
	}
	s.insertRaw(p)
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p point.Point) bool {
	return s.buf[s.findPosition(p)] != nil
}

// Len returns the number of stored points.
func (s *Set) Len() int { return s.n }

// Delete removes p from the set, re-inserting any probe-chain successors
// so membership queries stay correct (mirrors pointHash.c's deletePH).
func (s *Set) Delete(p point.Point) {
	if 2 < s.n && 8*(s.n-1) < len(s.buf) {
		s.expand(prevPrime(len(s.buf)))
	}

	i := s.findPosition(p)
	s.buf[i] = nil
	s.n--
	i++
	i %= len(s.buf)
	for s.buf[i] != nil {
		t := s.buf[i]
		s.buf[i] = nil
		s.n--
		i++
		i %= len(s.buf)
		s.Insert(t)
	}
}
