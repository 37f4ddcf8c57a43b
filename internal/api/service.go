// Package api serves board sessions over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/hashing"
	"github.com/lgbarn/boardstate-go/internal/store"
)

var log = slog.Default().With("package", "api")

// SetLogger replaces the logger used by the package.
func SetLogger(l *slog.Logger) {
	log = l.With("package", "api")
}

// BoardService applies board operations to stored sessions. Operations on
// one session run one at a time; different sessions proceed in parallel.
type BoardService struct {
	store     store.Store
	positions *hashing.ThreadSafeDuplicateDetector

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is held in BoardService.locks only while some caller holds
// or waits for it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewBoardService creates a service over s.
func NewBoardService(s store.Store) *BoardService {
	return &BoardService{
		store:     s,
		positions: hashing.NewThreadSafeDuplicateDetector(0),
		locks:     make(map[string]*sessionLock),
	}
}

// Stats summarises service activity.
type Stats struct {
	Sessions  int `json:"sessions"`
	Positions int `json:"positions"`
	Repeats   int `json:"repeats"`
}

// lock serializes work on one session and returns the matching unlock.
// The entry is dropped by the last caller to release it, so ids that never
// name a session leave nothing behind.
func (s *BoardService) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// lockCount returns the number of live session locks.
func (s *BoardService) lockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

// load reads and parses a session's record.
func (s *BoardService) load(id string) (*chess.Board, error) {
	record, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	return chess.NewBoardFromFEN(record)
}

// Create starts a session from a record, or from the starting position
// when record is empty. The second result reports whether the position
// was already seen by this service.
func (s *BoardService) Create(record string) (string, *chess.Board, bool, error) {
	if record == "" {
		record = chess.InitialFEN
	}
	board, err := chess.NewBoardFromFEN(record)
	if err != nil {
		return "", nil, false, err
	}
	id, err := s.store.Create(board.FEN())
	if err != nil {
		return "", nil, false, err
	}
	repeated := s.positions.CheckAndAdd(board)
	log.Info("session created", "id", id, "fen", board.FEN())
	return id, board, repeated, nil
}

// Get returns the current board of a session.
func (s *BoardService) Get(id string) (*chess.Board, error) {
	defer s.lock(id)()
	return s.load(id)
}

// Delete ends a session.
func (s *BoardService) Delete(id string) error {
	unlock := s.lock(id)
	err := s.store.Delete(id)
	unlock()
	if err == nil {
		log.Info("session deleted", "id", id)
	}
	return err
}

// Moves returns the pseudo-legal moves of the piece on square.
func (s *BoardService) Moves(id, square string) ([]chess.Move, error) {
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		return nil, err
	}
	board, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return board.FindMoves(c)
}

// Apply plays a move on a session and saves the result. A move that would
// push the half-move clock past what a record can hold is refused so that
// the stored record always parses.
func (s *BoardService) Apply(id, moveText string) (*chess.Board, bool, error) {
	m, err := chess.ParseMove(moveText)
	if err != nil {
		return nil, false, err
	}

	defer s.lock(id)()
	board, err := s.load(id)
	if err != nil {
		return nil, false, err
	}

	next := board.Clone()
	if err := next.MakeMove(m); err != nil {
		return nil, false, err
	}
	if next.HalfmoveClock() >= chess.MaxHalfmoveClock {
		return nil, false, &errors.InvariantError{
			Op:     "apply move",
			Square: m.Origin.String(),
			Reason: fmt.Sprintf("half-move clock would reach %d", chess.MaxHalfmoveClock),
		}
	}
	if err := s.store.Save(id, next.FEN()); err != nil {
		return nil, false, err
	}
	repeated := s.positions.CheckAndAdd(next)
	log.Debug("move applied", "id", id, "move", m.String(), "fen", next.FEN())
	return next, repeated, nil
}

// Check reports whether playing moveText would leave colour's king
// attacked. The session is not changed.
func (s *BoardService) Check(id, moveText string, colour chess.Colour) (bool, error) {
	m, err := chess.ParseMove(moveText)
	if err != nil {
		return false, err
	}
	board, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return board.ResultsInCheck(m, colour)
}

// Stats returns current counters.
func (s *BoardService) Stats() (Stats, error) {
	n, err := s.store.Count()
	if err != nil {
		return Stats{}, err
	}
	unique, repeats := s.positions.Counts()
	return Stats{Sessions: n, Positions: unique, Repeats: repeats}, nil
}
