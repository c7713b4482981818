package shapebot

import (
	"sync"

	"github.com/ArminGh02/coordset/pkg/collection"
)

// historyLimit is how many past selections a user can /undo back to.
const historyLimit = 20

// selections maps each user to the history of their selection. Collections
// are immutable, so keeping old ones around is all undo needs.
type selections struct {
	userIDToHistory      map[int64][]*collection.Collection
	userIDToHistoryMutex sync.Mutex
}

func newSelections() *selections {
	return &selections{
		userIDToHistory: make(map[int64][]*collection.Collection),
	}
}

// current returns the user's selection and whether the user was known before.
func (s *selections) current(userID int64) (*collection.Collection, bool) {
	s.userIDToHistoryMutex.Lock()
	defer s.userIDToHistoryMutex.Unlock()

	history, ok := s.userIDToHistory[userID]
	if !ok || len(history) == 0 {
		return collection.Empty(), ok
	}
	return history[len(history)-1], true
}

// update replaces the user's selection with f(current). On error the
// selection is left unchanged.
func (s *selections) update(
	userID int64,
	f func(*collection.Collection) (*collection.Collection, error),
) (*collection.Collection, error) {
	s.userIDToHistoryMutex.Lock()
	defer s.userIDToHistoryMutex.Unlock()

	history := s.userIDToHistory[userID]
	cur := collection.Empty()
	if len(history) != 0 {
		cur = history[len(history)-1]
	}

	next, err := f(cur)
	if err != nil {
		return nil, err
	}

	history = append(history, next)
	if len(history) > historyLimit+1 {
		history = append(history[:0:0], history[len(history)-historyLimit-1:]...)
	}
	s.userIDToHistory[userID] = history
	return next, nil
}

// undo drops the latest selection. It reports false when there is nothing to
// go back to.
func (s *selections) undo(userID int64) (*collection.Collection, bool) {
	s.userIDToHistoryMutex.Lock()
	defer s.userIDToHistoryMutex.Unlock()

	history := s.userIDToHistory[userID]
	if len(history) == 0 {
		return collection.Empty(), false
	}

	history = history[:len(history)-1]
	s.userIDToHistory[userID] = history
	if len(history) == 0 {
		return collection.Empty(), true
	}
	return history[len(history)-1], true
}

func (s *selections) clear(userID int64) *collection.Collection {
	empty, _ := s.update(userID, func(*collection.Collection) (*collection.Collection, error) {
		return collection.Empty(), nil
	})
	return empty
}

// register adds a user with an empty selection and reports whether the user
// was new.
func (s *selections) register(userID int64) bool {
	s.userIDToHistoryMutex.Lock()
	defer s.userIDToHistoryMutex.Unlock()

	if _, ok := s.userIDToHistory[userID]; ok {
		return false
	}
	s.userIDToHistory[userID] = nil
	return true
}

func (s *selections) usersCount() int {
	s.userIDToHistoryMutex.Lock()
	defer s.userIDToHistoryMutex.Unlock()
	return len(s.userIDToHistory)
}
