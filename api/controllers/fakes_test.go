package controllers

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/vincenzo-scotto001/fantastic-giggle/openai"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

var errFakeService = errors.New("service unavailable")

// fakeChatClient scripts model responses and counts calls.
type fakeChatClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []openai.ChatRequest
}

func (f *fakeChatClient) next(req openai.ChatRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	call := len(f.requests) - 1
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "scripted-reply-" + strconv.Itoa(call), nil
}

func (f *fakeChatClient) Complete(_ context.Context, req openai.ChatRequest) (string, error) {
	return f.next(req)
}

func (f *fakeChatClient) Stream(_ context.Context, req openai.ChatRequest, onChunk func(string)) (string, error) {
	text, err := f.next(req)
	if err != nil {
		return "", err
	}
	if onChunk != nil {
		onChunk(text)
	}
	return text, nil
}

func (f *fakeChatClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// spyElderStorage serves canned rows and counts increments per elder id.
type spyElderStorage struct {
	mu         sync.Mutex
	rows       []*storage.CouncilElder
	increments map[int]int
	failWrites bool
	failReads  bool
}

func newSpyElderStorage(rows ...*storage.CouncilElder) *spyElderStorage {
	return &spyElderStorage{rows: rows, increments: map[int]int{}}
}

func (s *spyElderStorage) Get(_ context.Context, id int) (*storage.CouncilElder, error) {
	for _, r := range s.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, storage.ErrElderNotFound
}

func (s *spyElderStorage) GetAll(_ context.Context) ([]*storage.CouncilElder, error) {
	if s.failReads {
		return nil, errFakeService
	}
	return s.rows, nil
}

func (s *spyElderStorage) IncrementPoints(_ context.Context, id int, name string) (*storage.CouncilElder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.increments[id]++
	if s.failWrites {
		return nil, errFakeService
	}
	return &storage.CouncilElder{ID: id, Name: name, Points: s.increments[id]}, nil
}

func (s *spyElderStorage) totalIncrements() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.increments {
		total += n
	}
	return total
}

// spyInteractionStorage records logged interactions.
type spyInteractionStorage struct {
	mu   sync.Mutex
	logs []*storage.Interaction
	fail bool
}

func (s *spyInteractionStorage) Put(_ context.Context, interaction *storage.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errFakeService
	}
	s.logs = append(s.logs, interaction)
	return nil
}

func (s *spyInteractionStorage) GetAll(_ context.Context) ([]*storage.Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errFakeService
	}
	return s.logs, nil
}
