package anime_test

import (
	"context"
	"sync"

	"github.com/taibuivan/anidex/internal/anime"
	"github.com/taibuivan/anidex/internal/platform/apperr"
	"github.com/taibuivan/anidex/internal/platform/dberr"
)

// memoryRepository is an in-memory anime.Repository for handler and service tests.
type memoryRepository struct {
	mu     sync.Mutex
	rows   []*anime.Anime
	nextID int
	// failWith, when set, is returned by every call as a storage fault.
	failWith error
	calls    int
}

func newMemoryRepository(seed ...anime.Input) *memoryRepository {
	repository := &memoryRepository{nextID: 1}
	for _, input := range seed {
		_, _ = repository.CreateAnime(context.Background(), input)
	}
	repository.calls = 0
	return repository
}

func (repository *memoryRepository) fault() error {
	repository.calls++
	if repository.failWith != nil {
		return apperr.Internal(repository.failWith)
	}
	return nil
}

func (repository *memoryRepository) ListAnimes(context.Context) ([]*anime.Anime, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.fault(); err != nil {
		return nil, err
	}

	out := make([]*anime.Anime, 0, len(repository.rows))
	for _, row := range repository.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out, nil
}

func (repository *memoryRepository) GetAnime(_ context.Context, id int) (*anime.Anime, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.fault(); err != nil {
		return nil, err
	}

	if index := repository.find(id); index >= 0 {
		copied := *repository.rows[index]
		return &copied, nil
	}
	return nil, apperr.NotFound("Anime")
}

func (repository *memoryRepository) CreateAnime(_ context.Context, input anime.Input) (*anime.Anime, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.fault(); err != nil {
		return nil, err
	}

	row := &anime.Anime{ID: repository.nextID, Name: input.Name, Description: input.Description}
	repository.nextID++
	repository.rows = append(repository.rows, row)

	copied := *row
	return &copied, nil
}

func (repository *memoryRepository) UpdateAnime(_ context.Context, id int, input anime.Input) (*anime.Anime, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.fault(); err != nil {
		return nil, err
	}

	index := repository.find(id)
	if index < 0 {
		return nil, dberr.NotFound("Anime", dberr.ErrNotFound)
	}

	repository.rows[index].Name = input.Name
	repository.rows[index].Description = input.Description
	copied := *repository.rows[index]
	return &copied, nil
}

func (repository *memoryRepository) DeleteAnime(_ context.Context, id int) (*anime.Anime, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.fault(); err != nil {
		return nil, err
	}

	index := repository.find(id)
	if index < 0 {
		return nil, dberr.NotFound("Anime", dberr.ErrNotFound)
	}

	deleted := repository.rows[index]
	repository.rows = append(repository.rows[:index], repository.rows[index+1:]...)
	return deleted, nil
}

func (repository *memoryRepository) find(id int) int {
	for index, row := range repository.rows {
		if row.ID == id {
			return index
		}
	}
	return -1
}

func (repository *memoryRepository) count() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.rows)
}

func (repository *memoryRepository) callCount() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.calls
}
