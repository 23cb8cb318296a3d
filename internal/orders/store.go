package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

const (
	orderFileExt = ".json"
	lockFileExt  = ".lock"
)

// TimeProvider provides the current time (allows mocking in tests)
type TimeProvider func() time.Time

// Store persists orders.
type Store interface {
	// Create assigns a new id to order and saves it.
	Create(order *Order) error
	// Load reads the order with the given id.
	Load(id string) (*Order, error)
	// Save writes order, replacing any previous version.
	Save(order *Order) error
	// List returns every stored order sorted by creation time.
	List() ([]*Order, error)
	// Update loads the order, applies fn and saves the result while holding the order lock.
	// Nothing is saved when fn returns an error.
	Update(id string, fn func(*Order) error) (*Order, error)
}

// fileStore implements Store with one JSON file per order.
type fileStore struct {
	baseDir      string
	timeProvider TimeProvider
}

// NewStore creates a new file-based order store rooted at baseDir.
func NewStore(baseDir string) Store {
	return NewStoreWithTimeProvider(baseDir, time.Now)
}

// NewStoreWithTimeProvider creates a file-based order store with a custom clock.
func NewStoreWithTimeProvider(baseDir string, tp TimeProvider) Store {
	return &fileStore{
		baseDir:      baseDir,
		timeProvider: tp,
	}
}

// ValidateOrderID checks that id is a UUID, which also keeps it a safe file name.
func ValidateOrderID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOrderID, id)
	}
	return nil
}

func (s *fileStore) orderPath(id string) string {
	return filepath.Join(s.baseDir, id+orderFileExt)
}

// lock acquires the file lock of an order
func (s *fileStore) lock(id string) (*flock.Flock, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create orders directory: %w", err)
	}

	fileLock := flock.New(filepath.Join(s.baseDir, id+lockFileExt))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrOrderLocked, id)
	}

	return fileLock, nil
}

func (s *fileStore) Create(order *Order) error {
	now := s.timeProvider()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	return s.Save(order)
}

func (s *fileStore) Load(id string) (*Order, error) {
	if err := ValidateOrderID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.orderPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCorrupted, err)
	}

	return &order, nil
}

func (s *fileStore) Save(order *Order) error {
	if err := ValidateOrderID(order.ID); err != nil {
		return err
	}

	fileLock, err := s.lock(order.ID)
	if err != nil {
		return err
	}
	defer fileLock.Unlock()

	return s.write(order)
}

func (s *fileStore) Update(id string, fn func(*Order) error) (*Order, error) {
	if err := ValidateOrderID(id); err != nil {
		return nil, err
	}

	fileLock, err := s.lock(id)
	if err != nil {
		return nil, err
	}
	defer fileLock.Unlock()

	order, err := s.Load(id)
	if err != nil {
		return nil, err
	}

	if err := fn(order); err != nil {
		return nil, err
	}

	if err := s.write(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *fileStore) List() ([]*Order, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read orders directory: %w", err)
	}

	var orders []*Order
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), orderFileExt) {
			continue
		}

		order, err := s.Load(strings.TrimSuffix(entry.Name(), orderFileExt))
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}

// write stores the order. The caller must hold the order lock.
func (s *fileStore) write(order *Order) error {
	order.UpdatedAt = s.timeProvider()

	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	if err := atomicWrite(s.orderPath(order.ID), data); err != nil {
		return fmt.Errorf("failed to write order file: %w", err)
	}

	return nil
}

// atomicWrite writes data to a temp file and renames it over path
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	tmpFile.Close()

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
