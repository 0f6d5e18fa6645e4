package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/repository"
	"github.com/lite-lake/boardkit/internal/domain/retry"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

const filePermissionOwnerRW = 0o600

var _ repository.DocumentRepository = (*FileStore)(nil)

// FileStore keeps a board document in a YAML file guarded by a sidecar lock file.
// Load and Save take the lock for their own duration unless the caller
// already holds it through Lock.
type FileStore struct {
	path      string
	flock     *flock.Flock
	retryOpts []retry.Option

	mu    sync.Mutex
	holds int
}

func NewFileStore(path string, retryOpts ...retry.Option) *FileStore {
	return &FileStore{
		path:      path,
		flock:     flock.New(path + ".lock"),
		retryOpts: retryOpts,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Lock takes the document lock, creating the document's directory if needed.
// Calls nest; the file lock is released by the matching last Unlock.
func (s *FileStore) Lock(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.holds == 0 {
		if err := s.acquire(ctx); err != nil {
			return err
		}
	}
	s.holds++
	return nil
}

func (s *FileStore) Unlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.holds == 0 {
		return nil
	}
	s.holds--
	if s.holds > 0 {
		return nil
	}
	return s.flock.Unlock()
}

func (s *FileStore) acquire(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", s.path, domain.WrapOp("mkdir", domain.ErrStateWriteFailed))
	}

	opts := append([]retry.Option{retry.RetryOn(domain.ErrLockBusy)}, s.retryOpts...)
	return retry.Do(ctx, func() error {
		ok, err := s.flock.TryLock()
		if err != nil {
			return fmt.Errorf("acquiring lock %s: %w", s.flock.Path(), err)
		}
		if !ok {
			return domain.ErrLockBusy
		}
		return nil
	}, opts...)
}

func (s *FileStore) Load(ctx context.Context) (*entity.Document, error) {
	if err := s.Lock(ctx); err != nil {
		return nil, err
	}
	defer s.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.NewDocument(), nil
		}
		return nil, fmt.Errorf("reading document %s: %w", s.path, domain.WrapOp("read document", domain.ErrStateReadFailed))
	}

	doc := entity.NewDocument()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", s.path, domain.WrapOp("parse document", domain.ErrStateSerializeFail))
	}
	if doc.Shapes == nil {
		doc.Shapes = []entity.Shape{}
	}

	logger.FromContext(ctx).Debug("document loaded", "path", s.path, "shapes", len(doc.Shapes))
	return doc, nil
}

func (s *FileStore) Save(ctx context.Context, doc *entity.Document) error {
	if err := s.Lock(ctx); err != nil {
		return err
	}
	defer s.Unlock()

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document for %s: %w", s.path, domain.WrapOp("marshal document", domain.ErrStateSerializeFail))
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmpPath, data, filePermissionOwnerRW); err != nil {
		return fmt.Errorf("writing temp document %s: %w", tmpPath, domain.WrapOp("write temp document", domain.ErrStateWriteFailed))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming document from %s to %s: %w", tmpPath, s.path, domain.WrapOp("rename document", domain.ErrStateWriteFailed))
	}

	logger.FromContext(ctx).Debug("document saved", "path", s.path, "shapes", len(doc.Shapes))
	return nil
}
