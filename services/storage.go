package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/shared"
)

// DocumentBackend is the durable key-value collaborator: a whole JSON
// document per storage namespace.
type DocumentBackend interface {
	GetDocument(ctx context.Context, namespace string) ([]byte, error)
	PutDocument(ctx context.Context, namespace string, data []byte) error
}

// documentPersister is what the stores depend on; tests substitute a stub.
type documentPersister interface {
	Persist(namespace string, doc interface{})
}

type persistRequest struct {
	namespace string
	data      []byte
}

// StorageService decouples persistence from the store mutation methods.
// Loads are synchronous (startup only); writes are fire-and-forget through a
// single writer goroutine so no mutation ever blocks on durable storage.
// In-memory state is the source of truth; a failed write is logged and never
// rolled back.
type StorageService struct {
	appContext.DefaultService

	backendName string
	backend     DocumentBackend

	mu     sync.RWMutex
	closed bool
	writes chan persistRequest
	done   chan struct{}
}

const STORAGE_SVC = "storage_svc"

func (svc StorageService) Id() string {
	return STORAGE_SVC
}

func (svc *StorageService) Configure(ctx *appContext.Context) error {
	svc.backendName = os.Getenv("STORAGE_BACKEND")
	if svc.backendName == "" {
		svc.backendName = "sqlite"
	}

	svc.writes = make(chan persistRequest, 256)
	svc.done = make(chan struct{})

	return svc.DefaultService.Configure(ctx)
}

func (svc *StorageService) Start() error {
	switch svc.backendName {
	case "redis":
		svc.backend = svc.Service(REDIS_SVC).(*RedisService)
	case "sqlite":
		svc.backend = svc.Service(SQLITE_SVC).(*SqliteService)
	default:
		return fmt.Errorf("unknown storage backend: %s", svc.backendName)
	}

	go svc.writerLoop()

	return nil
}

func (svc *StorageService) Shutdown() {
	svc.mu.Lock()
	if svc.closed {
		svc.mu.Unlock()
		return
	}
	svc.closed = true
	close(svc.writes)
	svc.mu.Unlock()

	<-svc.done
}

// Load reads a namespace document into dest. Returns false when the
// namespace has never been written.
func (svc *StorageService) Load(namespace string, dest interface{}) (bool, error) {
	data, err := svc.backend.GetDocument(context.Background(), namespace)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := shared.JSONUnmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Persist snapshots doc immediately and queues the write. Callers invoke it
// while still holding their store lock, so queue order matches mutation
// order; the writer keeps only the newest snapshot per namespace.
func (svc *StorageService) Persist(namespace string, doc interface{}) {
	data, err := shared.JSONMarshal(doc)
	if err != nil {
		log.WithError(err).WithField("namespace", namespace).Error("Failed to encode state document")
		return
	}

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	if svc.closed {
		return
	}

	svc.writes <- persistRequest{namespace: namespace, data: data}
}

func (svc *StorageService) writerLoop() {
	defer close(svc.done)

	for {
		req, ok := <-svc.writes
		if !ok {
			return
		}

		latest := map[string][]byte{req.namespace: req.data}

		// Drain whatever else is queued so rapid mutations coalesce into a
		// single write per namespace.
		closed := false
		drained := false
		for !drained {
			select {
			case req, ok := <-svc.writes:
				if !ok {
					closed = true
					drained = true
					break
				}
				latest[req.namespace] = req.data
			default:
				drained = true
			}
		}

		svc.flush(latest)
		if closed {
			return
		}
	}
}

func (svc *StorageService) flush(latest map[string][]byte) {
	for namespace, data := range latest {
		if err := svc.backend.PutDocument(context.Background(), namespace, data); err != nil {
			log.WithError(err).WithField("namespace", namespace).Error("Persistence failure, in-memory state retained")
		}
	}
}
