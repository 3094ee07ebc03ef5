package api_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"firststeps/internal/api"
	"firststeps/internal/store"
)

// testEnv wires the full router over in-memory stores.
type testEnv struct {
	Router    http.Handler
	UserStore *fakeUserStore
	FileStore *fakeFileStore
	Pinger    *fakePinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	us := newFakeUserStore()
	fs := newFakeFileStore()
	p := &fakePinger{}

	router := api.NewRouter(api.Deps{
		Logger:    zap.NewNop(),
		Pinger:    p,
		UserStore: us,
		FileStore: fs,
	})

	return &testEnv{Router: router, UserStore: us, FileStore: fs, Pinger: p}
}

// seedUser creates a user directly in the fake store.
func seedUser(t *testing.T, env *testEnv, fullName, email string) *store.User {
	t.Helper()
	u, err := env.UserStore.Create(context.Background(), fullName, email)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedFile stores a file directly in the fake store.
func seedFile(t *testing.T, env *testEnv, filename, contentType, content string) *store.FileInfo {
	t.Helper()
	info, err := env.FileStore.Upload(context.Background(), filename, contentType, bytes.NewBufferString(content))
	if err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return info
}

// fakeUserStore is an in-memory UserStoreIface for router tests.
type fakeUserStore struct {
	mu    sync.Mutex
	seq   int64
	users map[string]*store.User

	createErr error
	getErr    error
	listErr   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*store.User)}
}

func (f *fakeUserStore) EnsureIndexes(context.Context) error { return nil }

func (f *fakeUserStore) NextUserIndex(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq, nil
}

func (f *fakeUserStore) Create(ctx context.Context, fullName, email string) (*store.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	seq, _ := f.NextUserIndex(ctx)
	id, err := store.NewShortHexID()
	if err != nil {
		return nil, err
	}

	u := &store.User{
		ID:        id,
		UserIndex: seq,
		FullName:  fullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	f.mu.Lock()
	f.users[id] = u
	f.mu.Unlock()
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*store.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) List(_ context.Context, afterIndex int64, limit int) ([]*store.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.User
	for _, u := range f.users {
		if u.UserIndex > afterIndex {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserIndex < out[j].UserIndex })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserStore) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

// fakeFileStore is an in-memory FileStoreIface for router tests.
type fakeFileStore struct {
	mu    sync.Mutex
	seq   int
	files map[string]*fakeFile

	uploadErr error
	listErr   error
}

type fakeFile struct {
	info *store.FileInfo
	data []byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string]*fakeFile)}
}

func (f *fakeFileStore) Upload(_ context.Context, filename, contentType string, r io.Reader) (*store.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	info := &store.FileInfo{
		ID:          fmt.Sprintf("%024x", f.seq),
		Filename:    filename,
		Length:      int64(len(data)),
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}
	f.files[info.ID] = &fakeFile{info: info, data: data}
	return info, nil
}

func (f *fakeFileStore) Download(_ context.Context, id string, w io.Writer) (*store.FileInfo, error) {
	f.mu.Lock()
	file, ok := f.files[id]
	f.mu.Unlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	if _, err := w.Write(file.data); err != nil {
		return nil, err
	}
	return file.info, nil
}

func (f *fakeFileStore) Stat(_ context.Context, id string) (*store.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return file.info, nil
}

func (f *fakeFileStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.files[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.files, id)
	return nil
}

func (f *fakeFileStore) List(_ context.Context, limit int) ([]*store.FileInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.FileInfo
	for _, file := range f.files {
		out = append(out, file.info)
	}
	// Newest first, matching the GridFS-backed store.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakePinger reports a configurable ping result.
type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error { return p.err }
