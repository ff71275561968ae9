package application

import (
	"context"
	"sync"
	"time"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
)

// In-memory store shared by the fake repositories. Mirrors the
// semantics of the postgres implementations: admin-first registration,
// unique emails and titles, comment cascade on post delete.
type memStore struct {
	mu          sync.Mutex
	users       map[int64]*entity.User
	posts       map[int64]*entity.Post
	comments    map[int64]*entity.Comment
	nextUser    int64
	nextPost    int64
	nextComment int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*entity.User{},
		posts:    map[int64]*entity.Post{},
		comments: map[int64]*entity.Comment{},
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.users {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.s.nextUser++
	u.ID = r.s.nextUser
	u.IsAdmin = len(r.s.users) == 0
	u.CreatedAt = time.Now()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUsers) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

type memPosts struct{ s *memStore }

func (r memPosts) Create(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.posts {
		if e.Title == p.Title {
			return repository.ErrDuplicate
		}
	}
	r.s.nextPost++
	p.ID = r.s.nextPost
	p.CreatedAt = time.Now()
	cp := *p
	r.s.posts[p.ID] = &cp
	return nil
}

func (r memPosts) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	if u, ok := r.s.users[p.AuthorID]; ok {
		uc := *u
		cp.Author = &uc
	}
	return &cp, nil
}

func (r memPosts) List(_ context.Context) ([]*entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Post
	for id := int64(1); id <= r.s.nextPost; id++ {
		if p, ok := r.s.posts[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memPosts) Update(_ context.Context, p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, e := range r.s.posts {
		if e.Title == p.Title && e.ID != p.ID {
			return repository.ErrDuplicate
		}
	}
	cp := *p
	cp.Author = nil
	r.s.posts[p.ID] = &cp
	return nil
}

func (r memPosts) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.posts, id)
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

func (r memPosts) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.posts)), nil
}

type memComments struct{ s *memStore }

func (r memComments) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextComment++
	c.ID = r.s.nextComment
	c.CreatedAt = time.Now()
	cp := *c
	r.s.comments[c.ID] = &cp
	return nil
}

func (r memComments) ListByPost(_ context.Context, postID int64) ([]*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Comment
	for id := int64(1); id <= r.s.nextComment; id++ {
		if c, ok := r.s.comments[id]; ok && c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memComments) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.comments)), nil
}

var (
	_ repository.UserRepository    = memUsers{}
	_ repository.PostRepository    = memPosts{}
	_ repository.CommentRepository = memComments{}
)

// memSessions is an in-memory SessionStore.
type memSessions struct {
	mu       sync.Mutex
	sessions map[string]Identity
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]Identity{}}
}

func (s *memSessions) Save(_ context.Context, id Identity, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id.SessionID] = id
	return nil
}

func (s *memSessions) Get(_ context.Context, sid string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[sid]
	if !ok {
		return nil, nil
	}
	cp := id
	return &cp, nil
}

func (s *memSessions) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

var _ SessionStore = (*memSessions)(nil)
