/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake implements an in-process PetFriends service.
//
// It reproduces the behaviour the suites rely on, including the service's
// looseness: any age string is stored, and anything whose bytes look like an
// image (TIFF based raw formats included) is accepted as a photo.
package fake

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

const (
	// CommunityEmail owns the pets seeded at start up so that listing all
	// pets is never empty, as on the public service.
	CommunityEmail = "community@petfriends.test"
)

// Account is a registered user.
type Account struct {
	Email    string
	Password string
}

type user struct {
	id       string
	password string
	key      string
}

// Server is a fake PetFriends service.
type Server struct {
	lock   sync.RWMutex
	users  map[string]*user // by email
	byKey  map[string]*user
	store  *Store
	logger logr.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithAccount registers a user.
func WithAccount(account Account) Option {
	return func(s *Server) {
		s.register(account)
	}
}

// WithLogger logs every request at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New returns a server with a seeded community account.
func New(options ...Option) *Server {
	s := &Server{
		users:  map[string]*user{},
		byKey:  map[string]*user{},
		store:  NewStore(),
		logger: logr.Discard(),
	}

	community := s.register(Account{
		Email:    CommunityEmail,
		Password: uuid.NewString(),
	})

	s.store.Create(community.id, "Барсик", "cat", "3")
	s.store.Create(community.id, "Rex", "dog", "7")

	for _, o := range options {
		o(s)
	}

	s.router = s.routes()

	return s
}

// register adds or replaces an account and issues its key.
func (s *Server) register(account Account) *user {
	s.lock.Lock()
	defer s.lock.Unlock()

	if old, ok := s.users[account.Email]; ok {
		delete(s.byKey, old.key)
	}

	u := &user{
		id:       uuid.NewString(),
		password: account.Password,
		key:      strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")[:56],
	}

	s.users[account.Email] = u
	s.byKey[u.key] = u

	return u
}

// Store exposes the pet store, e.g. for seeding and inspection in tests.
func (s *Server) Store() *Store {
	return s.store
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/api/key", s.getAPIKey)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.addNewPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
		r.Post("/api/pets/set_photo/{petID}", s.setPhoto)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.V(1).Info("request served", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

type userKey struct{}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.RLock()
		u, ok := s.byKey[r.Header.Get("auth_key")]
		s.lock.RUnlock()

		if !ok {
			writeError(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, u)))
	})
}

func userFromContext(ctx context.Context) *user {
	//nolint:forcetypeassert // only reachable behind authenticate
	return ctx.Value(userKey{}).(*user)
}
