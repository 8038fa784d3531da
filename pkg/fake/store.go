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

package fake

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var (
	// ErrPetNotFound is returned for unknown pet IDs.
	ErrPetNotFound = errors.New("pet not found")

	// ErrNotOwner is returned when a user touches someone else's pet.
	ErrNotOwner = errors.New("pet belongs to another user")
)

// Store is an in-memory pet store. Listing order is creation order.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]petfriends.Pet
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID: map[string]petfriends.Pet{},
	}
}

// Create adds a pet owned by userID.
func (s *Store) Create(userID, name, animalType, age string) petfriends.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet := petfriends.Pet{
		ID:         uuid.NewString(),
		Name:       name,
		AnimalType: animalType,
		Age:        petfriends.Age(age),
		UserID:     userID,
		CreatedAt:  fmt.Sprintf("%d", time.Now().Unix()),
	}

	s.byID[pet.ID] = pet
	s.order = append(s.order, pet.ID)

	return pet
}

// Get returns a pet by ID.
func (s *Store) Get(id string) (petfriends.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pet, ok := s.byID[id]
	if !ok {
		return petfriends.Pet{}, ErrPetNotFound
	}

	return pet, nil
}

// List returns every pet, or only those owned by userID when it is set.
func (s *Store) List(userID string) []petfriends.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]petfriends.Pet, 0, len(s.order))

	for _, id := range s.order {
		pet := s.byID[id]

		if userID != "" && pet.UserID != userID {
			continue
		}

		out = append(out, pet)
	}

	return out
}

// modify applies f to a pet owned by userID.
func (s *Store) modify(userID, id string, f func(*petfriends.Pet)) (petfriends.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.byID[id]
	if !ok {
		return petfriends.Pet{}, ErrPetNotFound
	}

	if pet.UserID != userID {
		return petfriends.Pet{}, ErrNotOwner
	}

	f(&pet)

	s.byID[id] = pet

	return pet, nil
}

// Update replaces the writable fields of a pet.
func (s *Store) Update(userID, id, name, animalType, age string) (petfriends.Pet, error) {
	return s.modify(userID, id, func(pet *petfriends.Pet) {
		pet.Name = name
		pet.AnimalType = animalType
		pet.Age = petfriends.Age(age)
	})
}

// SetPhoto replaces a pet's photo data URI.
func (s *Store) SetPhoto(userID, id, photo string) (petfriends.Pet, error) {
	return s.modify(userID, id, func(pet *petfriends.Pet) {
		pet.PetPhoto = photo
	})
}

// Delete removes a pet. Deleting a pet that does not exist is not an error.
func (s *Store) Delete(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.byID[id]
	if !ok {
		return nil
	}

	if pet.UserID != userID {
		return ErrNotOwner
	}

	delete(s.byID, id)

	s.order = slices.DeleteFunc(s.order, func(x string) bool {
		return x == id
	})

	return nil
}
