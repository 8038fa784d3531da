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
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const (
	maxMemory = 32 << 20

	photoField = "pet_photo"
)

// writeError answers with a plain text body, like the service's error pages.
func writeError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPetNotFound):
		writeError(w, http.StatusNotFound, "Pet with this id wasn't found!")
	case errors.Is(err, ErrNotOwner):
		writeError(w, http.StatusForbidden, "This pet belongs to another user")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// requiredFields reads name, animal_type and age, all of which must be
// present. Their content is not checked.
func requiredFields(r *http.Request) (string, string, string, bool) {
	var values []string

	for _, name := range []string{"name", "animal_type", "age"} {
		value := strings.TrimSpace(r.PostFormValue(name))
		if value == "" {
			return "", "", "", false
		}

		values = append(values, value)
	}

	return values[0], values[1], values[2], true
}

// readPhoto extracts the photo part and renders it as a data URI.
func readPhoto(r *http.Request) (string, int, string) {
	part, header, err := r.FormFile(photoField)
	if err != nil {
		return "", http.StatusBadRequest, "pet_photo is required"
	}

	_ = part.Close()

	var photo openapi_types.File

	photo.InitFromMultipart(header)

	data, err := photo.Bytes()
	if err != nil {
		return "", http.StatusInternalServerError, "failed to read pet_photo"
	}

	contentType, ok := sniffImage(data)
	if !ok {
		return "", http.StatusBadRequest, "pet_photo is not an image"
	}

	return dataURI(contentType, data), http.StatusOK, ""
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	s.lock.RLock()
	u, ok := s.users[r.Header.Get("email")]
	s.lock.RUnlock()

	if !ok || u.password != r.Header.Get("password") {
		writeError(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": u.key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	var owner string

	switch petfriends.Filter(r.URL.Query().Get("filter")) {
	case petfriends.FilterAll:
	case petfriends.FilterMyPets:
		owner = u.id
	default:
		writeError(w, http.StatusBadRequest, "Filter value is incorrect")
		return
	}

	writeJSON(w, http.StatusOK, petfriends.PetList{Pets: s.store.List(owner)})
}

func (s *Server) addNewPet(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart/form-data")
		return
	}

	name, animalType, age, ok := requiredFields(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "name, animal_type and age are required")
		return
	}

	photo, status, message := readPhoto(r)
	if status != http.StatusOK {
		writeError(w, status, message)
		return
	}

	pet := s.store.Create(u.id, name, animalType, age)

	pet, err := s.store.SetPhoto(u.id, pet.ID, photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	name, animalType, age, ok := requiredFields(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "name, animal_type and age are required")
		return
	}

	writeJSON(w, http.StatusOK, s.store.Create(u.id, name, animalType, age))
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	name, animalType, age, ok := requiredFields(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "name, animal_type and age are required")
		return
	}

	pet, err := s.store.Update(u.id, chi.URLParam(r, "petID"), name, animalType, age)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) setPhoto(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())
	petID := chi.URLParam(r, "petID")

	if _, err := s.store.Get(petID); err != nil {
		writeStoreError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart/form-data")
		return
	}

	photo, status, message := readPhoto(r)
	if status != http.StatusOK {
		writeError(w, status, message)
		return
	}

	pet, err := s.store.SetPhoto(u.id, petID, photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())

	if err := s.store.Delete(u.id, chi.URLParam(r, "petID")); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
