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

package petfriends

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// Filter selects which pets a listing returns.
type Filter string

const (
	// FilterAll lists every pet known to the service.
	FilterAll Filter = ""
	// FilterMyPets lists only pets owned by the caller.
	FilterMyPets Filter = "my_pets"
)

// Age is a pet's age as reported by the service. The service stores
// whatever it was given, so the wire value may be a string or a number.
type Age string

// UnmarshalJSON accepts both JSON strings and numbers.
func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*a = Age(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("age is neither a string nor a number: %w", err)
	}

	*a = Age(n.String())

	return nil
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	// PetPhoto is a data URI, empty when no photo has been set.
	PetPhoto  string `json:"pet_photo"`
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PetList is the listing payload.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// PetIDs returns the identifiers of the given pets, in order.
func PetIDs(pets []Pet) []string {
	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return ids
}

// PetFields carries the writable pet attributes. A nil field is not sent
// at all, which is how requests with missing arguments are expressed.
type PetFields struct {
	Name       *string
	AnimalType *string
	Age        *string
}

// NewPetFields returns fields with every attribute set.
func NewPetFields(name, animalType, age string) PetFields {
	return PetFields{
		Name:       &name,
		AnimalType: &animalType,
		Age:        &age,
	}
}

// formField is a single named value in wire order.
type formField struct {
	name  string
	value string
}

func (f PetFields) fields() []formField {
	var out []formField

	if f.Name != nil {
		out = append(out, formField{name: "name", value: *f.Name})
	}

	if f.AnimalType != nil {
		out = append(out, formField{name: "animal_type", value: *f.AnimalType})
	}

	if f.Age != nil {
		out = append(out, formField{name: "age", value: *f.Age})
	}

	return out
}

// values returns the fields as a URL encoded form.
func (f PetFields) values() url.Values {
	values := url.Values{}

	for _, field := range f.fields() {
		values.Set(field.name, field.value)
	}

	return values
}
