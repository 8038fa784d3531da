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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"slices"

	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

// VerifyContract checks a response against the service contract.
func VerifyContract(ctx context.Context, env *Environment, resp *petfriends.Response) {
	Expect(env.Validator.ValidateResponse(ctx, resp.Request, resp.StatusCode, resp.Header, []byte(resp.Text))).To(Succeed())
}

// VerifyPetAbsent verifies that a pet is not in the list.
func VerifyPetAbsent(pets []petfriends.Pet, petID string) {
	present := set.New[string](petfriends.PetIDs(pets)...).Intersection(set.New[string](petID))

	Expect(slices.Collect(present.All())).To(BeEmpty(), "Expected pet ID %s to be absent from the list", petID)
}

// VerifyPetPresent verifies that a pet is in the list.
func VerifyPetPresent(pets []petfriends.Pet, petID string) {
	Expect(petfriends.PetIDs(pets)).To(ContainElement(petID), "Expected pet ID %s to be present in the list", petID)
}

// VerifySubset verifies that every pet in subset is also in pets.
func VerifySubset(subset, pets []petfriends.Pet) {
	extra := set.New[string](petfriends.PetIDs(subset)...).Difference(set.New[string](petfriends.PetIDs(pets)...))

	Expect(slices.Collect(extra.All())).To(BeEmpty(), "Expected every pet to be in the full listing")
}

// VerifyOwnedBy verifies that every pet has the same owner, when the
// service reports owners at all.
func VerifyOwnedBy(pets []petfriends.Pet) {
	owners := map[string]struct{}{}

	for _, pet := range pets {
		if pet.UserID != "" {
			owners[pet.UserID] = struct{}{}
		}
	}

	Expect(len(owners)).To(BeNumerically("<=", 1), "Expected a single owner, got %v", owners)
}
