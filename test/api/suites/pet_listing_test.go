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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Listing", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
	})

	Context("When listing all pets", func() {
		Describe("Given a valid auth key", func() {
			It("should return a non-empty list", func() {
				resp, err := client.ListPets(ctx, authKey, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(pets).NotTo(BeEmpty())

				api.VerifyContract(ctx, env, resp)
			})
		})

		Describe("Given an invalid auth key", func() {
			It("should be forbidden", func() {
				resp, err := client.ListPets(ctx, config.InvalidAuthKey, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Body).NotTo(HaveKey("pets"))

				api.VerifyContract(ctx, env, resp)
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given I own a pet", func() {
			It("should only return my pets", func() {
				pet := api.EnsureMyPet(ctx, env, authKey)

				resp, err := client.ListPets(ctx, authKey, petfriends.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				mine, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())

				api.VerifyContract(ctx, env, resp)
				api.VerifyPetPresent(mine, pet.ID)
				api.VerifyOwnedBy(mine)

				resp, err = client.ListPets(ctx, authKey, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())

				all, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())

				// The public service truncates the full listing.
				if config.UseFakeServer() {
					api.VerifySubset(mine, all)
				}
			})
		})
	})
})
