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

	"github.com/unikorn-cloud/petfriends/test/api"
)

var _ = Describe("Pet Deletion", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
	})

	Context("When deleting my pet", func() {
		Describe("Given a valid auth key", func() {
			It("should remove the pet from my pets", func() {
				pet := api.EnsureMyPet(ctx, env, authKey)

				resp, err := client.DeletePet(ctx, authKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.VerifyContract(ctx, env, resp)
				api.VerifyPetAbsent(api.ListMyPets(ctx, env, authKey), pet.ID)
			})
		})

		Describe("Given an invalid auth key", func() {
			It("should be forbidden and keep the pet", func() {
				_, pet := api.CreatePetWithCleanup(ctx, env, authKey, api.NewPetPayload().Build())

				resp, err := client.DeletePet(ctx, config.InvalidAuthKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

				api.VerifyPetPresent(api.ListMyPets(ctx, env, authKey), pet.ID)
			})
		})
	})
})
