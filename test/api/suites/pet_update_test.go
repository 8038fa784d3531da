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

var _ = Describe("Pet Update", func() {
	var (
		authKey string
		pet     petfriends.Pet
	)

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
		pet = api.EnsureMyPet(ctx, env, authKey)
	})

	Context("When updating my pet", func() {
		Describe("Given complete pet data", func() {
			It("should update the pet", func() {
				resp, err := client.UpdatePetInfo(ctx, authKey, pet.ID, api.NewPetPayload().WithName("Мурзик").WithAnimalType("Котэ").WithAge("5").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Name()).To(Equal("Мурзик"))

				api.VerifyContract(ctx, env, resp)
			})
		})

		Describe("Given the animal type is missing", func() {
			It("should not update the pet", func() {
				resp, err := client.UpdatePetInfo(ctx, authKey, pet.ID, api.NewPetPayload().WithName("Мурзик").WithoutAnimalType().WithAge("5").Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})
	})
})
