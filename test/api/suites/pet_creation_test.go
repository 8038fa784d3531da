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

var _ = Describe("Pet Creation", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Барбоскин").WithAnimalType("двортерьер").WithAge("4").Build()

				resp, pet := api.AddPetWithCleanup(ctx, env, authKey, payload, api.LoadImage(config, api.ImagePenguinJPEG))

				Expect(resp.Name()).To(Equal("Барбоскин"))
				Expect(pet.AnimalType).To(Equal("двортерьер"))
				Expect(resp.PetPhoto()).NotTo(BeEmpty())

				api.VerifyContract(ctx, env, resp)
			})
		})

		Describe("Given the age is missing", func() {
			It("should not create the pet", func() {
				resp, err := client.AddNewPet(ctx, authKey, api.NewPetPayload().WithoutAge().Build(), api.LoadImage(config, api.ImagePenguinJPEG))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Мурзик").WithAnimalType("кот").WithAge("2").Build()

				resp, pet := api.CreatePetWithCleanup(ctx, env, authKey, payload)

				Expect(resp.Name()).To(Equal("Мурзик"))
				Expect(pet.PetPhoto).To(BeEmpty())

				api.VerifyContract(ctx, env, resp)
			})
		})
	})
})
