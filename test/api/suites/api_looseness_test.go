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

// These scenarios pin requests the service accepts although they look
// invalid. Flip the expectations once the service validates them.
var _ = Describe("API Looseness", Label("looseness"), func() {
	var (
		authKey string
		pet     petfriends.Pet
	)

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
		pet = api.EnsureMyPet(ctx, env, authKey)
	})

	Context("When updating a pet with a non-numeric age", func() {
		It("should accept the update", func() {
			resp, err := client.UpdatePetInfo(ctx, authKey, pet.ID, api.NewPetPayload().WithName("Мурзик").WithAnimalType("Котэ").WithAge("abc").Build())
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			updated, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Age).To(Equal(petfriends.Age("abc")))
		})
	})

	Context("When setting a raw camera image as photo", func() {
		DescribeTable("should accept the photo",
			func(image string) {
				resp, err := client.SetPhoto(ctx, authKey, pet.ID, api.LoadImage(config, image))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.PetPhoto()).NotTo(BeEmpty())

				api.VerifyContract(ctx, env, resp)
			},
			Entry("Nikon NEF", api.ImageNikonRaw),
			Entry("TIFF", api.ImageTIFF),
		)
	})
})
