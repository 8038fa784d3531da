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

var _ = Describe("Pet Photo", func() {
	var (
		authKey string
		pet     petfriends.Pet
	)

	BeforeEach(func() {
		authKey = api.Authenticate(ctx, env)
		pet = api.EnsureMyPet(ctx, env, authKey)
	})

	Context("When setting a photo on my pet", func() {
		Describe("Given a JPEG image", func() {
			It("should set the photo", func() {
				resp, err := client.SetPhoto(ctx, authKey, pet.ID, api.LoadImage(config, api.ImageDogJPEG))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.PetPhoto()).NotTo(BeEmpty())

				api.VerifyContract(ctx, env, resp)
			})
		})

		Describe("Given a PDF document", func() {
			It("should not set the photo", func() {
				resp, err := client.SetPhoto(ctx, authKey, pet.ID, api.LoadImage(config, api.ImagePDF))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})

		Describe("Given an empty photo path", func() {
			It("should fail before sending anything", func() {
				photo, err := petfriends.LoadPhoto("")
				Expect(err).To(MatchError(petfriends.ErrEmptyPhotoPath))
				Expect(photo).To(BeNil())

				_, err = client.SetPhoto(ctx, authKey, pet.ID, photo)
				Expect(err).To(MatchError(petfriends.ErrNoPhoto))
			})
		})
	})

	Context("When setting a photo on a pet that does not exist", func() {
		It("should not set the photo", func() {
			resp, err := client.SetPhoto(ctx, authKey, api.NonExistentPetID, api.LoadImage(config, api.ImageDogJPEG))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
		})
	})
})
