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
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"

	"k8s.io/utils/ptr"
)

// Sample images under TEST_IMAGES_DIR.
const (
	ImagePenguinJPEG = "pinguino.jpg"
	ImageDogJPEG     = "dog.jpg"
	ImagePDF         = "pdf.pdf"
	ImageNikonRaw    = "nef.NEF"
	ImageTIFF        = "tiff.tiff"
)

// NonExistentPetID is never issued by the service.
const NonExistentPetID = "asdfjg"

// ImagePath returns the path of a sample image.
func ImagePath(config *TestConfig, name string) string {
	return filepath.Join(config.ImagesDir, name)
}

// LoadImage loads a sample image, failing the spec if it is missing.
func LoadImage(config *TestConfig, name string) *openapi_types.File {
	photo, err := petfriends.LoadPhoto(ImagePath(config, name))
	Expect(err).NotTo(HaveOccurred(), "sample image %s should be readable", name)

	return photo
}

// PetPayloadBuilder builds pet fields for testing.
type PetPayloadBuilder struct {
	fields petfriends.PetFields
}

// NewPetPayload returns a complete payload with a unique name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		fields: petfriends.NewPetFields(fmt.Sprintf("Tux-%s", uuid.NewString()[:8]), "penguin", "4"),
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.fields.Name = ptr.To(name)
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.fields.AnimalType = ptr.To(animalType)
	return b
}

// WithAge sets the age, verbatim.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.fields.Age = ptr.To(age)
	return b
}

// WithoutAge leaves the age out of the request.
func (b *PetPayloadBuilder) WithoutAge() *PetPayloadBuilder {
	b.fields.Age = nil
	return b
}

// WithoutAnimalType leaves the animal type out of the request.
func (b *PetPayloadBuilder) WithoutAnimalType() *PetPayloadBuilder {
	b.fields.AnimalType = nil
	return b
}

// Build returns the completed pet fields.
func (b *PetPayloadBuilder) Build() petfriends.PetFields {
	return b.fields
}

// Authenticate exchanges the valid credentials for an auth key.
func Authenticate(ctx context.Context, env *Environment) string {
	resp, err := env.Client.GetAPIKey(ctx, env.Config.ValidEmail, env.Config.ValidPassword)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "authentication failed: %s", resp.Text)
	Expect(resp.Key()).NotTo(BeEmpty())

	return resp.Key()
}

// ListMyPets returns the caller's pets.
func ListMyPets(ctx context.Context, env *Environment, authKey string) []petfriends.Pet {
	resp, err := env.Client.ListPets(ctx, authKey, petfriends.FilterMyPets)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	pets, err := resp.Pets()
	Expect(err).NotTo(HaveOccurred())

	return pets
}

// deleteOnCleanup schedules deletion of a pet, whether the spec passes or fails.
func deleteOnCleanup(env *Environment, authKey, petID string) {
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		resp, err := env.Client.DeletePet(ctx, authKey, petID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
			return
		}

		if resp.StatusCode != http.StatusOK {
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, resp.StatusCode)
		}
	})
}

// AddPetWithCleanup adds a pet with a photo and schedules automatic cleanup.
func AddPetWithCleanup(ctx context.Context, env *Environment, authKey string, fields petfriends.PetFields, photo *openapi_types.File) (*petfriends.Response, *petfriends.Pet) {
	resp, err := env.Client.AddNewPet(ctx, authKey, fields, photo)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "adding pet failed: %s", resp.Text)

	pet, err := resp.Pet()
	Expect(err).NotTo(HaveOccurred())
	Expect(pet.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	deleteOnCleanup(env, authKey, pet.ID)

	return resp, pet
}

// CreatePetWithCleanup creates a pet without a photo and schedules automatic cleanup.
func CreatePetWithCleanup(ctx context.Context, env *Environment, authKey string, fields petfriends.PetFields) (*petfriends.Response, *petfriends.Pet) {
	resp, err := env.Client.CreatePetSimple(ctx, authKey, fields)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", resp.Text)

	pet, err := resp.Pet()
	Expect(err).NotTo(HaveOccurred())
	Expect(pet.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	deleteOnCleanup(env, authKey, pet.ID)

	return resp, pet
}

// EnsureMyPet returns a pet owned by the caller, creating one when the
// account has none.
func EnsureMyPet(ctx context.Context, env *Environment, authKey string) petfriends.Pet {
	if pets := ListMyPets(ctx, env, authKey); len(pets) > 0 {
		return pets[0]
	}

	_, pet := AddPetWithCleanup(ctx, env, authKey, NewPetPayload().Build(), LoadImage(env.Config, ImagePenguinJPEG))

	return *pet
}
