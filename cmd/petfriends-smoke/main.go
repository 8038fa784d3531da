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

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/petfriends/pkg/constants"
	"github.com/unikorn-cloud/petfriends/pkg/logging"
	"github.com/unikorn-cloud/petfriends/pkg/openapi"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"

	cr "sigs.k8s.io/controller-runtime"
)

var errUnexpectedStatus = errors.New("unexpected status")

// smoke authenticates and lists pets, validating both answers against the
// service contract.
func smoke(baseURL, email, password string, filter petfriends.Filter, logOptions *logging.Options) error {
	logger := logOptions.Setup().WithName("smoke")

	ctx := cr.SetupSignalHandler()

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		return err
	}

	client, err := petfriends.New(baseURL, petfriends.WithLogger(logger))
	if err != nil {
		return err
	}

	resp, err := client.GetAPIKey(ctx, email, password)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: api key request returned %d", errUnexpectedStatus, resp.StatusCode)
	}

	if err := validator.ValidateResponse(ctx, resp.Request, resp.StatusCode, resp.Header, []byte(resp.Text)); err != nil {
		return err
	}

	resp, err = client.ListPets(ctx, resp.Key(), filter)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: pet listing returned %d", errUnexpectedStatus, resp.StatusCode)
	}

	if err := validator.ValidateResponse(ctx, resp.Request, resp.StatusCode, resp.Header, []byte(resp.Text)); err != nil {
		return err
	}

	pets, err := resp.Pets()
	if err != nil {
		return err
	}

	logger.Info("pets listed", "filter", filter, "count", len(pets))

	for _, pet := range pets {
		logger.V(1).Info("pet", "id", pet.ID, "name", pet.Name, "animalType", pet.AnimalType, "age", pet.Age)
	}

	return nil
}

func main() {
	var (
		logOptions logging.Options
		baseURL    string
		email      string
		password   string
		filter     string
	)

	logOptions.AddFlags(pflag.CommandLine)

	pflag.StringVar(&baseURL, "base-url", constants.DefaultBaseURL, "PetFriends service root.")
	pflag.StringVar(&email, "email", "", "Account email.")
	pflag.StringVar(&password, "password", "", "Account password.")
	pflag.StringVar(&filter, "filter", string(petfriends.FilterAll), "Pet filter, empty or my_pets.")

	pflag.Parse()

	if err := smoke(baseURL, email, password, petfriends.Filter(filter), &logOptions); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
