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

package api

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/petfriends/pkg/fake"
	"github.com/unikorn-cloud/petfriends/pkg/openapi"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

// Environment is everything a scenario needs to talk to the service.
type Environment struct {
	Config    *TestConfig
	Client    *petfriends.Client
	Validator *openapi.Validator

	// Fake is the in-process service, nil when testing a remote one.
	Fake *fake.Server

	server *httptest.Server
}

// NewEnvironment builds a client for the configured service, starting the
// fake service first when no base URL is configured.
func NewEnvironment(ctx context.Context, config *TestConfig, logger logr.Logger) (*Environment, error) {
	env := &Environment{
		Config: config,
	}

	baseURL := config.BaseURL

	if config.UseFakeServer() {
		env.Fake = fake.New(
			fake.WithAccount(fake.Account{Email: config.ValidEmail, Password: config.ValidPassword}),
			fake.WithLogger(logger.WithName("fake")),
		)

		env.server = httptest.NewServer(env.Fake)

		baseURL = env.server.URL
	}

	clientLogger := logger.WithName("client")

	if !config.LogRequests {
		clientLogger = clientLogger.V(1)
	}

	client, err := petfriends.New(baseURL,
		petfriends.WithTimeout(config.RequestTimeout),
		petfriends.WithLogger(clientLogger),
		petfriends.WithResponseLogging(config.LogResponses),
	)
	if err != nil {
		env.Close()

		return nil, fmt.Errorf("creating client: %w", err)
	}

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		env.Close()

		return nil, err
	}

	env.Client = client
	env.Validator = validator

	return env, nil
}

// Close stops the fake service, if any.
func (e *Environment) Close() {
	if e.server != nil {
		e.server.Close()
	}
}
