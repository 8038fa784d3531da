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

// Package api provides the integration test harness for the PetFriends API.
//
// The suites under suites/ drive a PetFriends service through the
// petfriends client. When API_BASE_URL is unset they run against the
// in-process fake service, so they are hermetic by default; pointing
// API_BASE_URL at a real deployment runs the same scenarios remotely.
//
// Every response the suites care about is also checked against the
// embedded OpenAPI contract. Statuses are asserted explicitly, as the
// service answers 200 to some requests that look invalid (non-numeric
// ages, raw camera images), and those scenarios pin that behaviour.
package api
