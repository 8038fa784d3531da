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

// Package petfriends provides a thin HTTP client for the PetFriends REST API.
//
// # Status Codes Are Data
//
// The client exists to let tests probe the service contract, so it never
// turns an HTTP status into a Go error. Every operation performs exactly one
// round trip and returns a Response holding the status code and the decoded
// JSON object, whatever the service answered. A Go error means the round trip
// did not happen or did not complete: the request could not be built, the
// transport failed, or the body could not be read.
//
// # Authentication
//
// GetAPIKey exchanges an email and password for an auth key. Every other
// operation takes that key and sends it in the auth_key header. Keys are
// treated as opaque and never refreshed.
//
// # Photos
//
// Pet photos are carried as oapi-codegen File values and sent as
// multipart/form-data parts named pet_photo. LoadPhoto reads one from disk and
// fails before any request is made when the path is empty or unreadable.
package petfriends
