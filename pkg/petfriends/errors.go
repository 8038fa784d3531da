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

package petfriends

import (
	"errors"
)

var (
	// ErrInvalidBaseURL is returned by New for anything but an absolute
	// http or https URL.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

	// ErrEmptyPhotoPath is returned when a photo is loaded from an empty path.
	ErrEmptyPhotoPath = errors.New("photo path is empty")

	// ErrPhotoIsDirectory is returned when a photo path names a directory.
	ErrPhotoIsDirectory = errors.New("photo path is a directory")

	// ErrNoPhoto is returned by SetPhoto when called without a photo.
	ErrNoPhoto = errors.New("no photo given")

	// ErrUnexpectedPayload is returned when a body cannot be decoded into
	// the shape the caller asked for.
	ErrUnexpectedPayload = errors.New("unexpected payload")
)
