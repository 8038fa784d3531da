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

package fake_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/petfriends/pkg/fake"
	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

func TestStoreOwnership(t *testing.T) {
	t.Parallel()

	store := fake.NewStore()

	a := store.Create("alice", "Tux", "penguin", "4")
	b := store.Create("bob", "Rex", "dog", "7")

	ignore := cmpopts.IgnoreFields(petfriends.Pet{}, "ID", "CreatedAt")

	want := []petfriends.Pet{
		{Name: "Tux", AnimalType: "penguin", Age: "4", UserID: "alice"},
	}

	if diff := cmp.Diff(want, store.List("alice"), ignore); diff != "" {
		t.Fatalf("alice's pets mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, store.List(""), 2)

	_, err := store.Update("alice", b.ID, "Mine", "dog", "1")
	require.ErrorIs(t, err, fake.ErrNotOwner)

	_, err = store.SetPhoto("alice", "missing", "data:image/jpeg;base64,")
	require.ErrorIs(t, err, fake.ErrPetNotFound)

	require.ErrorIs(t, store.Delete("alice", b.ID), fake.ErrNotOwner)
	require.NoError(t, store.Delete("alice", "missing"))
	require.NoError(t, store.Delete("alice", a.ID))

	if diff := cmp.Diff([]string{b.ID}, petfriends.PetIDs(store.List(""))); diff != "" {
		t.Fatalf("remaining pets mismatch (-want +got):\n%s", diff)
	}
}
