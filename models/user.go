// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a stored user record.
//
// ID is assigned by the store on creation and is never changed afterwards.
// Name and Email are the only fields a client may set or update.
type User struct {
	// ID is the store-assigned identifier. It starts at 1 and grows by one
	// for every successful create; identifiers of deleted users are not reused.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's e-mail address.
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
