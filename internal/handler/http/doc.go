// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the user service.
//
// Every request first receives a trace id and a request-scoped logger, then
// runs through a [Pipeline] of interceptors in a fixed order:
//
//  1. error containment, the single recovery point that turns returned
//     errors and panics into a generic 500 response;
//  2. the token check, which rejects requests without the configured
//     access token;
//  3. request logging around the matched route handler.
//
// Route handlers render expected outcomes (validation failures, unknown
// users, malformed input) themselves and return an error only for
// unexpected faults.
package http
