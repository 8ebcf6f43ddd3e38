// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package blobstore keeps small binary artifacts in an embedded BadgerDB store.

The country refresh pipeline renders a summary PNG after every successful
refresh and writes it here under SummaryKey. The image endpoint reads it back.
Each entry carries its content type and creation time so handlers can set
Content-Type and Last-Modified without touching the database.

An empty path opens an in-memory store, which tests use.
*/
package blobstore
