// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package services provides the suture.Service implementations run by the
supervisor tree.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancellation
  - CountryRefreshService: refresh on startup and on a fixed interval

Each type implements fmt.Stringer so suture logs name it.
*/
package services
