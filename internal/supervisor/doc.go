// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

/*
Package supervisor provides process supervision for Stringwise using suture v4.

# Overview

Long-running services are grouped into two layers:

	RootSupervisor ("stringwise")
	├── "sync-layer"
	│   └── CountryRefreshService (if COUNTRIES_REFRESH_INTERVAL > 0 or COUNTRIES_REFRESH_ON_STARTUP)
	└── "api-layer"
	    └── HTTPServerService

A crashed service is restarted by its layer supervisor with backoff; the other
layer keeps running.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddSyncService(services.NewCountryRefreshService(mgr, interval, onStartup))
	tree.AddAPIService(services.NewHTTPServerService(srv, srv.Addr, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Logging

Supervisor events (restarts, backoff, timeouts) go through sutureslog to the
slog adapter in internal/logging, so they share the zerolog output.

# See Also

  - internal/supervisor/services: the suture.Service implementations
  - github.com/thejerf/suture/v4
*/
package supervisor
