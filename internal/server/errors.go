// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither an HTTP nor a gRPC address was usable.
	errNoServersAreCreated = errors.New("no servers are created")
	// errGRPCStopForced is reported when open RPCs outlived the shutdown deadline.
	errGRPCStopForced = errors.New("grpc server stopped before in-flight calls finished")
)
