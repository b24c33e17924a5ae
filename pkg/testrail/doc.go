// Package testrail provides types, interfaces, and helpers for working with
// the TestRail v2 API.
//
// # Overview
//
// The testrail package defines the domain types (Project, Suite, Section,
// Case, User, Group, Priority) and the interfaces for resource-oriented
// clients (e.g., ProjectsClient, CasesClient). A concrete implementation of
// these clients is provided by the trclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// trclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/autoocto/testrail-tools/pkg/testrail"
//	  "github.com/autoocto/testrail-tools/pkg/trclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := trclient.New(&testrail.Config{
//	    BaseURL: "https://example.testrail.io",
//	    Email:   "user@example.com",
//	    APIKey:  "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  projects, err := cli.Projects().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Pagination
//
// Paginated listings return an envelope embedding Pagination: the requested
// offset and limit, the total size at the current filter, and the server's
// opaque continuation links. The links are dereferenced verbatim by the
// ListLink methods; the PageIterator walks them for you:
//
//	it := cli.Cases().Iterate(ctx, projectID, nil)
//	for it.HasNext() {
//	  c, err := it.Next()
//	  if err != nil { break }
//	  _ = c
//	}
//
// Users and priorities are not paginated; their List methods return bare
// slices and never carry links.
//
// # Errors
//
// Service errors are represented by APIError, transport-level failures by
// NetworkError. Helpers such as IsNotFound, IsUnauthorized, and IsForbidden
// make it easy to branch on common cases; a 403 from group or user listings
// is a normal outcome for non-admin accounts.
package testrail
