// Package server is the development list server for the appliance API.
//
// It answers the requests a collection makes:
//
//	GET /api/disks?page=2&page_size=10&format=json
//	GET /api/shares/<id>/snapshots?page=1&page_size=10&format=json
//
// with a {"count", "results"} body. A page past the end has empty results
// and the live count. Invalid query parameters are answered with 400.
package server
