// Package client implements collection.Fetcher over HTTP.
//
//	fetcher := client.New[appliance.Disk](cfg.Client, client.WithRedis(rc))
//	disks, err := collection.New[appliance.Disk](fetcher, &collection.Options{
//	    PageSize: cfg.Client.PageSize,
//	    BaseURL:  collection.Fixed(cfg.Client.BaseURL + "/api/disks"),
//	})
//
// Every fetch is a GET expecting a {"count", "results"} body. Responses
// with a status of 400 or above become a *StatusError carrying the
// decoded resp.Exception. When the breaker is enabled, server failures
// and transport errors count against it and an open breaker fails with
// ErrCircuitOpen without touching the network.
package client
