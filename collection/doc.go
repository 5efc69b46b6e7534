// Package collection implements page-windowed collections: an ordered,
// server-backed list that holds one page of records, knows its page number
// and size, and turns navigation into fetches against a list endpoint.
//
//	c, err := collection.New[appliance.Disk](fetcher, &collection.Options{
//	    PageSize: 10,
//	    BaseURL:  collection.Fixed("http://nas.local/api/disks"),
//	})
//	op, err := c.Fetch(ctx)          // GET /api/disks?format=json&page=1&page_size=10
//	err = op.Wait(ctx)
//
//	info := c.PageInfo()             // EntryCount, PageCount, Range, Prev/Next
//	op, err = c.NextPage(ctx)        // nil op: already on the last page
//
// Endpoints scoped by a parent entity use a computed resolver:
//
//	collection.Computed(func(w collection.Window) string {
//	    return base + "/api/shares/" + shareID + "/snapshots"
//	})
//
// Every navigation is tagged with a sequence number. A response that
// arrives after a newer navigation is discarded and its Operation completes
// with ErrStaleResponse, so the items always belong to the latest request.
// A failed fetch leaves the page number where the navigation put it and the
// items of the previous page in place; Status reports Failed and Err the
// cause. Nothing is retried.
//
// Subscribers registered with Subscribe are called after every applied
// fetch, before the corresponding Operation completes.
package collection
