// Package paging provides offset pagination utilities shared by list
// endpoints and the clients that page through them.
//
// # Page Math
//
//	paging.PageCount(25, 10) // 3
//	paging.Offset(3, 10)     // 20
//
//	info := paging.NewInfo(25, 3, 10)
//	// info.Range == [2]int{21, 25}, info.HasPrev() == true, info.HasNext() == false
//
// A negative total (paging.UnknownCount) means the server has not reported
// one yet; NewInfo then yields a page count of 0 and no neighbours.
//
// # Server Side
//
// Execute a paginated query and build the list envelope:
//
//	result, err := paging.Paginate(params, func(offset, limit int) ([]Disk, int, error) {
//	    return store.ListDisks(ctx, offset, limit)
//	})
//	// {"count": 37, "results": [...]}
//
// # Response Structure
//
//	{
//	  "count": 37,        // Total number of records in the remote set
//	  "results": [...]    // Records of the requested page only
//	}
package paging
