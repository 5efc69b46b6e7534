// Package resp provides standardized HTTP response helpers for the list
// server and the matching decoder used by clients.
//
// # Success Responses
//
//	// list envelope
//	resp.Success(w, &paging.Result[Disk]{Count: 37, Results: disks})
//
//	// message only
//	resp.Success(w, "ok")
//
// # Error Responses
//
//	resp.Fail(w, resp.BadRequest(ecode.FieldIsInvalid("page_size")))
//	resp.Fail(w, resp.NotFound("unknown resource"))
//
// Failures are written as:
//
//	{
//	  "status": 400,
//	  "code": -401,
//	  "message": "page_size invalid",
//	  "errors": {...}
//	}
//
// # Decoding
//
// Clients turn a non-2xx body back into an *Exception, which implements error:
//
//	e := resp.Decode(res.StatusCode, body)
package resp
