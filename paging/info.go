package paging

// UnknownCount marks a total that has not been reported by a server yet.
const UnknownCount = -1

// Info describes the position of one page inside a remote record set
type Info struct {
	EntryCount int    `json:"entry_count"`
	PageNumber int    `json:"page_number"`
	PageSize   int    `json:"page_size"`
	PageCount  int    `json:"page_count"`
	Range      [2]int `json:"range"`
	Prev       int    `json:"prev,omitempty"`
	Next       int    `json:"next,omitempty"`
}

// NewInfo computes page metadata. A negative total means the total is not
// known yet: the page count is 0 and neither neighbour exists.
func NewInfo(total, page, size int) Info {
	info := Info{
		EntryCount: total,
		PageNumber: page,
		PageSize:   size,
		PageCount:  PageCount(total, size),
	}

	if total > 0 && size > 0 && page >= 1 {
		first := Offset(page, size) + 1
		last := min(total, page*size)
		if first <= last {
			info.Range = [2]int{first, last}
		}
	}

	if page > 1 {
		info.Prev = page - 1
	}
	if page < info.PageCount {
		info.Next = page + 1
	}
	return info
}

// HasPrev reports whether a previous page exists.
func (i Info) HasPrev() bool { return i.Prev > 0 }

// HasNext reports whether a next page exists.
func (i Info) HasNext() bool { return i.Next > 0 }

// Known reports whether EntryCount came from a server.
func (i Info) Known() bool { return i.EntryCount >= 0 }
