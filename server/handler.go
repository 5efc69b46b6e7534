package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/nasadmin/appliance"
	"github.com/ncobase/nasadmin/ecode"
	"github.com/ncobase/nasadmin/net/resp"
	"github.com/ncobase/nasadmin/paging"
)

// listQuery is the query a collection sends with every fetch
type listQuery struct {
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=1000"`
	Format   string `form:"format" binding:"omitempty,oneof=json"`
	Count    *int   `form:"count" binding:"omitempty,gte=0"`
}

func (s *Server) health(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		resp.Fail(c.Writer, resp.ServiceUnavailable(err.Error()))
		return
	}
	resp.Success(c.Writer, map[string]string{"status": "healthy"})
}

func (s *Server) list(c *gin.Context) {
	r, ok := s.resource(c, c.Param("resource"))
	if !ok {
		return
	}
	if parent, scoped := r.Parent(); scoped {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsRequired(string(parent)+" id")))
		return
	}
	s.page(c, r, "")
}

func (s *Server) get(c *gin.Context) {
	r, ok := s.resource(c, c.Param("resource"))
	if !ok {
		return
	}
	body, err := s.store.Get(c.Request.Context(), r, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) listChildren(c *gin.Context) {
	parent, ok := s.resource(c, c.Param("resource"))
	if !ok {
		return
	}
	child, ok := s.resource(c, c.Param("child"))
	if !ok {
		return
	}
	if p, scoped := child.Parent(); !scoped || p != parent {
		resp.Fail(c.Writer, resp.NotFound(ecode.NotExist(string(parent)+"/"+string(child))))
		return
	}

	id := c.Param("id")
	if _, err := s.store.Get(c.Request.Context(), parent, id); err != nil {
		s.fail(c, err)
		return
	}
	s.page(c, child, id)
}

func (s *Server) page(c *gin.Context, r appliance.Resource, parentID string) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsInvalid("query"), err.Error()))
		return
	}

	ctx := c.Request.Context()
	result, err := paging.Paginate(paging.Params{Page: q.Page, PageSize: q.PageSize}, func(offset, limit int) ([]json.RawMessage, int, error) {
		return s.store.Page(ctx, r, parentID, offset, limit)
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	if q.Count != nil && *q.Count != result.Count {
		s.logger.Debugf(ctx, "%s: client count %d, live count %d", r, *q.Count, result.Count)
	}
	resp.Success(c.Writer, result)
}

func (s *Server) resource(c *gin.Context, name string) (appliance.Resource, bool) {
	r, err := appliance.ParseResource(name)
	if err != nil {
		resp.Fail(c.Writer, resp.NotFound(ecode.NotExist("resource "+name)))
		return "", false
	}
	return r, true
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appliance.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(err.Error()))
	case errors.Is(err, appliance.ErrParentRequired):
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
	default:
		s.logger.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.Fail(c.Writer, resp.InternalServer(ecode.Text(ecode.ServerErr)))
	}
}
