package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/nasadmin/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWritesData(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]any{"count": 2, "results": []int{1, 2}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 2, body["count"])
}

func TestSuccessMessageOnly(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "healthy")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["message"])
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, BadRequest("page_size invalid"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := Decode(w.Code, w.Body.Bytes())
	assert.Equal(t, ecode.ParamErr, e.Code)
	assert.Equal(t, "page_size invalid", e.Message)
	assert.Equal(t, http.StatusBadRequest, e.Status)
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeNonJSONBody(t *testing.T) {
	e := Decode(http.StatusBadGateway, []byte("upstream down"))
	assert.Equal(t, "upstream down", e.Message)
	assert.Equal(t, ecode.ServerErr, e.Code)
	assert.Contains(t, e.Error(), "upstream down")
}
