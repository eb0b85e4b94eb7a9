package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/otpgate/internal/dashboard/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
	"github.com/shandysiswandi/otpgate/internal/pkg/uid"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"github.com/shandysiswandi/otpgate/internal/shared/identity/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Message string `json:"message"`
	Data    struct {
		Authenticated bool   `json:"authenticated"`
		Redirect      string `json:"redirect"`
		Dashboard     *struct {
			Name      string   `json:"name"`
			RoleLabel string   `json:"role_label"`
			Initials  string   `json:"initials"`
			Menus     []string `json:"menus"`
		} `json:"dashboard"`
	} `json:"data"`
}

func setup(t *testing.T) (*router.Router, *store.Memory) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	require.NoError(t, err)

	ins := instrument.NewNoop()
	st := store.NewMemory()
	r := router.NewRouter(router.Config{Config: cfg, UUID: uid.NewUUID(), Instrument: ins})
	RegisterHTTPEndpoint(r, usecase.New(usecase.Dependency{Store: st, Config: cfg, Instrument: ins}))

	return r, st
}

func call(t *testing.T, r http.Handler, method, path string) (int, response) {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHTTP_Dashboard(t *testing.T) {
	r, st := setup(t)

	code, resp := call(t, r, http.MethodGet, "/api/v1/dashboard")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login required", resp.Message)
	assert.False(t, resp.Data.Authenticated)
	assert.Equal(t, identity.LoginPath, resp.Data.Redirect)

	require.NoError(t, st.Save(context.Background(), identity.Record{Role: identity.RoleFaculty, Name: "Dr. Sharma"}))

	code, resp = call(t, r, http.MethodGet, "/api/v1/dashboard")
	assert.Equal(t, http.StatusOK, code)
	require.True(t, resp.Data.Authenticated)
	require.NotNil(t, resp.Data.Dashboard)
	assert.Equal(t, "Faculty", resp.Data.Dashboard.RoleLabel)
	assert.Equal(t, "DS", resp.Data.Dashboard.Initials)
	assert.Equal(t, []string{"faculty"}, resp.Data.Dashboard.Menus)

	code, resp = call(t, r, http.MethodPost, "/api/v1/dashboard/logout")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Logged out", resp.Message)

	_, resp = call(t, r, http.MethodGet, "/api/v1/dashboard")
	assert.False(t, resp.Data.Authenticated)
}
