package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/cache"
	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/reminder"
	mock_server "github.com/allseasons/tiredepot/internal/server/mocks"
)

type testMocks struct {
	depot    *mock_server.MockDepotService
	custody  *mock_server.MockCustodyService
	reminder *mock_server.MockReminderService
	userRepo *mock_server.MockUserRepo
}

func newTestServer(t *testing.T) (*Server, testMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := testMocks{
		depot:    mock_server.NewMockDepotService(ctrl),
		custody:  mock_server.NewMockCustodyService(ctrl),
		reminder: mock_server.NewMockReminderService(ctrl),
		userRepo: mock_server.NewMockUserRepo(ctrl),
	}
	srv := New(m.depot, m.custody, m.reminder, m.userRepo, cache.NewStatusCache(time.Minute), zap.NewNop())
	return srv, m
}

func emptyLayout(providerID string) *depot.Layout {
	return &depot.Layout{
		ProviderID:     providerID,
		Corridors:      []depot.Corridor{{Name: "A", Racks: 1, SlotsPerRack: 2, Capacity: 2}},
		TotalCapacity:  2,
		AvailableSlots: 2,
		Slots:          map[depot.Coordinate]depot.SlotInfo{},
	}
}

func TestHandleIntake(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func(m testMocks)
		expectedStatus int
	}{
		{
			name: "successful intake",
			requestBody: `{
				"customer_id": "cust-1",
				"vehicle_id": "veh-1",
				"provider_id": "provider-1",
				"tire_set": {"season": "winter", "brand": "Nokian", "size": "205/55R16"},
				"fee": 4500
			}`,
			setupMocks: func(m testMocks) {
				m.custody.EXPECT().Intake(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, req custody.IntakeRequest) (*custody.Record, error) {
						assert.Equal(t, "cust-1", req.CustomerID)
						assert.Equal(t, custody.SeasonWinter, req.TireSet.Season)
						assert.Equal(t, 4500, req.Fee)
						return &custody.Record{ID: uuid.New(), Status: custody.StatusStored, Code: "TD-X-YYYYYY"}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid request body",
			requestBody:    `{not json`,
			setupMocks:     func(testMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "validation error",
			requestBody: `{"customer_id": "", "vehicle_id": "veh-1", "provider_id": "provider-1", "tire_set": {}}`,
			setupMocks: func(m testMocks) {
				m.custody.EXPECT().Intake(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Validationf("customer, vehicle and provider ids are required"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "depot full",
			requestBody: `{"customer_id": "cust-1", "vehicle_id": "veh-1", "provider_id": "provider-1", "tire_set": {"season": "winter", "brand": "Nokian", "size": "205/55R16"}}`,
			setupMocks: func(m testMocks) {
				m.custody.EXPECT().Intake(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.Capacityf("no free slot"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "unexpected error is opaque",
			requestBody: `{"customer_id": "cust-1", "vehicle_id": "veh-1", "provider_id": "provider-1", "tire_set": {"season": "winter", "brand": "Nokian", "size": "205/55R16"}}`,
			setupMocks: func(m testMocks) {
				m.custody.EXPECT().Intake(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, m := newTestServer(t)
			tc.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/custody", bytes.NewReader([]byte(tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			srv.handleIntake(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
			}
		})
	}
}

func TestHandleLookupByCode(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.custody.EXPECT().LookupByCode(gomock.Any(), "provider-1", "TD-X-YYYYYY").
			Return(&custody.Record{Code: "TD-X-YYYYYY", Status: custody.StatusStored}, nil)

		req := httptest.NewRequest(http.MethodGet, "/providers/provider-1/custody/TD-X-YYYYYY", nil)
		req = mux.SetURLVars(req, map[string]string{"provider": "provider-1", "code": "TD-X-YYYYYY"})
		rr := httptest.NewRecorder()

		srv.handleLookupByCode(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var rec custody.Record
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
		assert.Equal(t, "TD-X-YYYYYY", rec.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.custody.EXPECT().LookupByCode(gomock.Any(), "provider-1", "TD-NOPE").
			Return(nil, apperrors.NotFoundf("no stored record with code TD-NOPE"))

		req := httptest.NewRequest(http.MethodGet, "/providers/provider-1/custody/TD-NOPE", nil)
		req = mux.SetURLVars(req, map[string]string{"provider": "provider-1", "code": "TD-NOPE"})
		rr := httptest.NewRecorder()

		srv.handleLookupByCode(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleRelease(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv, m := newTestServer(t)
		id := uuid.New()
		m.custody.EXPECT().Release(gomock.Any(), id, "provider-1").
			Return(&custody.Record{ID: id, Status: custody.StatusRetrieved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/custody/"+id.String()+"/release",
			bytes.NewReader([]byte(`{"provider_id":"provider-1"}`)))
		req = mux.SetURLVars(req, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		srv.handleRelease(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		srv, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/custody/not-a-uuid/release",
			bytes.NewReader([]byte(`{"provider_id":"provider-1"}`)))
		req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
		rr := httptest.NewRecorder()

		srv.handleRelease(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("double release", func(t *testing.T) {
		srv, m := newTestServer(t)
		id := uuid.New()
		m.custody.EXPECT().Release(gomock.Any(), id, "provider-1").
			Return(nil, apperrors.Conflictf("custody record already released"))

		req := httptest.NewRequest(http.MethodPost, "/custody/"+id.String()+"/release",
			bytes.NewReader([]byte(`{"provider_id":"provider-1"}`)))
		req = mux.SetURLVars(req, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		srv.handleRelease(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleMarkDamaged(t *testing.T) {
	srv, m := newTestServer(t)
	id := uuid.New()
	m.custody.EXPECT().MarkDamaged(gomock.Any(), id, "provider-1").
		Return(&custody.Record{ID: id, Status: custody.StatusDamaged}, nil)

	req := httptest.NewRequest(http.MethodPost, "/custody/"+id.String()+"/damage",
		bytes.NewReader([]byte(`{"provider_id":"provider-1"}`)))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rr := httptest.NewRecorder()

	srv.handleMarkDamaged(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleDepotStatus(t *testing.T) {
	t.Run("second request is served from cache", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.depot.EXPECT().Status(gomock.Any(), "provider-1").Return(emptyLayout("provider-1"), nil).Times(1)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/providers/provider-1/depot", nil)
			req = mux.SetURLVars(req, map[string]string{"provider": "provider-1"})
			rr := httptest.NewRecorder()

			srv.handleDepotStatus(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("no layout", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.depot.EXPECT().Status(gomock.Any(), "provider-9").
			Return(nil, apperrors.NotFoundf("no depot layout defined for provider provider-9"))

		req := httptest.NewRequest(http.MethodGet, "/providers/provider-9/depot", nil)
		req = mux.SetURLVars(req, map[string]string{"provider": "provider-9"})
		rr := httptest.NewRecorder()

		srv.handleDepotStatus(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleDefineLayout(t *testing.T) {
	t.Run("success drops the cached snapshot", func(t *testing.T) {
		srv, m := newTestServer(t)

		// Prime the cache, redefine, then expect a fresh read.
		m.depot.EXPECT().Status(gomock.Any(), "provider-1").Return(emptyLayout("provider-1"), nil).Times(2)
		m.depot.EXPECT().DefineLayout(gomock.Any(), "provider-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, providerID string, corridors []depot.Corridor) (*depot.Layout, error) {
				require.Len(t, corridors, 1)
				assert.Equal(t, depot.Corridor{Name: "A", Racks: 1, SlotsPerRack: 2}, corridors[0])
				return emptyLayout(providerID), nil
			})

		statusReq := httptest.NewRequest(http.MethodGet, "/providers/provider-1/depot", nil)
		statusReq = mux.SetURLVars(statusReq, map[string]string{"provider": "provider-1"})
		srv.handleDepotStatus(httptest.NewRecorder(), statusReq)

		defineReq := httptest.NewRequest(http.MethodPut, "/providers/provider-1/layout",
			bytes.NewReader([]byte(`{"corridors":[{"name":"A","racks":1,"slots_per_rack":2}]}`)))
		defineReq = mux.SetURLVars(defineReq, map[string]string{"provider": "provider-1"})
		rr := httptest.NewRecorder()
		srv.handleDefineLayout(rr, defineReq)
		assert.Equal(t, http.StatusOK, rr.Code)

		statusReq = httptest.NewRequest(http.MethodGet, "/providers/provider-1/depot", nil)
		statusReq = mux.SetURLVars(statusReq, map[string]string{"provider": "provider-1"})
		srv.handleDepotStatus(httptest.NewRecorder(), statusReq)
	})

	t.Run("validation error", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.depot.EXPECT().DefineLayout(gomock.Any(), "provider-1", gomock.Any()).
			Return(nil, apperrors.Validationf("layout must declare at least one corridor"))

		req := httptest.NewRequest(http.MethodPut, "/providers/provider-1/layout",
			bytes.NewReader([]byte(`{"corridors":[]}`)))
		req = mux.SetURLVars(req, map[string]string{"provider": "provider-1"})
		rr := httptest.NewRecorder()

		srv.handleDefineLayout(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCustomerRecords(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.custody.EXPECT().ListByCustomer(gomock.Any(), "cust-1", 5, true).Return([]custody.Record{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/custody?last=5&active=true", nil)
		req = mux.SetURLVars(req, map[string]string{"customer": "cust-1"})
		rr := httptest.NewRecorder()

		srv.handleCustomerRecords(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejects malformed last parameter", func(t *testing.T) {
		srv, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/custody?last=abc", nil)
		req = mux.SetURLVars(req, map[string]string{"customer": "cust-1"})
		rr := httptest.NewRecorder()

		srv.handleCustomerRecords(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleRunSweep(t *testing.T) {
	srv, m := newTestServer(t)
	m.reminder.EXPECT().RunSeasonalSweep(gomock.Any(), "provider-1", custody.SeasonWinter).
		Return(reminder.SweepResult{Sent: 3, Delivered: 2, Failed: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/providers/provider-1/reminders/winter/run", nil)
	req = mux.SetURLVars(req, map[string]string{"provider": "provider-1", "season": "winter"})
	rr := httptest.NewRecorder()

	srv.handleRunSweep(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"sent":3,"delivered":2,"failed":1}`, rr.Body.String())
}

func TestBasicAuthMiddleware(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		srv, _ := newTestServer(t)
		router := srv.setupRoutes()

		req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/custody", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("wrong credentials", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.userRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "wrong").Return(false, nil)
		router := srv.setupRoutes()

		req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/custody", nil)
		req.SetBasicAuth("admin", "wrong")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		srv, m := newTestServer(t)
		m.userRepo.EXPECT().ValidateUser(gomock.Any(), "admin", "secret").Return(true, nil)
		m.custody.EXPECT().ListByCustomer(gomock.Any(), "cust-1", 0, false).Return([]custody.Record{}, nil)
		router := srv.setupRoutes()

		req := httptest.NewRequest(http.MethodGet, "/customers/cust-1/custody", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("metrics endpoint is open", func(t *testing.T) {
		srv, _ := newTestServer(t)
		router := srv.setupRoutes()

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
