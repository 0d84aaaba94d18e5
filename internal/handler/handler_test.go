package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/ewhettey/church-attendance/internal/domain"
	"github.com/ewhettey/church-attendance/internal/eventtime"
	"github.com/ewhettey/church-attendance/internal/handler/dto"
	hmocks "github.com/ewhettey/church-attendance/internal/handler/mocks"
)

var fixedNow = time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)

type services struct {
	events     *hmocks.MockEventSvc
	attendance *hmocks.MockAttendanceSvc
	users      *hmocks.MockUserSvc
	sync       *hmocks.MockSyncSvc
}

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	svcs := services{
		events:     hmocks.NewMockEventSvc(t),
		attendance: hmocks.NewMockAttendanceSvc(t),
		users:      hmocks.NewMockUserSvc(t),
		sync:       hmocks.NewMockSyncSvc(t),
	}

	h := NewHandler(svcs.events, svcs.attendance, svcs.users, svcs.sync)
	h.now = func() time.Time { return fixedNow }

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/attendance", h.CheckIn)
		api.GET("/people/:phone", h.LookupPerson)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/offline/attendance", h.EnqueueOffline)
		api.GET("/offline/status", h.OfflineStatus)
		api.POST("/offline/sync", h.SyncOffline)
		api.GET("/calendar.ics", h.CalendarFeed)
	}

	return svcs, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent(t *testing.T) *domain.Event {
	spec, err := eventtime.ParseSpec("2024-03-15", nil, strp("09:00"), strp("11:00"))
	require.NoError(t, err)
	return &domain.Event{
		ID:        uuid.New().String(),
		Name:      "Sunday Service",
		Schedule:  spec,
		Church:    "Grace Chapel",
		EventType: domain.DefaultEventType,
		IsActive:  true,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func strp(s string) *string { return &s }

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	svcs, r := setupRouter(t)
	event := sampleEvent(t)
	actor := uuid.New().String()

	svcs.events.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.EventInput) bool {
		return in.Name == "Sunday Service" && in.ActorID == actor && in.EndDate == nil && *in.StartTime == "09:00"
	})).Return(event, nil)

	w := doJSON(r, http.MethodPost, "/api/events", dto.EventRequest{
		Name:      "Sunday Service",
		EventDate: "2024-03-15",
		EndDate:   strp(""),
		StartTime: strp("09:00"),
		EndTime:   strp("11:00"),
		Church:    "Grace Chapel",
		ActorID:   actor,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sunday Service", resp.Name)
	assert.Equal(t, "2024-03-15", resp.EventDate)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "09:00:00", *resp.StartTime)
	assert.Nil(t, resp.EndDate)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_Forbidden(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(nil, domain.ErrNotAllowed)

	w := doJSON(r, http.MethodPost, "/api/events", dto.EventRequest{
		Name: "X", EventDate: "2024-03-15", Church: "Y", ActorID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_InvalidSchedule(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrValidation, eventtime.ErrInvalidSpec))

	w := doJSON(r, http.MethodPost, "/api/events", dto.EventRequest{
		Name: "X", EventDate: "15/03/2024", Church: "Y", ActorID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	svcs, r := setupRouter(t)
	event := sampleEvent(t)

	svcs.events.EXPECT().UpdateEvent(mock.Anything, event.ID, mock.Anything).Return(event, nil)

	w := doJSON(r, http.MethodPut, "/api/events/"+event.ID, dto.EventRequest{
		Name: "Sunday Service", EventDate: "2024-03-15", Church: "Grace Chapel", ActorID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateEvent_NotFound(t *testing.T) {
	svcs, r := setupRouter(t)
	id := uuid.New().String()

	svcs.events.EXPECT().UpdateEvent(mock.Anything, id, mock.Anything).Return(nil, domain.ErrEventNotFound)

	w := doJSON(r, http.MethodPut, "/api/events/"+id, dto.EventRequest{
		Name: "X", EventDate: "2024-03-15", Church: "Y", ActorID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	svcs, r := setupRouter(t)
	event := sampleEvent(t)
	howHeard := "Friend"

	details := &domain.EventDetails{
		View: domain.EventView{
			Event:      *event,
			Status:     eventtime.StatusUpcoming,
			Badge:      eventtime.Badge{Label: "Starts soon", Style: "blue"},
			Window:     eventtime.Window{Start: fixedNow.Add(-time.Hour), End: fixedNow.Add(3 * time.Hour)},
			CanCheckIn: true,
		},
		Attendance: []domain.Attendance{
			{ID: "a1", EventID: event.ID, Name: "Kofi", Category: domain.CategoryVisitor, HowHeard: &howHeard},
		},
		Visitors: 1,
	}
	svcs.events.EXPECT().GetDetails(mock.Anything, event.ID, fixedNow).Return(details, nil)

	w := doJSON(r, http.MethodGet, "/api/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "upcoming", resp.Status)
	assert.Equal(t, "Starts soon", resp.Badge.Label)
	assert.True(t, resp.CanCheckIn)
	assert.Equal(t, 1, resp.Visitors)
	require.Len(t, resp.Attendance, 1)
	assert.Equal(t, "Friend", *resp.Attendance[0].HowHeard)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_PassesFilter(t *testing.T) {
	svcs, r := setupRouter(t)
	event := sampleEvent(t)

	svcs.events.EXPECT().List(mock.Anything, domain.EventFilter{Tab: domain.TabOngoing, Query: "grace"}, fixedNow).
		Return([]domain.EventView{{Event: *event, Status: eventtime.StatusOngoing}}, nil)

	w := doJSON(r, http.MethodGet, "/api/events?tab=ongoing&q=grace", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "ongoing", resp[0].Status)
	assert.Equal(t, event.ID, resp[0].Event.ID)
}

func TestHandler_ListEvents_UnknownTab(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := doJSON(r, http.MethodGet, "/api/events?tab=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CalendarFeed(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.events.EXPECT().Feed(mock.Anything, fixedNow).Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	w := doJSON(r, http.MethodGet, "/api/calendar.ics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

// --- Attendance ---

func checkInBody(markedBy string) dto.CheckInRequest {
	return dto.CheckInRequest{
		Phone:    "0241234567",
		Name:     "Ama Mensah",
		Church:   "Grace Chapel",
		Category: "Member",
		MarkedBy: markedBy,
	}
}

func TestHandler_CheckIn_Recorded(t *testing.T) {
	svcs, r := setupRouter(t)
	eventID := uuid.New().String()
	usher := uuid.New().String()

	svcs.attendance.EXPECT().CheckIn(mock.Anything, mock.MatchedBy(func(in domain.CheckInInput) bool {
		return in.EventID == eventID && in.MarkedBy == usher && in.Category == domain.CategoryMember && in.CapturedAt.IsZero()
	}), fixedNow).Return(domain.CheckInResult{
		Attendance: &domain.Attendance{ID: "a1", EventID: eventID, Category: domain.CategoryMember, CapturedAt: fixedNow},
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/events/"+eventID+"/attendance", checkInBody(usher))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "recorded", resp.Status)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, "a1", resp.Attendance.ID)
}

func TestHandler_CheckIn_Queued(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.attendance.EXPECT().CheckIn(mock.Anything, mock.Anything, fixedNow).
		Return(domain.CheckInResult{Queued: true}, nil)

	w := doJSON(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/attendance", checkInBody(uuid.New().String()))

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, "Stored offline, will sync when online", resp.Message)
	assert.Nil(t, resp.Attendance)
}

func TestHandler_CheckIn_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate", domain.ErrAlreadyCheckedIn, http.StatusConflict},
		{"window closed", domain.ErrOutsideWindow, http.StatusConflict},
		{"inactive", domain.ErrEventInactive, http.StatusConflict},
		{"unknown event", domain.ErrEventNotFound, http.StatusNotFound},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, r := setupRouter(t)
			svcs.attendance.EXPECT().CheckIn(mock.Anything, mock.Anything, mock.Anything).
				Return(domain.CheckInResult{}, tt.err)

			w := doJSON(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/attendance", checkInBody(uuid.New().String()))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_CheckIn_InvalidMarker(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events/"+uuid.New().String()+"/attendance", checkInBody("usher-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_LookupPerson(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.attendance.EXPECT().Lookup(mock.Anything, "0241234567").
		Return(&domain.Person{Phone: "0241234567", Name: "Ama", Category: domain.CategoryMember}, nil)

	w := doJSON(r, http.MethodGet, "/api/people/0241234567", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PersonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Member", resp.Category)
}

func TestHandler_LookupPerson_NotFound(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.attendance.EXPECT().Lookup(mock.Anything, "0200000000").Return(nil, domain.ErrPersonNotFound)

	w := doJSON(r, http.MethodGet, "/api/people/0200000000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Offline ---

func TestHandler_EnqueueOffline(t *testing.T) {
	svcs, r := setupRouter(t)
	eventID := uuid.New().String()
	captured := time.Date(2024, 3, 15, 9, 15, 0, 0, time.UTC)

	svcs.sync.EXPECT().Enqueue(mock.Anything, mock.MatchedBy(func(in []domain.CheckInInput) bool {
		return len(in) == 1 && in[0].EventID == eventID && in[0].Offline && in[0].CapturedAt.Equal(captured)
	}), fixedNow).Return(1, nil)

	w := doJSON(r, http.MethodPost, "/api/offline/attendance", dto.OfflineBatchRequest{
		Records: []dto.OfflineCheckInRequest{{
			EventID:    eventID,
			Phone:      "0241234567",
			Name:       "Ama",
			Church:     "Grace Chapel",
			Category:   "Member",
			MarkedBy:   uuid.New().String(),
			CapturedAt: captured,
		}},
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.EnqueueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Queued)
}

func TestHandler_EnqueueOffline_EmptyBatch(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/offline/attendance", `{"records":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OfflineStatus(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.sync.EXPECT().Pending(mock.Anything).Return(int64(3), nil)

	w := doJSON(r, http.MethodGet, "/api/offline/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pending":3}`, w.Body.String())
}

func TestHandler_SyncOffline(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.sync.EXPECT().Sync(mock.Anything).Return(domain.SyncResult{Synced: 2, Failed: 1}, nil)

	w := doJSON(r, http.MethodPost, "/api/offline/sync", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"synced":2,"failed":1,"rejected":0}`, w.Body.String())
}

func TestHandler_SyncOffline_Error(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.sync.EXPECT().Sync(mock.Anything).Return(domain.SyncResult{}, errors.New("redis down"))

	w := doJSON(r, http.MethodPost, "/api/offline/sync", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Username: "kwame", Role: domain.RolePastor}).
		Return(&domain.User{ID: uuid.New().String(), Username: "kwame", Role: domain.RolePastor, CreatedAt: fixedNow}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "kwame", Role: "Pastor"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pastor", resp.Role)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "taken"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	svcs, r := setupRouter(t)

	svcs.users.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
