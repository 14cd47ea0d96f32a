package echoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edustack/studyhub/core/chat"
	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/mentoring"
	"github.com/edustack/studyhub/core/session"
	"github.com/edustack/studyhub/services/identity/inmem"
	"github.com/edustack/studyhub/services/notifier/dummy"
	"github.com/edustack/studyhub/storage/inmem"
	"github.com/edustack/studyhub/tests"
)

type testApp struct {
	srv      Server
	db       *inmemdb.DB
	provider *identitysvc.Service
	mgr      *session.Manager
}

func setupServer(t *testing.T) *testApp {
	t.Helper()
	db := testutil.OpenDB(t)
	notif := dummynotify.NewService()
	logger := testutil.NewLogger()

	provider, _ := testutil.NewProvider(t)
	mgr := session.NewManager(provider, logger)
	t.Cleanup(mgr.Close)

	srv := NewServer(&Options{
		Address:        ":0",
		DisableReqLogs: true,
		Logger:         logger,
		SessionMgr:     mgr,
		Verifier:       provider,
		MaterialSvc:    material.NewService(inmemdb.NewMaterialRepository(db), notif, logger),
		MeetingSvc:     meeting.NewService(inmemdb.NewMeetingRepository(db), notif, logger),
		MentoringSvc:   mentoring.NewService(inmemdb.NewMentoringRepository(db), notif, logger),
		ChatSvc:        chat.NewService(inmemdb.NewChatRepository(db), notif, logger),
	})
	return &testApp{srv: srv, db: db, provider: provider, mgr: mgr}
}

func (app *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("request() failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.srv.ServeHTTP(rec, req)
	return rec
}

// signUp registers an account through the API and returns its access token.
func (app *testApp) signUp(t *testing.T, name, email, role string) string {
	t.Helper()
	rec := app.request(t, http.MethodPost, "/v1/auth/signup", "", map[string]string{
		"email": email, "password": "v3ryS3cret!", "name": name, "role": role,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signUp() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("signUp() failed: %v", err)
	}
	return resp.AccessToken
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decodeJSON() failed: %v\nbody: %s", err, rec.Body.String())
	}
}

func Test_home(t *testing.T) {
	app := setupServer(t)

	rec := app.request(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to StudyHub API!", rec.Body.String())
}

func Test_authApi(t *testing.T) {
	app := setupServer(t)

	t.Run("me before sign-in", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signup establishes the session", func(t *testing.T) {
		token := app.signUp(t, "Asha", "asha@test.cd", session.RoleStudent)
		assert.NotEmpty(t, token)

		rec := app.request(t, http.MethodGet, "/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var usr session.User
		decodeJSON(t, rec, &usr)
		assert.Equal(t, "Asha", usr.Name)
		assert.Equal(t, session.RoleStudent, usr.Role)
	})

	t.Run("signout then signin", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/auth/signout", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.request(t, http.MethodGet, "/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = app.request(t, http.MethodPost, "/v1/auth/signin", "", map[string]string{
			"email": "asha@test.cd", "password": "v3ryS3cret!",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/auth/signin", "", map[string]string{
			"email": "asha@test.cd", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func Test_materialApi(t *testing.T) {
	app := setupServer(t)

	t.Run("listing needs no auth", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/materials", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var mats []material.Material
		decodeJSON(t, rec, &mats)
		assert.Empty(t, mats)
	})

	t.Run("upload needs auth", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/materials", "", map[string]string{
			"title": "Notes", "file_name": "notes.pdf",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	token := app.signUp(t, "Asha", "asha@test.cd", session.RoleStudent)
	var created material.Material

	t.Run("upload", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/materials", token, map[string]interface{}{
			"title": "Algebra Notes", "file_name": "algebra.pdf", "course": "MATH101",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		decodeJSON(t, rec, &created)
		assert.Equal(t, "Asha", created.UploadedBy)
	})

	t.Run("listing shows the upload first", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/materials?course=math101", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var mats []material.Material
		decodeJSON(t, rec, &mats)
		if assert.Len(t, mats, 1) {
			assert.Equal(t, created.ID, mats[0].ID)
		}
	})

	t.Run("invalid upload", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/materials", token, map[string]string{"title": "No file"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := app.request(t, http.MethodPatch, fmt.Sprintf("/v1/materials/%s", created.ID), token, map[string]string{
			"title": "Better Notes",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("download", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, fmt.Sprintf("/v1/materials/%s/download", created.ID), token, nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("delete is strict", func(t *testing.T) {
		rec := app.request(t, http.MethodDelete, fmt.Sprintf("/v1/materials/%s", created.ID), token, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.request(t, http.MethodDelete, fmt.Sprintf("/v1/materials/%s", created.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_meetingApi(t *testing.T) {
	app := setupServer(t)
	token := app.signUp(t, "Dr. Smith", "smith@test.cd", session.RoleFaculty)

	var created meeting.Meeting

	t.Run("create", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/meetings", token, map[string]interface{}{
			"title":        "Calculus Review",
			"meeting_type": meeting.TypeLecture,
			"start_time":   "2026-09-15T10:00:00Z",
			"end_time":     "2026-09-15T11:00:00Z",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		decodeJSON(t, rec, &created)
		assert.Equal(t, meeting.StatusScheduled, created.Status)
		assert.Equal(t, "Dr. Smith", created.ScheduledBy)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/meetings", token, map[string]interface{}{
			"title":        "X",
			"meeting_type": "KEGGER",
			"start_time":   "2026-09-15T10:00:00Z",
			"end_time":     "2026-09-15T11:00:00Z",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("join and participants", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, fmt.Sprintf("/v1/meetings/%s/join", created.ID), token, nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		rec = app.request(t, http.MethodGet, fmt.Sprintf("/v1/meetings/%s/participants", created.ID), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var ps []meeting.Participant
		decodeJSON(t, rec, &ps)
		assert.Len(t, ps, 1)
	})

	t.Run("cancel", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, fmt.Sprintf("/v1/meetings/%s/cancel", created.ID), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var mtg meeting.Meeting
		decodeJSON(t, rec, &mtg)
		assert.Equal(t, meeting.StatusCancelled, mtg.Status)
	})

	t.Run("cancel absent meeting", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/meetings/nope/cancel", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_mentoringApi(t *testing.T) {
	app := setupServer(t)
	if err := inmemdb.Seed(app.db); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	token := app.signUp(t, "Asha", "asha@test.cd", session.RoleStudent)

	t.Run("mentors are browsable anonymously", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/mentoring/mentors?specialization=data+science", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var mentors []mentoring.Mentor
		decodeJSON(t, rec, &mentors)
		if assert.Len(t, mentors, 1) {
			assert.Equal(t, "Data Science & ML", mentors[0].Specialization)
		}
	})

	t.Run("booking needs auth", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/mentoring/sessions", "", map[string]string{
			"mentor_id": "alum1", "topic": "Career advice", "scheduled_time": "2026-09-15 10:00",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("book", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/mentoring/sessions", token, map[string]string{
			"mentor_id": "alum1", "topic": "Career advice", "scheduled_time": "2026-09-15 10:00",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		var s mentoring.MentorSession
		decodeJSON(t, rec, &s)
		assert.Equal(t, "alum1", s.MentorID)
		assert.NotEmpty(t, s.MentorName)
	})

	t.Run("unknown mentor", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/mentoring/sessions", token, map[string]string{
			"mentor_id": "nope", "topic": "Career advice", "scheduled_time": "2026-09-15 10:00",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("own sessions", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/mentoring/sessions", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var sessions []mentoring.MentorSession
		decodeJSON(t, rec, &sessions)
		assert.Len(t, sessions, 1)
	})
}

func Test_chatApi(t *testing.T) {
	app := setupServer(t)
	if err := inmemdb.Seed(app.db); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	t.Run("transcript opens with the greeting", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/chat/messages", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		var msgs []chat.Message
		decodeJSON(t, rec, &msgs)
		if assert.Len(t, msgs, 1) {
			assert.Equal(t, chat.SenderAssistant, msgs[0].Sender)
		}
	})

	t.Run("send", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/chat/messages", "", map[string]string{"text": "what is react"})
		assert.Equal(t, http.StatusCreated, rec.Code)
		var reply chat.Message
		decodeJSON(t, rec, &reply)
		assert.Equal(t, chat.SenderAssistant, reply.Sender)
		assert.Contains(t, reply.Text, "React")
	})

	t.Run("empty message", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/chat/messages", "", map[string]string{"text": "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("clear resets to the greeting", func(t *testing.T) {
		rec := app.request(t, http.MethodDelete, "/v1/chat/messages", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.request(t, http.MethodGet, "/v1/chat/messages", "", nil)
		var msgs []chat.Message
		decodeJSON(t, rec, &msgs)
		assert.Len(t, msgs, 1)
	})
}

func Test_requireAuth_rejectsStaleToken(t *testing.T) {
	app := setupServer(t)
	token := app.signUp(t, "Asha", "asha@test.cd", session.RoleStudent)

	// the provider revoked the session; the old token must stop working
	app.provider.ExpireSession()

	rec := app.request(t, http.MethodPost, "/v1/materials", token, map[string]string{
		"title": "Notes", "file_name": "notes.pdf",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
