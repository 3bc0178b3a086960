package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
	overtimeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/overtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxUploadBytes = 1 << 20

func newTestRouter() http.Handler {
	svc := overtimeService.NewOvertimeService(overtimeService.NewCalculator(), 100)
	handler := NewOvertimeHandler(svc, testMaxUploadBytes)
	return NewRouter(RouterOptions{AllowedOrigins: []string{"*"}}, handler)
}

type reportEnvelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    overtime.ReportResponse `json:"data"`
	Error   *response.ErrorDetail   `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) reportEnvelope {
	t.Helper()
	var env reportEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/overtime/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestOvertimeHandler_Calculate(t *testing.T) {
	router := newTestRouter()

	payload := `{"records":[
		{"date":"2024/05/01","holiday_label":"","clock_in":"09:00","clock_out":"18:00"},
		{"date":"2024/05/03","holiday_label":"公休","clock_in":"09:00","clock_out":"14:00"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/overtime/calculate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "2024年05月", env.Data.YearMonth)
	assert.Equal(t, int64(30), env.Data.Weekday.Minutes)
	assert.Equal(t, int64(300), env.Data.Holiday.Minutes)
	assert.Equal(t, "5時間 30分", env.Data.Total.Text)
}

func TestOvertimeHandler_Calculate_Invalid(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"records":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"bad clock time", `{"records":[{"clock_in":"9 am","clock_out":"18:00"}]}`, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"bad date", `{"records":[{"date":"2024-05-01","clock_in":"09:00","clock_out":"18:00"}]}`, http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/overtime/calculate", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}
}

func TestOvertimeHandler_Upload_CSV(t *testing.T) {
	router := newTestRouter()

	csv := "\ufeff日付,休日区分,出勤時刻,退勤時刻\n" +
		"2024/05/01,,09:00,19:00\n" +
		"2024/05/03,法休,09:00,18:00\n" +
		"2024/05/04,公休,,\n"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "2024-05.csv", []byte(csv)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Timesheet processed", env.Message)
	assert.Equal(t, "2024-05.csv", env.Data.Source)
	assert.Equal(t, 3, env.Data.RecordCount)
	assert.Equal(t, 2, env.Data.CountedDays)
	assert.Equal(t, int64(90), env.Data.Weekday.Minutes)
	assert.Equal(t, int64(480), env.Data.Holiday.Minutes)
	assert.Equal(t, "9時間 30分", env.Data.Total.Text)
}

func TestOvertimeHandler_Upload_Invalid(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name     string
		filename string
		content  string
		status   int
	}{
		{"unsupported extension", "timesheet.txt", "日付\n", http.StatusUnprocessableEntity},
		{"missing column", "timesheet.csv", "日付,休日区分,出勤時刻\n2024/05/01,,09:00\n", http.StatusBadRequest},
		{"empty file", "timesheet.csv", "", http.StatusBadRequest},
		{"bad clock cell", "timesheet.csv", "日付,休日区分,出勤時刻,退勤時刻\n2024/05/01,,09:00,6pm\n", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, uploadRequest(t, tc.filename, []byte(tc.content)))
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestOvertimeHandler_Upload_MissingFile(t *testing.T) {
	router := newTestRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "no file"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/overtime/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
