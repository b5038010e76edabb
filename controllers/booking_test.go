package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vrzone-backend/controllers"
	"vrzone-backend/models"
	"vrzone-backend/routes"
	"vrzone-backend/services"
)

type noopSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *noopSender) Send(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, text)
	return nil
}

var testDBSeq atomic.Int64

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Booking{}))

	dispatcher := services.NewDispatcher(&noopSender{}, zerolog.Nop())
	t.Cleanup(dispatcher.Stop)

	bc := &controllers.BookingController{
		Service: services.NewBookingService(db, dispatcher, zerolog.Nop()),
	}
	return routes.SetupRouter(bc, zerolog.Nop()), db
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, url.Values{
		"name":     {"Ivan Petrov"},
		"phone":    {"+7 (900) 123-45-67"},
		"date":     {"2025-05-01"},
		"time":     {"18:00"},
		"duration": {"60 min"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Booking created")

	var bookingCount int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookingCount).Error)
	assert.EqualValues(t, 1, bookingCount)
}

func TestCreateBookingGameSelection(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, url.Values{
		"name":  {"Ivan Petrov"},
		"phone": {"+7 (900) 123-45-67"},
		"date":  {"2025-05-01"},
		"time":  {"18:00"},
		"game":  {"Beat Saber"},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, "Beat Saber", booking.Duration)
}

func TestCreateBookingInvalidPhone(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, url.Values{
		"name":  {"Ivan Petrov"},
		"phone": {"12345"},
		"date":  {"2025-05-01"},
		"time":  {"18:00"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid phone number")

	var bookingCount int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookingCount).Error)
	assert.Zero(t, bookingCount)
}

func TestCreateBookingMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, url.Values{"name": {"Ivan Petrov"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fill in all fields")
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
