package resume_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/resume"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gateFixture struct {
	rrm    *resume.ResumeRoutesManager
	dbMock sqlmock.Sqlmock
	rdMock redismock.ClientMock
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	sqldb, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	rdb, rdMock := redismock.NewClientMock()

	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	cfg := &structs.Config{}
	db := database.NewWithDB(sqldb)
	cache := services.NewCacheServiceWithClient(logger, cfg, rdb)
	authService := services.NewAuthService(cfg, logger, db, cache, nil)

	return &gateFixture{
		rrm:    resume.NewResumeRoutesManager(logger, authService, nil, nil, cfg, nil),
		dbMock: dbMock,
		rdMock: rdMock,
	}
}

func requestWithClaims(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	claims := &structs.AuthClaims{
		Sub:  userID,
		Role: "user",
		Iat:  time.Now(),
		Exp:  time.Now().Add(15 * time.Minute),
		Jti:  uuid.New(),
	}
	ctx := context.WithValue(req.Context(), middleware.ClaimsContextKey, claims)
	return req.WithContext(ctx)
}

func userRowsWithActive(userID uuid.UUID, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "role", "is_active", "last_login", "created_at"}).
		AddRow(userID.String(), "bethuel", "bethuel@thipe.dev", "x", "Bethuel", "Thipe", "user", active, time.Now(), time.Now().Add(-24*time.Hour))
}

func TestDownloadRequiresSession(t *testing.T) {
	f := newGateFixture(t)

	rec := httptest.NewRecorder()
	f.rrm.HandleDownload(rec, httptest.NewRequest(http.MethodGet, "/resume", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDownloadDeniedForInactiveAccount(t *testing.T) {
	f := newGateFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRowsWithActive(userID, false))

	rec := httptest.NewRecorder()
	f.rrm.HandleDownload(rec, requestWithClaims(userID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestDownloadDeniedForUnverifiedEmail(t *testing.T) {
	f := newGateFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRowsWithActive(userID, true))
	// The account is active but its verification row never flipped, which
	// still denies access
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "verified", "created_at"}).
			AddRow(uuid.New().String(), userID.String(), uuid.New().String(), false, time.Now()))

	rec := httptest.NewRecorder()
	f.rrm.HandleDownload(rec, requestWithClaims(userID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestDownloadDeniedWithoutVerificationRow(t *testing.T) {
	f := newGateFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRowsWithActive(userID, true))
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "verified", "created_at"}))

	rec := httptest.NewRecorder()
	f.rrm.HandleDownload(rec, requestWithClaims(userID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}
