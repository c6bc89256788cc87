package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/queue"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingWriter struct {
	messages []kafka.Message
}

func (c *capturingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.messages = append(c.messages, msgs...)
	return nil
}

func (c *capturingWriter) Close() error { return nil }

type authFixture struct {
	svc    *services.AuthService
	dbMock sqlmock.Sqlmock
	rdMock redismock.ClientMock
	mail   *capturingWriter
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	sqldb, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	rdb, rdMock := redismock.NewClientMock()

	cfg := &structs.Config{
		Auth: &structs.AuthConfig{
			AccessTokenSecret:  "access-secret",
			RefreshTokenSecret: "refresh-secret",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
			PendingLoginTTL:    10 * time.Minute,
			BlacklistCacheTTL:  time.Hour,
			CacheUserTTL:       time.Minute,
		},
		Email: &structs.EmailConfig{},
	}

	logger := testLogger()
	db := database.NewWithDB(sqldb)
	cache := services.NewCacheServiceWithClient(logger, cfg, rdb)
	mail := &capturingWriter{}
	emailService := services.NewEmailService(logger, cfg, queue.NewProducerWithWriter(mail, logger))

	return &authFixture{
		svc:    services.NewAuthService(cfg, logger, db, cache, emailService),
		dbMock: dbMock,
		rdMock: rdMock,
		mail:   mail,
	}
}

var loginCodeColumns = []string{"id", "user_id", "code", "used", "created_at"}

func verificationRows(verID, userID, token uuid.UUID, verified bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "token", "verified", "created_at"}).
		AddRow(verID.String(), userID.String(), token.String(), verified, time.Now().Add(-time.Minute))
}

func activeUserRows(userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "first_name", "last_name", "role", "is_active", "last_login", "created_at"}).
		AddRow(userID.String(), "bethuel", "bethuel@thipe.dev", "x", "Bethuel", "Thipe", "user", true, time.Now(), time.Now().Add(-24*time.Hour))
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "verified", "created_at"}))

	already, err := f.svc.VerifyEmail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, lib.ErrInvalidToken)
	assert.False(t, already)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestVerifyEmailSecondCallIsNoOp(t *testing.T) {
	f := newAuthFixture(t)

	verID := uuid.New()
	userID := uuid.New()
	token := uuid.New()

	// First call flips the flag, activates the account and greets the user
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(verificationRows(verID, userID, token, false))
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectExec(`UPDATE "email_verifications"`).WillReturnResult(sqlmock.NewResult(0, 1))
	f.dbMock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	f.dbMock.ExpectCommit()
	f.rdMock.ExpectDel("user:" + userID.String()).SetVal(1)
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(activeUserRows(userID))

	already, err := f.svc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, already)

	// Second call with the same token reports already verified and runs no
	// updates; the only expectation registered here is the lookup
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(verificationRows(verID, userID, token, true))

	already, err = f.svc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, already)

	require.Len(t, f.mail.messages, 1)
	var job queue.MailJob
	require.NoError(t, json.Unmarshal(f.mail.messages[0].Value, &job))
	assert.Equal(t, queue.JobWelcomeEmail, job.Kind)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestResendVerificationTokenRowMissing(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectExists("resend_cooldown:bethuel@thipe.dev").SetVal(0)
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(activeUserRows(userID))
	f.dbMock.ExpectQuery(`INSERT INTO "email_verifications"`).
		WillReturnRows(verificationRows(uuid.New(), userID, uuid.New(), false))
	// The row vanished between the upsert and the follow-up select; no mail
	// goes out and the caller is told nothing was found
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "email_verifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "verified", "created_at"}))

	err := f.svc.ResendVerification(context.Background(), "bethuel@thipe.dev")
	assert.ErrorIs(t, err, lib.ErrNotFound)

	require.Empty(t, f.mail.messages)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeWithoutMarker(t *testing.T) {
	f := newAuthFixture(t)

	f.rdMock.ExpectGet("pending_login:gone").RedisNil()

	_, err := f.svc.ConfirmLoginCode(context.Background(), "gone", "482913")
	assert.ErrorIs(t, err, lib.ErrNoPendingLogin)

	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeUsedCodeRejected(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("pending_login:abc").SetVal(userID.String())
	// Consumed codes are filtered out of the lookup, so a resubmission of a
	// used code comes back empty
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "login_codes"`).
		WillReturnRows(sqlmock.NewRows(loginCodeColumns))

	_, err := f.svc.ConfirmLoginCode(context.Background(), "abc", "482913")
	assert.ErrorIs(t, err, lib.ErrCodeInvalid)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeExpired(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("pending_login:abc").SetVal(userID.String())
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "login_codes"`).
		WillReturnRows(sqlmock.NewRows(loginCodeColumns).
			AddRow(uuid.New().String(), userID.String(), "482913", false, time.Now().Add(-tables.LoginCodeWindow)))

	_, err := f.svc.ConfirmLoginCode(context.Background(), "abc", "482913")
	assert.ErrorIs(t, err, lib.ErrCodeInvalid)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeLostConsumptionRace(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	f.rdMock.ExpectGet("pending_login:abc").SetVal(userID.String())
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "login_codes"`).
		WillReturnRows(sqlmock.NewRows(loginCodeColumns).
			AddRow(uuid.New().String(), userID.String(), "482913", false, time.Now().Add(-time.Minute)))
	// Another confirmation won the guarded update in between
	f.dbMock.ExpectExec(`UPDATE "login_codes"`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := f.svc.ConfirmLoginCode(context.Background(), "abc", "482913")
	assert.ErrorIs(t, err, lib.ErrCodeInvalid)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeSuccessConsumesCode(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	pendingID := uuid.New().String()
	pendingKey := "pending_login:" + pendingID

	f.rdMock.ExpectGet(pendingKey).SetVal(userID.String())
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "login_codes"`).
		WillReturnRows(sqlmock.NewRows(loginCodeColumns).
			AddRow(uuid.New().String(), userID.String(), "482913", false, time.Now().Add(-time.Minute)))
	f.dbMock.ExpectExec(`UPDATE "login_codes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	f.rdMock.ExpectDel(pendingKey).SetVal(1)
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnRows(activeUserRows(userID))
	f.dbMock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := f.svc.ConfirmLoginCode(context.Background(), pendingID, "482913")
	require.NoError(t, err)

	require.NotNil(t, resp.User)
	assert.Equal(t, userID, resp.User.Id)
	assert.Empty(t, resp.User.PasswordHash)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}

func TestConfirmLoginCodeAccountVanishedRestartsLogin(t *testing.T) {
	f := newAuthFixture(t)

	userID := uuid.New()
	pendingKey := "pending_login:abc"

	f.rdMock.ExpectGet(pendingKey).SetVal(userID.String())
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "login_codes"`).
		WillReturnRows(sqlmock.NewRows(loginCodeColumns).
			AddRow(uuid.New().String(), userID.String(), "482913", false, time.Now().Add(-time.Minute)))
	f.dbMock.ExpectExec(`UPDATE "login_codes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	f.rdMock.ExpectDel(pendingKey).SetVal(1)
	f.rdMock.ExpectGet("user:" + userID.String()).RedisNil()
	f.dbMock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))

	_, err := f.svc.ConfirmLoginCode(context.Background(), "abc", "482913")
	assert.ErrorIs(t, err, lib.ErrNoPendingLogin)

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
	assert.NoError(t, f.rdMock.ExpectationsWereMet())
}
