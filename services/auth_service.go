package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// CredentialValidator checks a plain-text password against a stored hash.
// Swappable so alternative hash schemes can be introduced without touching
// the login flow.
type CredentialValidator interface {
	Validate(password, passwordHash string) (bool, error)
}

// Argon2Validator is the default validator for argon2id hashes
type Argon2Validator struct{}

func (Argon2Validator) Validate(password, passwordHash string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(passwordHash)
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(hash, parts.Hash), nil
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
	emailService *EmailService
	validator    CredentialValidator
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService, emailService *EmailService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
		emailService: emailService,
		validator:    Argon2Validator{},
	}
}

// SetCredentialValidator swaps the password validation strategy
func (as *AuthService) SetCredentialValidator(v CredentialValidator) {
	as.validator = v
}

// Register creates an inactive account and its verification token in one
// transaction, then emails the verification link. Mail delivery is
// best-effort; a failed send never rolls back the account.
func (as *AuthService) Register(ctx context.Context, registerRequest *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()

	policyCtx := lib.PasswordContext{
		Username:  registerRequest.Username,
		Email:     registerRequest.Email,
		FirstName: registerRequest.FirstName,
		LastName:  registerRequest.LastName,
	}
	if err := lib.ValidatePassword(registerRequest.Password, policyCtx); err != nil {
		as.logger.Debug("Registration rejected by password policy", gecho.Field("username", registerRequest.Username))
		return nil, err
	}

	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		Username:     registerRequest.Username,
		Email:        registerRequest.Email,
		PasswordHash: passwordHash,
		FirstName:    registerRequest.FirstName,
		LastName:     registerRequest.LastName,
		CellNumber:   registerRequest.CellNumber,
		Address:      registerRequest.Address,
		Role:         "user",
		IsActive:     false,
	}
	verification := &tables.EmailVerification{}

	err = database.Transaction(ctx, as.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(user).Returning("*").Exec(ctx); err != nil {
			return err
		}

		verification.UserId = user.Id
		verification.Token = uuid.New()
		if _, err := tx.NewInsert().Model(verification).Returning("*").Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate user",
				gecho.Field("username", registerRequest.Username),
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("username", registerRequest.Username),
			)
		}

		return nil, mappedErr
	}

	as.emailService.SendVerificationEmail(ctx, user, verification)

	elapsedTime := time.Since(startTime)
	as.logger.Info("User registered", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	return user, nil
}

// VerifyEmail marks the account behind the token as verified and activates
// it. Verifying an already-verified token is a no-op reported through
// alreadyVerified; nothing is mutated on that path.
func (as *AuthService) VerifyEmail(ctx context.Context, token uuid.UUID) (alreadyVerified bool, err error) {
	verification, err := database.Query[tables.EmailVerification](as.db).
		Where("token", token).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up verification token", gecho.Field("error", err))
		return false, lib.MapPgError(err)
	}
	if verification == nil {
		as.logger.Warn("Unknown email verification token")
		return false, lib.ErrInvalidToken
	}

	if verification.Verified {
		as.logger.Debug("Verification token already consumed", gecho.Field("user_id", verification.UserId))
		return true, nil
	}

	err = database.Transaction(ctx, as.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.EmailVerification)(nil)).
			Set("verified = ?", true).
			Where("id = ?", verification.Id).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewUpdate().Model((*tables.User)(nil)).
			Set("is_active = ?", true).
			Where("id = ?", verification.UserId).
			Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		as.logger.Error("Failed to mark email verified",
			gecho.Field("error", err),
			gecho.Field("user_id", verification.UserId),
		)
		return false, lib.MapPgError(err)
	}

	if cacheErr := as.cacheService.InvalidateUserCache(verification.UserId); cacheErr != nil {
		as.logger.Warn("Failed to invalidate user cache after verification", gecho.Field("error", cacheErr), gecho.Field("user_id", verification.UserId))
	}

	if user, userErr := as.GetUserByID(ctx, verification.UserId); userErr == nil && user != nil {
		as.emailService.SendWelcomeEmail(ctx, user)
	}

	as.logger.Info("Email verified", gecho.Field("user_id", verification.UserId))
	return false, nil
}

// ResendVerification issues (or re-issues) the verification email for an
// address. The token is fetched get-or-create so repeated calls share one
// token. Unknown addresses return ErrNotFound.
func (as *AuthService) ResendVerification(ctx context.Context, email string) error {
	onCooldown, err := as.cacheService.IsResendOnCooldown(email)
	if err != nil {
		as.logger.Warn("Failed to check resend cooldown", gecho.Field("error", err))
	} else if onCooldown {
		as.logger.Debug("Resend verification throttled", gecho.Field("email", email))
		return lib.ErrTooManyRequests
	}

	user, err := database.Query[tables.User](as.db).Where("email", email).First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up user for resend", gecho.Field("error", err))
		return lib.MapPgError(err)
	}
	if user == nil {
		return lib.ErrNotFound
	}

	// Atomic get-or-create: the insert silently loses to an existing row,
	// the follow-up select reads whichever row won
	seed := &tables.EmailVerification{
		UserId: user.Id,
		Token:  uuid.New(),
	}
	if _, err := database.Query[tables.EmailVerification](as.db).
		OnConflictDoNothing("user_id").
		Insert(ctx, seed); err != nil {
		as.logger.Error("Failed to upsert verification token", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return lib.MapPgError(err)
	}

	verification, err := database.Query[tables.EmailVerification](as.db).
		Where("user_id", user.Id).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to load verification token after upsert", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return lib.MapPgError(err)
	}
	if verification == nil {
		as.logger.Error("Verification token missing after upsert", gecho.Field("user_id", user.Id))
		return lib.ErrNotFound
	}

	if verification.Verified {
		return lib.ErrAlreadyVerified
	}

	as.emailService.SendVerificationEmail(ctx, user, verification)

	if err := as.cacheService.SetResendCooldown(email); err != nil {
		as.logger.Warn("Failed to set resend cooldown", gecho.Field("error", err))
	}

	return nil
}

// Login is the password phase of the two-step login. On success it stores a
// pending-login marker, emails a one-time code and returns the marker id.
// No session is issued here.
func (as *AuthService) Login(ctx context.Context, authRequest *structs.AuthRequest) (string, error) {
	startTime := time.Now()

	user, err := database.Query[tables.User](as.db).Where("username", authRequest.Username).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		as.logger.Debug("Database query during login",
			gecho.Field("identifier", authRequest.Username),
			gecho.Field("error_detail", lib.GetDetailForLogging(mappedErr)),
		)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("original_error", err),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return "", lib.ErrInvalidCredentials
	}

	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Username))
		return "", lib.ErrInvalidCredentials
	}

	valid, err := as.validator.Validate(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return "", err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Username),
			gecho.Field("user_id", user.Id),
		)
		return "", lib.ErrInvalidCredentials
	}

	if !user.IsActive {
		as.logger.Debug("Login attempt on inactive account", gecho.Field("user_id", user.Id))
		return "", lib.ErrAccountInactive
	}

	verified, err := as.IsEmailVerified(ctx, user.Id)
	if err != nil {
		return "", err
	}
	if !verified {
		as.logger.Debug("Login attempt with unverified email", gecho.Field("user_id", user.Id))
		return "", lib.ErrEmailUnverified
	}

	code, err := lib.GenerateLoginCode()
	if err != nil {
		as.logger.Error("Failed to generate login code", gecho.Field("error", err))
		return "", err
	}

	loginCode := &tables.LoginCode{
		UserId:    user.Id,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if _, err := database.Query[tables.LoginCode](as.db).Insert(ctx, loginCode); err != nil {
		as.logger.Error("Failed to store login code", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return "", lib.MapPgError(err)
	}

	pendingID := uuid.New().String()
	if err := as.cacheService.SetPendingLogin(pendingID, user.Id); err != nil {
		as.logger.Error("Failed to store pending login", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return "", err
	}

	as.emailService.SendLoginCodeEmail(ctx, user, code)

	elapsedTime := time.Since(startTime)
	as.logger.Debug("Password phase passed, code emailed", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	return pendingID, nil
}

// ConfirmLoginCode is the code phase of the two-step login. A code is
// accepted once, only while its pending-login marker lives and only inside
// its validity window.
func (as *AuthService) ConfirmLoginCode(ctx context.Context, pendingID, code string) (*tables.AuthResponse, error) {
	userID, err := as.cacheService.GetPendingLogin(pendingID)
	if err != nil {
		as.logger.Error("Failed to resolve pending login", gecho.Field("error", err))
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, lib.ErrNoPendingLogin
	}

	loginCode, err := database.Query[tables.LoginCode](as.db).
		Where("user_id", userID).
		Where("code", code).
		Where("used", false).
		OrderBy("created_at", database.DESC).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up login code", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	if loginCode == nil {
		as.logger.Debug("Login code mismatch", gecho.Field("user_id", userID))
		return nil, lib.ErrCodeInvalid
	}

	if loginCode.ExpiredAt(time.Now()) {
		as.logger.Debug("Login code expired", gecho.Field("user_id", userID))
		return nil, lib.ErrCodeInvalid
	}

	// The used guard makes consumption single-winner under concurrency
	affected, err := database.Query[tables.LoginCode](as.db).
		Where("id", loginCode.Id).
		Where("used", false).
		Update(ctx, map[string]any{"used": true})
	if err != nil {
		as.logger.Error("Failed to consume login code", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrCodeInvalid
	}

	if err := as.cacheService.DeletePendingLogin(pendingID); err != nil {
		as.logger.Warn("Failed to delete pending login marker", gecho.Field("error", err))
	}

	user, err := as.GetUserByID(ctx, userID)
	if err != nil {
		// The code is already consumed at this point, so the client has to
		// restart the login rather than retry the confirmation
		as.logger.Warn("Account lookup failed after code consumption", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.ErrNoPendingLogin
	}

	if err := as.UpdateLastLogin(ctx, userID); err != nil {
		as.logger.Warn("Failed to update last login", gecho.Field("error", err), gecho.Field("user_id", userID))
	}

	accessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	refreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate refresh token", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	user.PasswordHash = ""
	if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	as.logger.Info("User logged in", gecho.Field("user_id", user.Id))

	return &tables.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// IsEmailVerified reports whether the account has a verification row and it
// is verified. A missing row counts as unverified.
func (as *AuthService) IsEmailVerified(ctx context.Context, userID uuid.UUID) (bool, error) {
	verification, err := database.Query[tables.EmailVerification](as.db).
		Where("user_id", userID).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to check verification status", gecho.Field("error", err), gecho.Field("user_id", userID))
		return false, lib.MapPgError(err)
	}

	return verification != nil && verification.Verified, nil
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	// format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	params := fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	encoded := fmt.Sprintf("$argon2id$v=19$%s$%s$%s", params, b64Salt, b64Hash)
	return encoded, nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	return as.validator.Validate(password, hashedPassword)
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	now := time.Now()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now,
		Exp:   as.GetAccessTokenExpiration(),
		Jti:   uuid.New(),
	}

	return lib.SignClaims(claims, as.cfg.Auth.AccessTokenSecret)
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	now := time.Now()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		Iat:   now,
		Exp:   as.GetRefreshTokenExpiration(),
		Jti:   uuid.New(),
	}

	return lib.SignClaims(claims, as.cfg.Auth.RefreshTokenSecret)
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*tables.AuthResponse, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Error("Failed to parse refresh token", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		as.logger.Warn("Refresh token has expired", gecho.Field("exp", claims.Exp))
		return nil, lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(ctx, claims.Sub)
	if err != nil {
		as.logger.Error("Failed to get user by ID during token refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, err
	}

	newAccessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new access token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new refresh token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	return &tables.AuthResponse{
		User:         user,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout blacklists both session tokens so they cannot be replayed
func (as *AuthService) Logout(accessClaims, refreshClaims *structs.AuthClaims) error {
	if accessClaims != nil {
		if err := as.cacheService.BlacklistToken(accessClaims.Jti, accessClaims.Exp); err != nil {
			as.logger.Error("Failed to blacklist access token", gecho.Field("error", err), gecho.Field("jti", accessClaims.Jti))
			return err
		}
	}

	if refreshClaims != nil {
		if err := as.cacheService.BlacklistToken(refreshClaims.Jti, refreshClaims.Exp); err != nil {
			as.logger.Error("Failed to blacklist refresh token", gecho.Field("error", err), gecho.Field("jti", refreshClaims.Jti))
			return err
		}
	}

	return nil
}

func (as *AuthService) GetUserByID(ctx context.Context, userId uuid.UUID) (*tables.User, error) {
	// Try to get user from cache first
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userId))
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user, err := database.Query[tables.User](as.db).Where("id", userId).First(ctx)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

func (as *AuthService) GetRefreshTokenSecret() string {
	return as.cfg.Auth.RefreshTokenSecret
}

func (as *AuthService) UpdateLastLogin(ctx context.Context, userId uuid.UUID) error {
	updates := map[string]any{
		"last_login": time.Now(),
	}
	_, err := database.Query[tables.User](as.db).Where("id", userId).Update(ctx, updates)
	if err != nil {
		return lib.MapPgError(err)
	}
	return nil
}
