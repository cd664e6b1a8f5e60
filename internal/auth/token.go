package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// Kind markers carried in portal tokens. Staff tokens are recognized by
// the presence of the user_id claim instead, so the staff role value in
// the role claim never collides with these.
const (
	kindMarkerCandidate = "candidate"
	kindMarkerEmployer  = "employer"
	kindMarkerCompany   = "company"
)

// TokenManager issues and verifies signed bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 24 * 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload. Staff tokens populate StaffID plus a
// role/region snapshot; candidate and company tokens populate SubjectID
// plus a kind marker in Role. The snapshot fields are informational only:
// the resolver re-reads the live record and never trusts them for
// mutable attributes.
type Claims struct {
	StaffID   string `json:"user_id,omitempty"`
	SubjectID string `json:"id,omitempty"`
	Role      string `json:"role,omitempty"`
	Region    string `json:"region,omitempty"`
	jwt.RegisteredClaims
}

// IssueStaff signs a token for an internal staff account.
func (tm *TokenManager) IssueStaff(staff *domain.Staff) (string, time.Time, error) {
	return tm.sign(&Claims{
		StaffID: staff.ID,
		Role:    string(staff.Role),
		Region:  staff.Region,
	}, staff.ID)
}

// IssueCandidate signs a token for a candidate account.
func (tm *TokenManager) IssueCandidate(candidateID string) (string, time.Time, error) {
	return tm.sign(&Claims{SubjectID: candidateID, Role: kindMarkerCandidate}, candidateID)
}

// IssueCompany signs a token for a company account.
func (tm *TokenManager) IssueCompany(companyID string) (string, time.Time, error) {
	return tm.sign(&Claims{SubjectID: companyID, Role: kindMarkerEmployer}, companyID)
}

func (tm *TokenManager) sign(claims *Claims, subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry and returns the claims. Malformed
// structure, bad signature and expiry all collapse into ErrInvalidToken
// so callers cannot distinguish the sub-cause.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
