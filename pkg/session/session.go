package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/store"
)

const (
	// Duration is how long a session lives after login.
	Duration = time.Hour
	// InactivityTimeout invalidates a session whose holder went quiet.
	InactivityTimeout = 30 * time.Minute
)

var (
	ErrNotFound = errors.New("no stored session")
	ErrExpired  = errors.New("session expired")
	ErrInactive = errors.New("session expired due to inactivity")
)

// Store persists the single current session in the local store. A corrupt
// stored session is indistinguishable from no session: it is cleared
// silently and ErrNotFound is returned.
type Store struct {
	Local *store.Store
}

func NewStore(local *store.Store) *Store {
	return &Store{Local: local}
}

func (s *Store) Save(token string, user *models.User) (*models.Session, error) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := models.Session{
		ID:           uuid.NewString(),
		Token:        token,
		UserJSON:     string(userJSON),
		ExpiresAt:    now.Add(Duration),
		LastActivity: now,
	}

	// single-session model: replace whatever was stored before
	if err := s.Local.Conn.Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
		return nil, err
	}
	if err := s.Local.Conn.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Load() (*models.Session, *models.User, error) {
	var sess models.Session
	if err := s.Local.Conn.First(&sess).Error; err != nil {
		return nil, nil, ErrNotFound
	}

	var user models.User
	if err := json.Unmarshal([]byte(sess.UserJSON), &user); err != nil {
		logger := common.GetLoggerWith(
			common.LoggerNameDashboardCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategorySession),
		)
		logger.Warn("Stored session is corrupt, clearing", zap.Error(err))
		s.Clear()
		return nil, nil, ErrNotFound
	}
	return &sess, &user, nil
}

func (s *Store) Clear() error {
	return s.Local.Conn.Where("1 = 1").Delete(&models.Session{}).Error
}

// Touch refreshes the last-activity timestamp of the stored session. It is
// a no-op when nothing is stored.
func (s *Store) Touch() error {
	return s.Local.Conn.Model(&models.Session{}).
		Where("1 = 1").
		Update("last_activity", time.Now()).Error
}

// UpdateUser refreshes the stored profile fields after a successful
// server-side re-validation.
func (s *Store) UpdateUser(user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Local.Conn.Model(&models.Session{}).
		Where("1 = 1").
		Update("user_json", string(userJSON)).Error
}

// Token returns the bearer token of the stored session, or "" when no
// usable session exists. Used by the backend client when attaching
// Authorization headers.
func (s *Store) Token() string {
	sess, _, err := s.Load()
	if err != nil {
		return ""
	}
	return sess.Token
}

func IsExpiredAt(expiry time.Time, now time.Time) bool {
	if expiry.IsZero() {
		return true
	}
	return now.After(expiry)
}

func IsExpired(expiry time.Time) bool {
	return IsExpiredAt(expiry, time.Now())
}

func IsInactiveAt(lastActivity time.Time, now time.Time) bool {
	return now.Sub(lastActivity) > InactivityTimeout
}

// Validate checks the local invariants only; it does not talk to the
// server. Expiry wins over inactivity when both hold.
func Validate(sess *models.Session, now time.Time) error {
	if sess == nil {
		return ErrNotFound
	}
	if IsExpiredAt(sess.ExpiresAt, now) {
		return ErrExpired
	}
	if IsInactiveAt(sess.LastActivity, now) {
		return ErrInactive
	}
	return nil
}
