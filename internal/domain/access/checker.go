package access

import (
	"errors"
	"time"

	"coaching-app/internal/domain/billing"
	"coaching-app/internal/domain/users"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the narrow read surface the checker needs. Both lookups return
// (nil, nil) when no record exists; an error means the state could not be
// verified at all.
type Store interface {
	CoachSubscription(coachID uint) (*billing.StripeAccount, error)
	ClientRecord(clientID uint) (*users.User, error)
}

// Checker resolves effective access for coaches and their dependent
// clients. It holds no mutable state and never writes; concurrent checks
// are independent.
type Checker struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewChecker(store Store, log *zap.Logger) *Checker {
	return &Checker{store: store, log: log, now: time.Now}
}

// WithClock pins the evaluation clock. Tests only.
func (c *Checker) WithClock(now func() time.Time) *Checker {
	c.now = now
	return c
}

// CheckCoach classifies the coach's current billing snapshot. Any fetch
// failure is a denial with ReasonError; access state that cannot be
// verified never defaults to allow.
func (c *Checker) CheckCoach(coachID uint) Decision {
	acct, err := c.store.CoachSubscription(coachID)
	if err != nil {
		c.log.Error("coach subscription lookup failed",
			zap.Uint("coach_id", coachID),
			zap.Error(err))
		return deny(ReasonError, msgVerifySubscriptionFailed, nil)
	}
	return Classify(c.now(), acct)
}

// CheckClient gates a client on their coach's subscription. The coach's
// denial reason is preserved as auxiliary context but the client-facing
// reason and message stay generic.
func (c *Checker) CheckClient(clientID uint) Decision {
	client, err := c.store.ClientRecord(clientID)
	if err != nil {
		c.log.Error("client record lookup failed",
			zap.Uint("client_id", clientID),
			zap.Error(err))
		return deny(ReasonError, msgVerifyAccessFailed, nil)
	}
	if client == nil {
		return deny(ReasonClientNotFound, msgClientNotFound, nil)
	}
	if client.CoachID == nil {
		return deny(ReasonNoCoachAssigned, msgNoCoachAssigned, nil)
	}

	coach := c.CheckCoach(*client.CoachID)
	if coach.Reason == ReasonError {
		// Coach state was unverifiable; surface that as an error, not as
		// a coach billing problem.
		return deny(ReasonError, msgVerifyAccessFailed, nil)
	}
	if !coach.Allowed {
		d := deny(ReasonCoachSubscriptionInactive, msgCoachInactive, coach.RelevantDate)
		d.CoachReason = coach.Reason
		return d
	}
	return Decision{Allowed: true}
}

// GormStore is the production Store over the users / stripe_accounts
// tables.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) GormStore {
	return GormStore{db: db}
}

func (s GormStore) CoachSubscription(coachID uint) (*billing.StripeAccount, error) {
	var acct billing.StripeAccount
	err := s.db.Where("user_id = ?", coachID).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row at all means billing was never connected.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (s GormStore) ClientRecord(clientID uint) (*users.User, error) {
	var u users.User
	err := s.db.Where("id = ? AND role = ?", clientID, users.RoleClient).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
