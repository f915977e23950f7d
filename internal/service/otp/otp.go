package otp

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// SMSSender delivers a code to a mobile number. Delivery failures are
// swallowed by Service and surfaced as a boolean only.
type SMSSender interface {
	Send(ctx context.Context, destination, message string) error
}

// LogSender is the fallback delivery channel: it logs the message so the
// operator can read the code when no SMS gateway is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, destination, message string) error {
	log.Printf("sms to %s: %s", destination, message)
	return nil
}

// Service issues and verifies one-time codes, held in Redis with a TTL.
type Service struct {
	redis  *redis.Client
	sender SMSSender
	ttl    time.Duration
}

func NewService(redisDB *redis.Client, sender SMSSender) *Service {
	return &Service{
		redis:  redisDB,
		sender: sender,
		ttl:    5 * time.Minute,
	}
}

func key(destination string) string {
	return "otp:" + destination
}

// Issue generates a 6-digit code, stores it and fires the SMS. The returned
// sent flag reports delivery; a delivery failure never fails the call.
func (s *Service) Issue(ctx context.Context, destination, reason string) (sent bool, err error) {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))

	if err := s.redis.Set(ctx, key(destination), code, s.ttl).Err(); err != nil {
		return false, errors.Wrap(err, "storing otp")
	}

	message := fmt.Sprintf("Your %s code is %s", reason, code)
	if err := s.sender.Send(ctx, destination, message); err != nil {
		log.Println("otp: sms delivery failed:", err)
		return false, nil
	}

	return true, nil
}

// Verify consumes the stored code. A code verifies at most once.
func (s *Service) Verify(ctx context.Context, destination, code string) (bool, error) {
	stored, err := s.redis.Get(ctx, key(destination)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "reading otp")
	}

	if stored != code {
		return false, nil
	}

	if err := s.redis.Del(ctx, key(destination)).Err(); err != nil {
		return false, errors.Wrap(err, "consuming otp")
	}

	return true, nil
}
