package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/warriorcenter/cms-api/internal/core/domain"
	"github.com/warriorcenter/cms-api/internal/core/ports"
	"github.com/warriorcenter/cms-api/internal/logger"
)

const (
	bcryptCost = 10

	// Alphabet and length used for generated recovery passwords.
	passwordAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXTZabcdefghiklmnopqrstuvwxyz"
	passwordLength   = 10

	// How long a response waits on an outbound email before reporting
	// the outcome as still pending.
	mailWait = 5 * time.Second
)

type userService struct {
	repo       ports.UserRepository
	tokens     ports.TokenManager
	mail       ports.MailSender
	adminEmail string
	logger     *logger.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenManager, mail ports.MailSender, adminEmail string, logger *logger.Logger) ports.UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		mail:       mail,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (s *userService) Signup(ctx context.Context, email, password string) (*ports.SignupResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		IsApproved:   false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	emailResponse := s.sendBounded(ports.MailMessage{
		To:      s.adminEmail,
		Subject: "New User Added - Warrior Center CMS",
		Text:    user.Email + " was added.",
		HTML:    "<h1>New User Added</h1><hr><h2>Warrior Center CMS</h2><p>" + user.Email + " was added.</p>",
	})

	return &ports.SignupResult{User: user, EmailResponse: emailResponse}, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if !user.IsApproved {
		return nil, domain.ErrUserNotApproved
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.Identity{Email: user.Email, UserID: user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &ports.LoginResult{
		Token:     token,
		ExpiresIn: int(ports.TokenTTL / time.Second),
		UserID:    user.ID,
	}, nil
}

func (s *userService) ForgotPassword(ctx context.Context, email string) (*ports.PasswordUpdateResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	newPassword, err := randomPassword(passwordLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.repo.UpdatePassword(ctx, user.ID, string(hash))
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, domain.ErrNotAuthorized
	}

	// The replacement password goes out in plaintext email.
	// TODO: replace with a token-link reset flow.
	emailResponse := s.sendBounded(ports.MailMessage{
		To:      user.Email,
		Subject: "Password Reset - Warrior Center CMS",
		Text: "Your password has been reset. Please login with this new password - " + newPassword +
			". You can change your password once you are logged in.",
		HTML: "<h1>Password Reset</h1><hr><h2>Warrior Center CMS</h2><p>Your password has been reset. " +
			"Please login with this new password - " + newPassword +
			". You can change your password once you are logged in.</p>",
	})

	return &ports.PasswordUpdateResult{Updated: updated, EmailResponse: emailResponse}, nil
}

func (s *userService) ChangePassword(ctx context.Context, identity ports.Identity, newPassword string) (*ports.PasswordUpdateResult, error) {
	user, err := s.repo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.repo.UpdatePassword(ctx, user.ID, string(hash))
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, domain.ErrNotAuthorized
	}

	return &ports.PasswordUpdateResult{Updated: updated}, nil
}

// sendBounded fires the send in its own goroutine and waits up to mailWait
// for the result. Delivery failures never fail the surrounding operation;
// they are reported inline and logged. A send that outlives the wait keeps
// running in the background.
func (s *userService) sendBounded(msg ports.MailMessage) string {
	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		err := s.mail.Send(ctx, msg)
		if err != nil {
			s.logger.Error("failed to send email", "to", msg.To, "subject", msg.Subject, "error", err.Error())
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return "failed to send email: " + err.Error()
		}
		return "email sent to " + msg.To
	case <-time.After(mailWait):
		return "email delivery pending"
	}
}

func randomPassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}
