package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"task-manager-api/internal/application/ports"
	taskdomain "task-manager-api/internal/domain/task"
	domain "task-manager-api/internal/domain/user"
	userDB "task-manager-api/internal/infrastructure/db/mongo/user"
	"task-manager-api/internal/infrastructure/mq"
)

const bcryptCost = 10

type UserService struct {
	userRepository domain.Repository
	taskRepository taskdomain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	taskRepository taskdomain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		taskRepository: taskRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) SignUp(ctx context.Context, req domain.User, password string) (*domain.User, error) {
	existing, err := us.userRepository.FetchByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	req.PasswordHash = string(hash)
	req.Name = norm.NFC.String(req.Name)

	uRet, err := us.userRepository.Create(ctx, req)
	if err != nil {
		// concurrent signup with the same email loses the index race
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Kind:   mq.KindUserSignedUp,
		UserID: uRet.ID.Hex(),
		Name:   uRet.Name,
		Email:  uRet.Email,
	}

	us.mCounter.WithLabelValues("user_signed_up_total").Inc()

	return uRet, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return us.userRepository.FetchByEmail(ctx, email)
}

func (us *UserService) Verify(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.MarkVerified(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		us.mCounter.WithLabelValues("user_verified_total").Inc()
	}

	return u, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id domain.ID, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_password_changed_total").Inc()

	return u, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id domain.ID, upd domain.ProfileUpdate) (*domain.User, error) {
	if upd.Name != nil {
		n := norm.NFC.String(*upd.Name)
		upd.Name = &n
	}

	u, err := us.userRepository.ApplyProfile(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return u, nil
}

// HardDelete removes the subject's tasks first, then the subject. The
// two operations are not wrapped in a transaction; a crash in between
// leaves the removal incomplete.
func (us *UserService) HardDelete(ctx context.Context, id domain.ID) (*domain.User, error) {
	if _, err := us.taskRepository.DeleteByOwner(ctx, id); err != nil {
		return nil, err
	}

	u, err := us.userRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return u, nil
}

func (us *UserService) SoftDelete(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.MarkDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_soft_deleted_total").Inc()

	return u, nil
}
